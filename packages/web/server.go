package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	lru "github.com/hashicorp/golang-lru/v2"

	"reponavigator/packages/config"
	"reponavigator/packages/guide"
	"reponavigator/types"
)

//go:embed templates/index.html
var templateFS embed.FS

const emptyFieldsWarning = "Please enter both owner and repository name."

// Runner produces a guide for owner/name. *guide.Pipeline implements it.
type Runner interface {
	Run(ctx context.Context, owner, name string) (*types.GuideResult, error)
}

// Session is the per-browser form state.
type Session struct {
	mu      sync.Mutex
	Owner   string
	Name    string
	Guide   string
	Error   string
	Warning string
}

type pageData struct {
	Owner    string
	Name     string
	Warning  string
	Error    string
	HasGuide bool
	Segments []guide.Segment
}

// Server is the form-based front end. Sessions live in a bounded LRU keyed
// by a random cookie value; evicted sessions simply start over.
type Server struct {
	router   *mux.Router
	sessions *lru.Cache[string, *Session]
	cookie   string
	runner   Runner
	tmpl     *template.Template
}

func NewServer(cfg config.ServerConfig, runner Runner) (*Server, error) {
	sessions, err := lru.New[string, *Session](cfg.MaxSessions)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:   mux.NewRouter(),
		sessions: sessions,
		cookie:   cfg.SessionCookie,
		runner:   runner,
		tmpl:     tmpl,
	}
	s.router.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	s.router.HandleFunc("/generate", s.handleGenerate).Methods(http.MethodPost)
	s.router.HandleFunc("/reset", s.handleReset).Methods(http.MethodPost)
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Web server listening", "address", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) *Session {
	if c, err := r.Cookie(s.cookie); err == nil {
		if sess, ok := s.sessions.Get(c.Value); ok {
			return sess
		}
	}

	id := uuid.NewString()
	sess := &Session{}
	s.sessions.Add(id, sess)
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	sess.mu.Lock()
	data := pageData{
		Owner:    sess.Owner,
		Name:     sess.Name,
		Warning:  sess.Warning,
		Error:    sess.Error,
		HasGuide: sess.Guide != "",
		Segments: guide.Split(sess.Guide),
	}
	// messages show once
	sess.Warning, sess.Error = "", ""
	sess.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		slog.Error("Failed to render page", "error", err)
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	owner := strings.TrimSpace(r.PostFormValue("owner"))
	name := strings.TrimSpace(r.PostFormValue("name"))

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.Owner, sess.Name = owner, name
	sess.Warning, sess.Error = "", ""

	if owner == "" || name == "" {
		sess.Warning = emptyFieldsWarning
	} else {
		result, err := s.runner.Run(r.Context(), owner, name)
		if err != nil {
			// the previous guide stays on screen
			slog.Error("Guide generation failed", "owner", owner, "name", name, "kind", types.KindOf(err), "error", err)
			sess.Error = "Error: " + err.Error()
		} else {
			sess.Guide = result.Guide
		}
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)

	sess.mu.Lock()
	sess.Owner, sess.Name, sess.Guide = "", "", ""
	sess.Warning, sess.Error = "", ""
	sess.mu.Unlock()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
