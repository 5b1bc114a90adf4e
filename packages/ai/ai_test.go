package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	gai "google.golang.org/genai"

	"reponavigator/packages/config"
)

func TestNewClient_RequiresKeyAndKnownBackend(t *testing.T) {
	_, err := NewClient(context.Background(), config.AIConfig{Backend: config.BackendGenAI, Model: "m"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.EnvGeminiAPIKey)

	_, err = NewClient(context.Background(), config.AIConfig{Backend: "openai", Model: "m"}, "key")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown ai backend")
}

func TestNewClient_GenAIBackend(t *testing.T) {
	client, err := NewClient(context.Background(), config.AIConfig{Backend: config.BackendGenAI, Model: "gemini-2.5-flash"}, "key")
	require.NoError(t, err)
	assert.Equal(t, "genai:gemini-2.5-flash", client.Name())
	assert.NoError(t, client.Close())
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Parts: []genai.Part{genai.Text("# Guide\n"), genai.Text("body")}},
		}},
	}
	text, err := responseText(resp)
	require.NoError(t, err)
	assert.Equal(t, "# Guide\nbody", text)
}

func TestResponseText_Empty(t *testing.T) {
	cases := map[string]*genai.GenerateContentResponse{
		"nil":           nil,
		"no candidates": {},
		"nil content":   {Candidates: []*genai.Candidate{{}}},
		"no parts":      {Candidates: []*genai.Candidate{{Content: &genai.Content{}}}},
		"non-text":      {Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}}}}},
	}
	for name, resp := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := responseText(resp)
			assert.ErrorIs(t, err, ErrNoContent)
		})
	}
}

func newGenAITestClient(t *testing.T, handler http.HandlerFunc) *GenAIClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := newGenAIClient(context.Background(), &gai.ClientConfig{
		APIKey:      "test-key",
		Backend:     gai.BackendGeminiAPI,
		HTTPOptions: gai.HTTPOptions{BaseURL: srv.URL + "/"},
	}, "gemini-2.5-flash")
	require.NoError(t, err)
	return client
}

func TestGenAIClient_Generate(t *testing.T) {
	var gotPrompt string
	client := newGenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.5-flash:generateContent"), r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.Unmarshal(body, &req))
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"## Overview"}]}}]}`)
	})

	text, err := client.Generate(context.Background(), "explain this repo")
	require.NoError(t, err)
	assert.Equal(t, "## Overview", text)
	assert.Equal(t, "explain this repo", gotPrompt)
}

func TestGenAIClient_Errors(t *testing.T) {
	client := newGenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`)
	})
	_, err := client.Generate(context.Background(), "p")
	assert.Error(t, err)

	empty := newGenAITestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"candidates":[]}`)
	})
	_, err = empty.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrNoContent)
}

func newGeminiTestClient(t *testing.T, handler http.HandlerFunc) *GeminiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewGeminiClient(context.Background(), "test-key", "gemini-2.5-flash", option.WithEndpoint(srv.URL))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestGeminiClient_Generate(t *testing.T) {
	var gotPrompt string
	client := newGeminiTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.5-flash:generateContent"), r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.Unmarshal(body, &req))
		if len(req.Contents) > 0 && len(req.Contents[0].Parts) > 0 {
			gotPrompt = req.Contents[0].Parts[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"## Overview"},{"text":" and more"}]}}]}`)
	})

	assert.Equal(t, "gemini:gemini-2.5-flash", client.Name())
	text, err := client.Generate(context.Background(), "explain this repo")
	require.NoError(t, err)
	assert.Equal(t, "## Overview and more", text)
	assert.Equal(t, "explain this repo", gotPrompt)
}

func TestGeminiClient_Errors(t *testing.T) {
	client := newGeminiTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`)
	})
	_, err := client.Generate(context.Background(), "p")
	assert.Error(t, err)

	empty := newGeminiTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"candidates":[]}`)
	})
	_, err = empty.Generate(context.Background(), "p")
	assert.ErrorIs(t, err, ErrNoContent)
}
