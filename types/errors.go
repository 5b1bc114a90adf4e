package types

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRepository    = errors.New("owner and repository name are required")
	ErrRepositoryNotFound   = errors.New("repository not found")
	ErrAuthenticationFailed = errors.New("github authentication failed")
	ErrAccessDenied         = errors.New("access denied or rate limit exceeded")
	ErrReadmeNotFound       = errors.New("README not found")
	ErrTreeFetchFailed      = errors.New("failed to fetch repository structure")
	ErrGenerationFailed     = errors.New("guide generation failed")
	ErrProvider             = errors.New("provider error")
)

var kindNames = map[error]string{
	ErrInvalidRepository:    "InvalidRepository",
	ErrRepositoryNotFound:   "RepositoryNotFound",
	ErrAuthenticationFailed: "AuthenticationFailed",
	ErrAccessDenied:         "AccessDenied",
	ErrReadmeNotFound:       "ReadmeNotFound",
	ErrTreeFetchFailed:      "TreeFetchFailed",
	ErrGenerationFailed:     "GenerationFailed",
	ErrProvider:             "ProviderError",
}

// PipelineError is the single error type returned by every stage. Kind is
// one of the sentinel errors above; Status is the provider HTTP status when
// one was reported.
type PipelineError struct {
	Kind   error
	Op     string
	Status int
	Err    error
}

func (e *PipelineError) Error() string {
	msg := e.Kind.Error()
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PipelineError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewError builds a PipelineError of the given kind.
func NewError(kind error, op string, status int, err error) *PipelineError {
	return &PipelineError{Kind: kind, Op: op, Status: status, Err: err}
}

// KindOf returns the taxonomy name for err, or "" when err is not classified.
func KindOf(err error) string {
	var pe *PipelineError
	if errors.As(err, &pe) {
		if name, ok := kindNames[pe.Kind]; ok {
			return name
		}
	}
	for kind, name := range kindNames {
		if errors.Is(err, kind) {
			return name
		}
	}
	return ""
}
