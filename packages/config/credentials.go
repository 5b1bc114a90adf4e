package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	EnvGitHubToken  = "GITHUB_TOKEN"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
)

// Credentials are read once at startup and never modified afterwards.
type Credentials struct {
	GitHubToken  string
	GeminiAPIKey string
}

// MissingCredentialError names the environment variable that was not set.
type MissingCredentialError struct {
	Name string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s not found in environment or .env file", e.Name)
}

// LoadCredentials reads both provider credentials from the environment.
func LoadCredentials() (Credentials, error) {
	creds := Credentials{
		GitHubToken:  strings.TrimSpace(os.Getenv(EnvGitHubToken)),
		GeminiAPIKey: strings.TrimSpace(os.Getenv(EnvGeminiAPIKey)),
	}
	if creds.GitHubToken == "" {
		return Credentials{}, &MissingCredentialError{Name: EnvGitHubToken}
	}
	if creds.GeminiAPIKey == "" {
		return Credentials{}, &MissingCredentialError{Name: EnvGeminiAPIKey}
	}
	return creds, nil
}

// LoadGeminiKey reads only the text-generation credential. GitHub App mode
// authenticates through installation tokens instead of GITHUB_TOKEN.
func LoadGeminiKey() (string, error) {
	key := strings.TrimSpace(os.Getenv(EnvGeminiAPIKey))
	if key == "" {
		return "", &MissingCredentialError{Name: EnvGeminiAPIKey}
	}
	return key, nil
}

// LoadGitHubToken reads only the GitHub credential, for commands that never
// call the model.
func LoadGitHubToken() (string, error) {
	token := strings.TrimSpace(os.Getenv(EnvGitHubToken))
	if token == "" {
		return "", &MissingCredentialError{Name: EnvGitHubToken}
	}
	return token, nil
}
