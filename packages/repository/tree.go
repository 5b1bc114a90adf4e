package repository

import (
	"strings"

	"reponavigator/types"
)

const DefaultMaxDepth = 3

// DefaultIgnoreDirs are matched as plain string prefixes, so
// "node_modules_backup/x" is dropped along with "node_modules/x".
var DefaultIgnoreDirs = []string{
	"node_modules",
	".venv",
	"__pycache__",
	".git",
	".idea",
	".vscode",
}

// DefaultImportantFiles are matched as path suffixes.
var DefaultImportantFiles = []string{
	"README.md",
	"requirements.txt",
	"pyproject.toml",
	"package.json",
	"Dockerfile",
	"docker-compose.yml",
	"main.py",
	"app.py",
	"server.py",
}

// TreeFilter reduces a raw tree listing to blob paths within MaxDepth that do
// not start with an ignored prefix.
type TreeFilter struct {
	MaxDepth   int
	IgnoreDirs []string
}

// Filter keeps listing order. Depth is the number of '/' in the path.
func (f TreeFilter) Filter(entries []types.TreeEntry) []string {
	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsBlob() {
			continue
		}
		if f.shouldIgnore(entry.Path) {
			continue
		}
		if PathDepth(entry.Path) > f.MaxDepth {
			continue
		}
		files = append(files, entry.Path)
	}
	return files
}

func (f TreeFilter) shouldIgnore(path string) bool {
	for _, prefix := range f.IgnoreDirs {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// PathDepth counts directory separators in a slash-separated path.
func PathDepth(path string) int {
	return strings.Count(path, "/")
}

// Selector picks high-signal files by filename suffix.
type Selector struct {
	Suffixes []string
	// Dedupe emits each path once even when several suffixes match it.
	// Without it a path is emitted once per matching suffix.
	Dedupe bool
}

// Select returns a subsequence of files in input order.
func (s Selector) Select(files []string) []string {
	important := make([]string, 0)
	for _, f := range files {
		if s.Dedupe {
			if s.Matches(f) {
				important = append(important, f)
			}
			continue
		}
		for _, suffix := range s.Suffixes {
			if suffix == "" || !strings.HasSuffix(f, suffix) {
				continue
			}
			important = append(important, f)
		}
	}
	return important
}

// Matches reports whether path satisfies at least one suffix rule.
func (s Selector) Matches(path string) bool {
	for _, suffix := range s.Suffixes {
		if suffix != "" && strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}
