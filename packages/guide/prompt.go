package guide

import (
	"fmt"
	"strings"
)

// Truncate returns the first max characters of s. Characters are Unicode
// code points, so a multi-byte rune is never split.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	n := 0
	for i := range s {
		if n == max {
			return s[:i]
		}
		n++
	}
	return s
}

// fileListing joins important files one per line, substituting placeholder
// for an empty list, then caps the result at max characters.
func fileListing(files []string, placeholder string, max int) string {
	if len(files) == 0 {
		return Truncate(placeholder, max)
	}
	return Truncate(strings.Join(files, "\n"), max)
}

// BuildTourPrompt assembles the guided-tour instruction block. readme and
// files must already be truncated.
func BuildTourPrompt(readme, files string) string {
	return fmt.Sprintf(`You are a senior software engineer onboarding a new developer.

You are given:
1. README content
2. Key repository files

Your task:
- Explain what the project does
- Describe how the codebase is organized
- Identify important files and their roles
- Suggest a logical onboarding path

Produce a structured developer guide.

README:
%s

Important Files:
%s
`, readme, files)
}

// BuildSummaryPrompt assembles the README summary instruction block.
func BuildSummaryPrompt(readme string) string {
	return fmt.Sprintf(`You are an AI assistant that summarizes GitHub repositories.

Given the README content below:
- Explain what the project does
- Identify its main purpose
- List key features or components
- Mention intended users or use cases

Keep the summary concise and structured.
Use bullet points where appropriate.

README:
%s
`, readme)
}
