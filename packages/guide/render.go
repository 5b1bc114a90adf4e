package guide

import (
	"strings"
)

const fence = "```"

// Segment is a run of guide text, either prose or the body of a fenced code
// block.
type Segment struct {
	Code     bool
	Language string
	Text     string
}

// Split cuts a guide on triple-backtick fences. Every odd piece between
// fences is code; an unterminated fence leaves the rest as prose. When the
// first line of a code piece is a single token it is taken as the language.
func Split(guide string) []Segment {
	parts := strings.Split(guide, fence)
	if len(parts)%2 == 0 {
		// unbalanced: fold the trailing opener back into prose
		last := len(parts) - 1
		parts[last-1] = parts[last-1] + fence + parts[last]
		parts = parts[:last]
	}

	segments := make([]Segment, 0, len(parts))
	for i, part := range parts {
		if i%2 == 1 {
			lang, body := splitInfoLine(part)
			segments = append(segments, Segment{Code: true, Language: lang, Text: strings.TrimSpace(body)})
			continue
		}
		text := strings.TrimSpace(part)
		if text == "" {
			continue
		}
		segments = append(segments, Segment{Text: text})
	}
	return segments
}

func splitInfoLine(block string) (string, string) {
	first, rest, found := strings.Cut(block, "\n")
	if !found {
		return "", block
	}
	info := strings.TrimSpace(first)
	if info == "" || strings.ContainsAny(info, " \t") {
		return "", block
	}
	return info, rest
}
