package wizard

import (
	"fmt"
	"unicode/utf8"
)

// MaxArtifactBytes caps each generated FAQ artifact. Knowledge-base content
// uploads reject larger documents.
const MaxArtifactBytes = 1 << 20

// Artifact is one knowledge-base document generated from a FAQ entry.
type Artifact struct {
	Name    string // deterministic: faq-001.txt, faq-002.txt, ...
	Content string
}

// BuildArtifacts turns discovered FAQ entries into upload-ready text
// artifacts, one per question, numbered in input order. Pure and
// restartable: same input, same artifacts.
func BuildArtifacts(faqs []FAQ) []Artifact {
	artifacts := make([]Artifact, 0, len(faqs))
	for i, faq := range faqs {
		content := fmt.Sprintf("Q: %s\n\nA: %s\n", faq.Question, faq.Answer)
		artifacts = append(artifacts, Artifact{
			Name:    fmt.Sprintf("faq-%03d.txt", i+1),
			Content: truncateUTF8(content, MaxArtifactBytes),
		})
	}
	return artifacts
}

// truncateUTF8 trims s to at most limit bytes without splitting a rune.
func truncateUTF8(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	s = s[:limit]
	for len(s) > 0 && !utf8.ValidString(s) {
		s = s[:len(s)-1]
	}
	return s
}
