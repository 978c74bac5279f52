package wizard

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestBuildArtifactsNumbering(t *testing.T) {
	faqs := []FAQ{
		{Question: "How do I track my order?", Answer: "Use the tracking link."},
		{Question: "What is your returns policy?", Answer: "30 days from delivery."},
	}
	artifacts := BuildArtifacts(faqs)
	if len(artifacts) != 2 {
		t.Fatalf("artifacts = %d, want 2", len(artifacts))
	}
	if artifacts[0].Name != "faq-001.txt" || artifacts[1].Name != "faq-002.txt" {
		t.Fatalf("names = %q, %q", artifacts[0].Name, artifacts[1].Name)
	}
	want := "Q: How do I track my order?\n\nA: Use the tracking link.\n"
	if artifacts[0].Content != want {
		t.Fatalf("content = %q, want %q", artifacts[0].Content, want)
	}
}

func TestBuildArtifactsEmpty(t *testing.T) {
	if got := BuildArtifacts(nil); len(got) != 0 {
		t.Fatalf("artifacts = %v, want none", got)
	}
}

func TestBuildArtifactsDeterministic(t *testing.T) {
	faqs := []FAQ{{Question: "Q1?", Answer: "A1"}, {Question: "Q2?", Answer: "A2"}}
	a := BuildArtifacts(faqs)
	b := BuildArtifacts(faqs)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("artifact %d differs between builds", i)
		}
	}
}

func TestBuildArtifactsCapsSize(t *testing.T) {
	faqs := []FAQ{{
		Question: "Big?",
		Answer:   strings.Repeat("x", MaxArtifactBytes*2),
	}}
	artifacts := BuildArtifacts(faqs)
	if len(artifacts[0].Content) > MaxArtifactBytes {
		t.Fatalf("content = %d bytes, cap is %d", len(artifacts[0].Content), MaxArtifactBytes)
	}
}

func TestTruncateUTF8KeepsRunesWhole(t *testing.T) {
	// Multi-byte runes positioned so a naive byte slice would split one.
	s := strings.Repeat("é", 10) // 2 bytes each
	got := truncateUTF8(s, 5)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a rune: %q", got)
	}
	if len(got) > 5 {
		t.Fatalf("len = %d, want <= 5", len(got))
	}
	if got != strings.Repeat("é", 2) {
		t.Fatalf("got %q", got)
	}
}

func TestTruncateUTF8NoopWhenShort(t *testing.T) {
	if got := truncateUTF8("short", 100); got != "short" {
		t.Fatalf("got %q", got)
	}
}
