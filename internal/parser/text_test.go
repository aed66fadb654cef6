package parser

import (
	"strings"
	"testing"
)

func TestTextParser_BasicParagraphSplitting(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", doc.Title)
	}
	if len(doc.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(doc.Segments))
	}

	want := []string{
		"First paragraph line one.\nFirst paragraph line two.",
		"Second paragraph.",
		"Third paragraph.",
	}
	for i, w := range want {
		if doc.Segments[i].Text != w {
			t.Errorf("segment[%d]: expected %q, got %q", i, w, doc.Segments[i].Text)
		}
	}
}

func TestTextParser_EmptyInput(t *testing.T) {
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Segments) != 0 {
		t.Errorf("expected 0 segments for empty input, got %d", len(doc.Segments))
	}
	if doc.PlainText() != "" {
		t.Errorf("expected empty plain text, got %q", doc.PlainText())
	}
}

func TestTextParser_WhitespaceOnlyLines(t *testing.T) {
	input := "Para one.\n   \nPara two.\n\n\n\nPara three."
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "ws.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(doc.Segments))
	}
}

func TestTextParser_PlainTextJoinsSegments(t *testing.T) {
	input := "Alpha.\n\nBeta."
	p := &TextParser{}
	doc, err := p.Parse(strings.NewReader(input), "join.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.PlainText(); got != "Alpha.\nBeta." {
		t.Errorf("expected joined text, got %q", got)
	}
}
