package mcq

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestColumns_FourOptions(t *testing.T) {
	cols := Columns(4)
	want := []string{
		"question", "option_a", "option_b", "option_c", "option_d",
		"correct_answer", "explanation", "topic", "chapter", "subject",
	}
	if len(cols) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(cols))
	}
	for i, w := range want {
		if cols[i] != w {
			t.Errorf("column %d: expected %q, got %q", i, w, cols[i])
		}
	}
}

func TestColumns_FiveOptionsIncludesOptionE(t *testing.T) {
	cols := Columns(5)
	if cols[5] != "option_e" {
		t.Errorf("expected option_e at index 5, got %q", cols[5])
	}
	if len(cols) != 11 {
		t.Errorf("expected 11 columns, got %d", len(cols))
	}
}

func TestValues_AlignWithColumns(t *testing.T) {
	r := Record{
		Question: "Q", OptionA: "a", OptionB: "b", OptionC: "c", OptionD: "d",
		OptionE: "e", CorrectAnswer: "E", Explanation: "x",
		Topic: "t", Chapter: "ch", Subject: "s",
	}
	for _, n := range []int{4, 5} {
		if got, want := len(r.Values(n)), len(Columns(n)); got != want {
			t.Errorf("numOptions=%d: %d values for %d columns", n, got, want)
		}
	}
	if r.Values(5)[5] != "e" {
		t.Errorf("expected option_e value at index 5, got %q", r.Values(5)[5])
	}
}

func TestValidate_LetterDomain(t *testing.T) {
	cases := []struct {
		answer     string
		numOptions int
		want       bool
	}{
		{"A", 4, true},
		{"D", 4, true},
		{"E", 4, false},
		{"E", 5, true},
		{"b", 5, true},
		{" C ", 4, true},
		{"F", 5, false},
		{"", 4, false},
	}
	for _, tc := range cases {
		r := Record{Question: "Q?", CorrectAnswer: tc.answer}
		if got := Validate(&r, tc.numOptions); got != tc.want {
			t.Errorf("Validate(answer=%q, numOptions=%d) = %v, want %v",
				tc.answer, tc.numOptions, got, tc.want)
		}
	}
}

func TestValidate_NormalizesAnswer(t *testing.T) {
	r := Record{Question: "Q?", CorrectAnswer: " b "}
	if !Validate(&r, 4) {
		t.Fatal("expected record to validate")
	}
	if r.CorrectAnswer != "B" {
		t.Errorf("expected normalized answer B, got %q", r.CorrectAnswer)
	}
}

func TestValidate_ClearsOptionEInFourOptionMode(t *testing.T) {
	r := Record{Question: "Q?", CorrectAnswer: "A", OptionE: "stray"}
	if !Validate(&r, 4) {
		t.Fatal("expected record to validate")
	}
	if r.OptionE != "" {
		t.Errorf("expected option_e cleared in 4-option mode, got %q", r.OptionE)
	}
}

func TestValidate_EmptyQuestion(t *testing.T) {
	r := Record{Question: "   ", CorrectAnswer: "A"}
	if Validate(&r, 4) {
		t.Error("expected blank question to be invalid")
	}
}

func TestRecord_JSONOmitsEmptyOptionE(t *testing.T) {
	r := Record{Question: "Q?", CorrectAnswer: "A"}
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(b), "option_e") {
		t.Errorf("expected option_e omitted from JSON, got %s", b)
	}
}

func TestClampOptions(t *testing.T) {
	if got := ClampOptions(4, 5); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if got := ClampOptions(0, 5); got != 5 {
		t.Errorf("expected fallback 5, got %d", got)
	}
	if got := ClampOptions(7, 4); got != 4 {
		t.Errorf("expected fallback 4, got %d", got)
	}
}
