package generate

import (
	"testing"
)

func TestParseRecords_FencedArray(t *testing.T) {
	raw := "Here are the questions:\n```json\n[{\"question\":\"Q1?\",\"correct_answer\":\"A\"}]\n```\nDone."
	records, err := ParseRecords(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Question != "Q1?" {
		t.Errorf("expected question Q1?, got %q", records[0].Question)
	}
}

func TestParseRecords_BareArray(t *testing.T) {
	raw := `[{"question":"Q1?","correct_answer":"B"},{"question":"Q2?","correct_answer":"C"}]`
	records, err := ParseRecords(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
}

func TestParseRecords_ObjectCoercesToEmpty(t *testing.T) {
	// A single object is valid JSON but not an array: zero records, no error.
	records, err := ParseRecords(`{"question":"Q1?"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected 0 records for non-array JSON, got %d", len(records))
	}
}

func TestParseRecords_MalformedIsError(t *testing.T) {
	if _, err := ParseRecords("not json at all"); err == nil {
		t.Error("expected error for malformed response")
	}
	if _, err := ParseRecords(`[{"question": "unterminated`); err == nil {
		t.Error("expected error for truncated array")
	}
}

func TestParseRecords_FencePreferredOverSurroundingText(t *testing.T) {
	raw := "prose before\n```json\n[{\"question\":\"inside fence\"}]\n```"
	records, err := ParseRecords(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Question != "inside fence" {
		t.Errorf("expected the fenced array to win, got %+v", records)
	}
}

func TestParseRecords_FullRecordFields(t *testing.T) {
	raw := `[{
		"question": "What is Go?",
		"option_a": "a language", "option_b": "a game",
		"option_c": "a fish", "option_d": "a planet", "option_e": "a color",
		"correct_answer": "A",
		"explanation": "Go is a programming language.",
		"topic": "languages", "chapter": "1", "subject": "computing"
	}]`
	records, err := ParseRecords(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	r := records[0]
	if r.OptionE != "a color" || r.Subject != "computing" || r.Chapter != "1" {
		t.Errorf("record fields not populated: %+v", r)
	}
}
