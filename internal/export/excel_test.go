package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"mcqgen/internal/mcq"
)

func sampleRecords() []mcq.Record {
	return []mcq.Record{
		{
			Question: "What is 2+2?",
			OptionA:  "3", OptionB: "4", OptionC: "5", OptionD: "6", OptionE: "7",
			CorrectAnswer: "B", Explanation: "Basic arithmetic.",
			Topic: "addition", Chapter: "1", Subject: "math",
		},
		{
			Question: "Capital of France?",
			OptionA:  "Paris", OptionB: "Lyon", OptionC: "Nice", OptionD: "Lille", OptionE: "Metz",
			CorrectAnswer: "A", Explanation: "Paris is the capital.",
			Topic: "geography", Chapter: "2", Subject: "geography",
		},
	}
}

func readRows(t *testing.T, book []byte) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(book))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("read sheet %s: %v", SheetName, err)
	}
	return rows
}

func TestWorkbook_FiveOptionLayout(t *testing.T) {
	book, err := Workbook(sampleRecords(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := readRows(t, book)
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	wantHeader := []string{
		"S.No", "question", "option_a", "option_b", "option_c", "option_d",
		"option_e", "correct_answer", "explanation", "topic", "chapter", "subject",
	}
	for i, w := range wantHeader {
		if rows[0][i] != w {
			t.Errorf("header %d: expected %q, got %q", i, w, rows[0][i])
		}
	}

	if rows[1][0] != "1" || rows[2][0] != "2" {
		t.Errorf("expected sequence numbers 1 and 2, got %q and %q", rows[1][0], rows[2][0])
	}
	if rows[1][1] != "What is 2+2?" {
		t.Errorf("unexpected first question: %q", rows[1][1])
	}
	if rows[2][7] != "A" {
		t.Errorf("expected correct_answer A in row 2, got %q", rows[2][7])
	}
}

func TestWorkbook_FourOptionOmitsOptionE(t *testing.T) {
	book, err := Workbook(sampleRecords(), 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := readRows(t, book)
	header := rows[0]
	for _, h := range header {
		if h == "option_e" {
			t.Error("option_e column must not appear in 4-option mode")
		}
	}
	if len(header) != 11 {
		t.Errorf("expected 11 columns, got %d", len(header))
	}
	// correct_answer directly follows option_d.
	if header[6] != "correct_answer" {
		t.Errorf("expected correct_answer at index 6, got %q", header[6])
	}
}

func TestWorkbook_SequenceContinuesAcrossRecords(t *testing.T) {
	records := append(sampleRecords(), sampleRecords()...)
	book, err := Workbook(records, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows := readRows(t, book)
	if len(rows) != 5 {
		t.Fatalf("expected header + 4 rows, got %d", len(rows))
	}
	want := []string{"1", "2", "3", "4"}
	for i, w := range want {
		if rows[i+1][0] != w {
			t.Errorf("row %d: expected S.No %q, got %q", i+1, w, rows[i+1][0])
		}
	}
}

func TestWorkbook_NoRecordsStillHasHeader(t *testing.T) {
	book, err := Workbook(nil, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows := readRows(t, book)
	if len(rows) != 1 {
		t.Errorf("expected header only, got %d rows", len(rows))
	}
}
