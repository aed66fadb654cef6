package mcq

import "strings"

// Record is a single generated multiple-choice question.
// OptionE is only populated in 5-option mode.
type Record struct {
	Question      string `json:"question"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	OptionE       string `json:"option_e,omitempty"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
	Topic         string `json:"topic"`
	Chapter       string `json:"chapter"`
	Subject       string `json:"subject"`
}

// Letters returns the option letters for the given option count: A-D or A-E.
func Letters(numOptions int) []string {
	letters := []string{"A", "B", "C", "D"}
	if numOptions == 5 {
		letters = append(letters, "E")
	}
	return letters
}

// ClampOptions normalizes a requested option count to the valid domain {4, 5}.
func ClampOptions(n, fallback int) int {
	if n == 4 || n == 5 {
		return n
	}
	return fallback
}

// Columns returns the output column order for the given option count.
// option_e appears only in 5-option mode.
func Columns(numOptions int) []string {
	cols := []string{"question", "option_a", "option_b", "option_c", "option_d"}
	if numOptions == 5 {
		cols = append(cols, "option_e")
	}
	return append(cols, "correct_answer", "explanation", "topic", "chapter", "subject")
}

// Values returns the record's field values aligned with Columns.
func (r Record) Values(numOptions int) []string {
	vals := []string{r.Question, r.OptionA, r.OptionB, r.OptionC, r.OptionD}
	if numOptions == 5 {
		vals = append(vals, r.OptionE)
	}
	return append(vals, r.CorrectAnswer, r.Explanation, r.Topic, r.Chapter, r.Subject)
}

// Validate checks a record and normalizes its answer letter. Returns true
// if the record is usable: non-empty question and a correct answer within
// the letter domain for the option count.
func Validate(r *Record, numOptions int) bool {
	if r == nil {
		return false
	}
	if strings.TrimSpace(r.Question) == "" {
		return false
	}
	answer := strings.ToUpper(strings.TrimSpace(r.CorrectAnswer))
	for _, l := range Letters(numOptions) {
		if answer == l {
			r.CorrectAnswer = answer
			if numOptions == 4 {
				r.OptionE = ""
			}
			return true
		}
	}
	return false
}
