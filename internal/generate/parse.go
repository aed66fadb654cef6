package generate

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"mcqgen/internal/mcq"
)

// The model often wraps its output in a fenced code block. Prefer a fenced
// JSON array; fall back to treating the whole body as JSON.
var fencedArrayRe = regexp.MustCompile("(?s)```json\\s*(\\[.*?\\])\\s*```")

// ParseRecords extracts MCQ records from a raw model response.
// Valid JSON that is not an array (e.g. a bare object) is coerced to zero
// records rather than an error; malformed JSON is an error so the caller
// can retry the call.
func ParseRecords(raw string) ([]mcq.Record, error) {
	payload := strings.TrimSpace(raw)
	if m := fencedArrayRe.FindStringSubmatch(payload); len(m) > 1 {
		payload = m[1]
	}

	if !strings.HasPrefix(payload, "[") {
		var probe any
		if err := json.Unmarshal([]byte(payload), &probe); err != nil {
			return nil, fmt.Errorf("parse mcq json: %w (raw: %s)", err, truncate(payload, 200))
		}
		return nil, nil
	}

	var records []mcq.Record
	if err := json.Unmarshal([]byte(payload), &records); err != nil {
		return nil, fmt.Errorf("parse mcq json: %w (raw: %s)", err, truncate(payload, 200))
	}
	return records, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
