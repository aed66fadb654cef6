package mcq

import (
	"fmt"
	"strings"
)

// BuildPrompt creates the generation instruction for one text chunk.
// The wording pins the exact JSON keys and the option letter domain so the
// model's output can be parsed into Records directly.
func BuildPrompt(chunk string, numOptions int) string {
	letters := Letters(numOptions)

	optionKeys := make([]string, len(letters))
	for i, l := range letters {
		optionKeys[i] = fmt.Sprintf("`option_%s`", strings.ToLower(l))
	}

	quoted := make([]string, len(letters))
	for i, l := range letters {
		quoted[i] = fmt.Sprintf("%q", l)
	}
	letterDomain := strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]

	var sb strings.Builder
	sb.WriteString(`You are an expert educator and assessment creator. Your task is to meticulously analyze the provided text and formulate challenging multiple-choice questions (MCQs).
For each distinct and crucial piece of information, generate ONE highly challenging MCQ.
Output ONLY a valid JSON array of MCQ objects. Each object MUST contain the following keys:
- ` + "`question`" + `: The full MCQ question string.
- `)
	sb.WriteString(strings.Join(optionKeys, ",\n- "))
	sb.WriteString(": The text for each option.\n")
	sb.WriteString("- `correct_answer`: The letter of the correct option (must be " + letterDomain + ").\n")
	sb.WriteString("- `explanation`: A detailed explanation for the correct answer.\n")
	sb.WriteString("- `topic`: The inferred specific topic of the MCQ.\n")
	sb.WriteString("- `chapter`: The inferred chapter from which the information is drawn.\n")
	sb.WriteString("- `subject`: The overarching subject.\n\n")
	sb.WriteString(fmt.Sprintf("If fewer than %d meaningful options can be extracted, generate additional plausible but incorrect distractors.\n", numOptions))
	sb.WriteString("If any question is incomplete or unclear, refine and fix it before outputting.\n")
	sb.WriteString("Ensure that the correct answer is always properly validated with a clear explanation.\n")
	sb.WriteString("---\n")
	sb.WriteString(chunk)
	sb.WriteString("\n---\n")
	return sb.String()
}
