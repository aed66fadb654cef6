package chunker

// DefaultChunkSize is the span length the generation step is tuned for.
const DefaultChunkSize = 3000

// Split breaks text into consecutive, non-overlapping spans of at most
// size characters (runes), preserving original order. The final span may
// be shorter when the length is not an exact multiple. Pure and
// deterministic: the concatenation of the result equals the input.
func Split(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if text == "" {
		return nil
	}

	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
