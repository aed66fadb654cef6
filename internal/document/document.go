package document

import "strings"

// Document is a parsed source document, flattened into ordered segments.
// Segment order follows the source: page order for paginated formats,
// reading order otherwise.
type Document struct {
	Title    string
	Segments []Segment
}

// Segment is one contiguous piece of extracted text.
type Segment struct {
	Title string // Heading or page label (may be empty).
	Text  string
	Page  int // Source page, 0 when the format has no pages.
}

// Append adds a segment, dropping whitespace-only text.
func (d *Document) Append(seg Segment) {
	seg.Text = strings.TrimSpace(seg.Text)
	if seg.Text == "" {
		return
	}
	d.Segments = append(d.Segments, seg)
}

// PlainText concatenates all segment text in segment order.
// Empty segments contribute nothing.
func (d *Document) PlainText() string {
	var sb strings.Builder
	for _, s := range d.Segments {
		if s.Text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}
