package ooxml

import "strings"

// LetteredResolutionStyle is the paragraph style whose paragraphs are rendered
// as the next item of a lettered sub-list ("a. ", "b. ", ...).
const LetteredResolutionStyle = "bpLTSResolution2"

// Walker converts a document body into plain text. The zero value never
// letters paragraphs; use NewWalker for the standard style.
type Walker struct {
	LetteredStyle string
}

// NewWalker returns a Walker that letters LetteredResolutionStyle paragraphs.
func NewWalker() Walker {
	return Walker{LetteredStyle: LetteredResolutionStyle}
}

// Walk concatenates the text of every direct child of body in document order.
// The sub-list counter starts at zero for each call and is never shared.
func (w Walker) Walk(body Node) string {
	var buf strings.Builder
	counter := 0
	for _, c := range body.Children() {
		var text string
		text, counter = w.node(c, counter)
		buf.WriteString(text)
	}
	return buf.String()
}

// BodyText is Walk with leading and trailing whitespace trimmed once.
func (w Walker) BodyText(body Node) string {
	return strings.TrimSpace(w.Walk(body))
}

func (w Walker) node(n Node, counter int) (string, int) {
	switch n.Kind() {
	case KindText, KindTextRun:
		return n.TextContent(), counter
	case KindParagraph:
		return w.paragraph(n, counter)
	case KindRun:
		return w.children(n, counter)
	case KindBreak:
		return "\n", counter
	default:
		return "", counter
	}
}

func (w Walker) paragraph(p Node, counter int) (string, int) {
	var prefix string
	if w.LetteredStyle != "" && paragraphStyle(p) == w.LetteredStyle {
		prefix = Label(counter) + ". "
		counter++
	}

	text, counter := w.children(p, counter)
	text = prefix + text
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, counter
}

func (w Walker) children(n Node, counter int) (string, int) {
	var buf strings.Builder
	for _, c := range n.Children() {
		var text string
		text, counter = w.node(c, counter)
		buf.WriteString(text)
	}
	return buf.String(), counter
}

// paragraphStyle returns the w:val of w:pPr/w:pStyle, or "" when absent.
func paragraphStyle(p Node) string {
	for _, c := range p.Children() {
		if c.Tag() != "w:pPr" {
			continue
		}
		for _, pc := range c.Children() {
			if pc.Tag() == "w:pStyle" {
				v, _ := pc.Attr("w:val")
				return v
			}
		}
	}
	return ""
}

// Label returns the sub-list letter for a zero-based counter: a..z, then
// aa, ab, ... (bijective base 26).
func Label(i int) string {
	if i < 0 {
		return ""
	}
	var b []byte
	for n := i + 1; n > 0; n = (n - 1) / 26 {
		b = append(b, byte('a'+(n-1)%26))
	}
	for l, r := 0, len(b)-1; l < r; l, r = l+1, r-1 {
		b[l], b[r] = b[r], b[l]
	}
	return string(b)
}
