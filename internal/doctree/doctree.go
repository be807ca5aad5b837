package doctree

// DocTree is the heading outline of a will document.
type DocTree struct {
	Title    string     `json:"title"`
	Children []*DocNode `json:"children"`
}

// DocNode is one heading section of the outline.
type DocNode struct {
	Title    string     `json:"title,omitempty"` // Section heading (empty for text before the first heading)
	Level    int        `json:"level"`           // Heading level 1-6, 0 for untitled text
	Text     string     `json:"text,omitempty"`  // Paragraph text directly under this heading
	Children []*DocNode `json:"children,omitempty"`
}
