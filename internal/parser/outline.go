package parser

import (
	"strings"

	"github.com/dgallion1/willclause/internal/doctree"
	"github.com/fumiama/go-docx"
)

// Outline builds the heading hierarchy of a will. Paragraphs between headings
// become the Text of the nearest preceding heading.
func Outline(data []byte, title string) (*doctree.DocTree, error) {
	doc, err := open(data)
	if err != nil {
		return nil, err
	}

	type stackEntry struct {
		node  *doctree.DocNode
		level int
	}
	root := &doctree.DocNode{}
	stack := []stackEntry{{node: root, level: 0}}
	var pending []string

	flush := func() {
		if len(pending) == 0 {
			return
		}
		top := stack[len(stack)-1].node
		text := strings.Join(pending, "\n")
		if top.Text != "" {
			top.Text += "\n" + text
		} else {
			top.Text = text
		}
		pending = pending[:0]
	}

	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := paragraphText(para)
		if text == "" {
			continue
		}

		level := headingLevel(para)
		if level == 0 {
			pending = append(pending, text)
			continue
		}

		flush()
		node := &doctree.DocNode{Title: text, Level: level}
		for len(stack) > 1 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].node
		parent.Children = append(parent.Children, node)
		stack = append(stack, stackEntry{node: node, level: level})
	}
	flush()

	tree := &doctree.DocTree{Title: title, Children: root.Children}
	if root.Text != "" {
		tree.Children = append([]*doctree.DocNode{{Text: root.Text}}, tree.Children...)
	}
	return tree, nil
}

// headingLevel maps "Heading1".."Heading6" (or "heading 1") to 1..6.
func headingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	if !strings.HasPrefix(style, "heading") || len(style) != len("heading")+1 {
		return 0
	}
	d := style[len(style)-1]
	if d < '1' || d > '6' {
		return 0
	}
	return int(d - '0')
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
