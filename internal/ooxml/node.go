package ooxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// WordNamespace is the WordprocessingML main namespace bound to the "w" prefix.
const WordNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

var (
	ErrParse       = errors.New("malformed xml")
	ErrMissingBody = errors.New("document has no body")
)

// Kind is the closed set of node variants the walker dispatches on.
type Kind int

const (
	KindText Kind = iota
	KindParagraph
	KindRun
	KindTextRun
	KindBreak
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindParagraph:
		return "paragraph"
	case KindRun:
		return "run"
	case KindTextRun:
		return "text-run"
	case KindBreak:
		return "break"
	default:
		return "other"
	}
}

// Node is one entry of a parsed document tree.
type Node interface {
	Kind() Kind
	// Tag is the qualified element name ("w:p"), empty for text nodes.
	Tag() string
	Attr(name string) (string, bool)
	Children() []Node
	TextContent() string
}

// Text is a character data node.
type Text string

func (t Text) Kind() Kind                 { return KindText }
func (t Text) Tag() string                { return "" }
func (t Text) Attr(string) (string, bool) { return "", false }
func (t Text) Children() []Node           { return nil }
func (t Text) TextContent() string        { return string(t) }

// Element is an XML element node.
type Element struct {
	Name  xml.Name
	Attrs []xml.Attr
	Nodes []Node
	kind  Kind
}

func (e *Element) Kind() Kind       { return e.kind }
func (e *Element) Children() []Node { return e.Nodes }
func (e *Element) Tag() string      { return qualify(e.Name) }

// Attr looks up an attribute by qualified ("w:val") or local ("val") name.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if qualify(a.Name) == name || (a.Name.Local == name && !strings.Contains(name, ":")) {
			return a.Value, true
		}
	}
	return "", false
}

// TextContent concatenates all descendant character data in document order.
func (e *Element) TextContent() string {
	var buf strings.Builder
	var collect func(Node)
	collect = func(n Node) {
		if n.Kind() == KindText {
			buf.WriteString(n.TextContent())
			return
		}
		for _, c := range n.Children() {
			collect(c)
		}
	}
	collect(e)
	return buf.String()
}

// Child returns the first child element with the given qualified tag.
func (e *Element) Child(tag string) *Element {
	for _, c := range e.Nodes {
		if el, ok := c.(*Element); ok && el.Tag() == tag {
			return el
		}
	}
	return nil
}

// Parse decodes an XML buffer into an element tree and returns the root element.
func Parse(data []byte) (*Element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var root *Element
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{
				Name:  t.Name,
				Attrs: append([]xml.Attr(nil), t.Attr...),
				kind:  classify(t.Name),
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("%w: multiple root elements", ErrParse)
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Nodes = append(parent.Nodes, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			parent := stack[len(stack)-1]
			// Indentation between elements is not content; w:t keeps everything.
			if parent.kind != KindTextRun && len(bytes.TrimSpace(t)) == 0 {
				continue
			}
			parent.Nodes = append(parent.Nodes, Text(string(t)))
		}
	}

	if root == nil {
		return nil, fmt.Errorf("%w: no root element", ErrParse)
	}
	return root, nil
}

// Body returns the w:body element of a parsed w:document.
func Body(doc *Element) (*Element, error) {
	if doc == nil {
		return nil, ErrMissingBody
	}
	if doc.Tag() == "w:body" {
		return doc, nil
	}
	body := doc.Child("w:body")
	if body == nil {
		return nil, fmt.Errorf("%w: root is %s", ErrMissingBody, doc.Tag())
	}
	return body, nil
}

func isWord(n xml.Name) bool {
	return n.Space == WordNamespace || n.Space == "w"
}

func qualify(n xml.Name) string {
	switch {
	case isWord(n):
		return "w:" + n.Local
	case n.Space == "":
		return n.Local
	default:
		return n.Space + ":" + n.Local
	}
}

func classify(n xml.Name) Kind {
	if !isWord(n) {
		return KindOther
	}
	switch n.Local {
	case "p":
		return KindParagraph
	case "r":
		return KindRun
	case "t":
		return KindTextRun
	case "br":
		return KindBreak
	}
	return KindOther
}
