// Package parser reads stored will documents with go-docx.
package parser

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fumiama/go-docx"
)

// DOCXMimeType is the content type the editor saves wills as.
const DOCXMimeType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// IsDOCX reports whether an upload claims to be a Word document.
func IsDOCX(mimeType, filename string) bool {
	if strings.EqualFold(strings.TrimSpace(strings.Split(mimeType, ";")[0]), DOCXMimeType) {
		return true
	}
	return strings.EqualFold(filepath.Ext(filename), ".docx")
}

// Validate checks that data opens as a Word document.
func Validate(data []byte) error {
	_, err := open(data)
	return err
}

func open(data []byte) (*docx.Docx, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}
	return doc, nil
}
