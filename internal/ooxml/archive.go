package ooxml

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// DocumentEntry is the main content part of a WordprocessingML package.
const DocumentEntry = "word/document.xml"

var (
	ErrInvalidPackage = errors.New("not a zip package")
	ErrEntryNotFound  = errors.New("entry not found in package")
)

// ReadEntry returns the decompressed bytes of one entry of an in-memory zip
// package. pkg is never modified.
func ReadEntry(pkg []byte, name string) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(pkg), int64(len(pkg)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPackage, err)
	}

	for _, f := range zr.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
}

// ExtractText pulls word/document.xml out of a .docx package and returns its
// body as plain text.
func ExtractText(pkg []byte) (string, error) {
	return ExtractTextWith(NewWalker(), pkg)
}

// ExtractTextWith is ExtractText with a caller-supplied walker configuration.
func ExtractTextWith(w Walker, pkg []byte) (string, error) {
	raw, err := ReadEntry(pkg, DocumentEntry)
	if err != nil {
		return "", err
	}
	doc, err := Parse(raw)
	if err != nil {
		return "", err
	}
	body, err := Body(doc)
	if err != nil {
		return "", err
	}
	return w.BodyText(body), nil
}
