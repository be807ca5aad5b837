package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dgallion1/willclause/internal/ooxml"
	"github.com/dgallion1/willclause/internal/ooxml/ooxmltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeClause(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, ooxmltest.DOCX(t, body), 0o644))
	return path
}

func TestExtractCommand(t *testing.T) {
	dir := t.TempDir()
	path := writeClause(t, dir, "PowersOfExecutor.docx",
		ooxmltest.Paragraph("My executor may:")+
			ooxmltest.StyledParagraph(ooxml.LetteredResolutionStyle, "sell property"))

	out, err := run(t, "extract", path)
	require.NoError(t, err)
	assert.Equal(t, "# Powers Of Executor\nMy executor may:\na. sell property\n", out)
}

func TestExtractCommand_MissingEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Empty.docx")
	require.NoError(t, os.WriteFile(path, ooxmltest.Zip(t, map[string]string{"x": "y"}), 0o644))

	_, err := run(t, "extract", path)
	assert.ErrorIs(t, err, ooxml.ErrEntryNotFound)
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	writeClause(t, dir, "Guardianship.docx", ooxmltest.Paragraph("I appoint a guardian."))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Broken.docx"), []byte("nope"), 0o644))

	out, err := run(t, "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "== Guardianship (Guardianship.docx)\nI appoint a guardian.\n")
	assert.Contains(t, out, "!! skipped Broken.docx")
	assert.Contains(t, out, "1 clauses, 1 skipped\n")
}

func TestListCommand_MissingDirectory(t *testing.T) {
	_, err := run(t, "list", "--dir", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
