package clauses

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/dgallion1/willclause/internal/ooxml"
	"github.com/dgallion1/willclause/internal/ooxml/ooxmltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func osDirFS(dir string) fs.FS {
	return os.DirFS(dir)
}

func TestListClauses(t *testing.T) {
	fsys := fstest.MapFS{
		"AppointmentOfExecutor.docx": {Data: ooxmltest.DOCX(t,
			ooxmltest.Paragraph("I appoint my executor.")+
				ooxmltest.StyledParagraph(ooxml.LetteredResolutionStyle, "to pay debts")+
				ooxmltest.StyledParagraph(ooxml.LetteredResolutionStyle, "to sell assets"))},
		"Guardianship.docx": {Data: ooxmltest.DOCX(t, ooxmltest.Paragraph("I appoint a guardian."))},
	}
	svc := NewService(NewCatalog(fsys, discardLogger()), discardLogger(), 4)

	listing := svc.ListClauses(context.Background())
	assert.Empty(t, listing.Skipped)
	assert.Equal(t, []Clause{
		{
			ID:      "AppointmentOfExecutor.docx",
			Title:   "Appointment Of Executor",
			Content: "I appoint my executor.\na. to pay debts\nb. to sell assets",
		},
		{
			ID:      "Guardianship.docx",
			Title:   "Guardianship",
			Content: "I appoint a guardian.",
		},
	}, listing.Clauses)
}

func TestListClauses_CounterIsPerClause(t *testing.T) {
	styled := ooxmltest.StyledParagraph(ooxml.LetteredResolutionStyle, "item")
	fsys := fstest.MapFS{}
	for i := range 6 {
		fsys[fmt.Sprintf("Clause%d.docx", i)] = &fstest.MapFile{Data: ooxmltest.DOCX(t, styled+styled)}
	}
	svc := NewService(NewCatalog(fsys, discardLogger()), discardLogger(), 3)

	listing := svc.ListClauses(context.Background())
	require.Len(t, listing.Clauses, 6)
	for _, c := range listing.Clauses {
		assert.Equal(t, "a. item\nb. item", c.Content, c.ID)
	}
}

func TestListClauses_DropsBrokenSources(t *testing.T) {
	fsys := fstest.MapFS{
		"Good.docx":       {Data: ooxmltest.DOCX(t, ooxmltest.Paragraph("ok"))},
		"NoDocument.docx": {Data: ooxmltest.Zip(t, map[string]string{"word/styles.xml": "<x/>"})},
		"Malformed.docx":  {Data: ooxmltest.Zip(t, map[string]string{ooxml.DocumentEntry: "<w:document"})},
		"NoBody.docx": {Data: ooxmltest.Zip(t, map[string]string{
			ooxml.DocumentEntry: `<w:document xmlns:w="` + ooxml.WordNamespace + `"/>`,
		})},
		"NotZip.docx": {Data: []byte("plain bytes")},
	}
	svc := NewService(NewCatalog(fsys, discardLogger()), discardLogger(), 2)

	listing := svc.ListClauses(context.Background())
	require.Len(t, listing.Clauses, 1)
	assert.Equal(t, "Good.docx", listing.Clauses[0].ID)

	skipped := map[string]string{}
	for _, s := range listing.Skipped {
		skipped[s.ID] = s.Error
	}
	assert.Len(t, skipped, 4)
	assert.Contains(t, skipped["NoDocument.docx"], ooxml.ErrEntryNotFound.Error())
	assert.Contains(t, skipped["Malformed.docx"], ooxml.ErrParse.Error())
	assert.Contains(t, skipped["NoBody.docx"], ooxml.ErrMissingBody.Error())
	assert.Contains(t, skipped["NotZip.docx"], ooxml.ErrInvalidPackage.Error())
}

func TestListClauses_EmptyDirectory(t *testing.T) {
	svc := NewService(NewCatalog(os.DirFS(t.TempDir()), discardLogger()), discardLogger(), 4)
	listing := svc.ListClauses(context.Background())
	assert.NotNil(t, listing.Clauses)
	assert.Empty(t, listing.Clauses)
	assert.Empty(t, listing.Skipped)
}

func TestListClauses_MissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	svc := NewService(NewCatalog(os.DirFS(dir), discardLogger()), discardLogger(), 4)
	listing := svc.ListClauses(context.Background())
	assert.Empty(t, listing.Clauses)
}

func TestListClauses_FromDisk(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "NoticeOfIntent.docx"),
		ooxmltest.DOCX(t, `<w:p><w:r><w:t>Line1</w:t><w:br/><w:t>Line2</w:t></w:r></w:p>`), 0o644))

	svc := NewService(NewCatalog(os.DirFS(dir), discardLogger()), discardLogger(), 0)
	listing := svc.ListClauses(context.Background())
	require.Len(t, listing.Clauses, 1)
	assert.Equal(t, Clause{ID: "NoticeOfIntent.docx", Title: "Notice Of Intent", Content: "Line1\nLine2"}, listing.Clauses[0])
}
