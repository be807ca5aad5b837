package clauses

import (
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"NoticeOfIntentToProbate", "Notice Of Intent To Probate"},
		{"NoticeOfIntent.docx", "Notice Of Intent"},
		{"Guardianship.docx", "Guardianship"},
		{"Notice Of Intent", "Notice Of Intent"},
		{"residuaryEstate.docx", "residuary Estate"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DeriveTitle(tt.in), "DeriveTitle(%q)", tt.in)
	}
}

func TestDeriveTitle_Idempotent(t *testing.T) {
	once := DeriveTitle("AppointmentOfExecutor")
	assert.Equal(t, once, DeriveTitle(once))
}

func TestCatalog_Sources(t *testing.T) {
	fsys := fstest.MapFS{
		"NoticeOfIntent.docx": {Data: []byte("a")},
		"Guardianship.docx":   {Data: []byte("b")},
		"readme.txt":          {Data: []byte("c")},
		"Nested/Ignored.docx": {Data: []byte("d")},
		"Executors.docx.bak":  {Data: []byte("e")},
	}
	c := NewCatalog(fsys, discardLogger())

	sources, err := c.Sources()
	require.NoError(t, err)
	assert.Equal(t, []Source{
		{ID: "Guardianship.docx", Title: "Guardianship", Path: "Guardianship.docx"},
		{ID: "NoticeOfIntent.docx", Title: "Notice Of Intent", Path: "NoticeOfIntent.docx"},
	}, sources)

	data, err := c.Read(sources[1])
	require.NoError(t, err)
	assert.Equal(t, "a", string(data))
}

func TestCatalog_MissingDirectory(t *testing.T) {
	c := NewCatalog(osDirFS(t.TempDir()), discardLogger())
	sources, err := c.Sources()
	require.NoError(t, err)
	assert.Empty(t, sources)

	missing := NewCatalog(osDirFS(t.TempDir()+"/does-not-exist"), discardLogger())
	_, err = missing.Sources()
	assert.ErrorIs(t, err, ErrDirectoryUnavailable)

	listed := missing.ListSources()
	assert.NotNil(t, listed)
	assert.Empty(t, listed)
}

func TestCatalog_ReadMissingFile(t *testing.T) {
	c := NewCatalog(fstest.MapFS{}, discardLogger())
	_, err := c.Read(Source{ID: "Gone.docx", Path: "Gone.docx"})
	assert.Error(t, err)
}

func TestUniqueBookmarkName(t *testing.T) {
	assert.Equal(t, "Guardianship", UniqueBookmarkName(nil, "Guardianship"))
	assert.Equal(t, "Guardianship (1)", UniqueBookmarkName([]string{"Guardianship"}, "Guardianship"))
	assert.Equal(t, "Guardianship (3)", UniqueBookmarkName(
		[]string{"Guardianship", "Guardianship (1)", "Guardianship (2)"}, "Guardianship"))
	assert.Equal(t, "Guardianship (1)", UniqueBookmarkName(
		[]string{"Guardianship", "Guardianship (2)"}, "Guardianship"))
}
