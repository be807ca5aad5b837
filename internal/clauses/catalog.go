package clauses

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"unicode"
)

// Extension is the file extension of clause packages.
const Extension = ".docx"

var ErrDirectoryUnavailable = errors.New("clause directory unavailable")

// Source identifies one clause package in the catalog.
type Source struct {
	ID    string // filename, stable until the file is renamed
	Title string // derived from the filename
	Path  string // path within the catalog filesystem
}

// Catalog enumerates clause packages in a directory. Nothing is cached; every
// listing reads the directory again.
type Catalog struct {
	fsys fs.FS
	log  *slog.Logger
}

func NewCatalog(fsys fs.FS, log *slog.Logger) *Catalog {
	return &Catalog{fsys: fsys, log: log}
}

// Sources lists the clause packages sorted by filename.
func (c *Catalog) Sources() ([]Source, error) {
	entries, err := fs.ReadDir(c.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}

	var out []Source
	for _, e := range entries {
		name := e.Name()
		if !e.Type().IsRegular() || !strings.HasSuffix(name, Extension) {
			continue
		}
		out = append(out, Source{
			ID:    name,
			Title: DeriveTitle(name),
			Path:  name,
		})
	}
	return out, nil
}

// ListSources is the best-effort form of Sources: an unreadable directory is
// logged and yields an empty listing.
func (c *Catalog) ListSources() []Source {
	sources, err := c.Sources()
	if err != nil {
		c.log.Error("list clause sources", "error", err)
		return []Source{}
	}
	return sources
}

// Read returns the raw package bytes of src.
func (c *Catalog) Read(src Source) ([]byte, error) {
	data, err := fs.ReadFile(c.fsys, src.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src.ID, err)
	}
	return data, nil
}

// DeriveTitle turns a clause filename into a display title by stripping the
// extension and inserting a space before each internal uppercase letter:
// "NoticeOfIntent.docx" becomes "Notice Of Intent".
func DeriveTitle(filename string) string {
	name := strings.TrimSuffix(filename, Extension)

	var b strings.Builder
	prev := ' '
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) && prev != ' ' {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
