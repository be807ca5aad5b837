package clauses

import (
	"context"
	"log/slog"

	"github.com/dgallion1/willclause/internal/ooxml"
	"golang.org/x/sync/errgroup"
)

// Clause is an extracted clause ready for the editor.
type Clause struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Skipped records a clause package that could not be extracted.
type Skipped struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// Listing is the result of one ListClauses call. Clauses keeps catalog order.
type Listing struct {
	Clauses []Clause  `json:"clauses"`
	Skipped []Skipped `json:"skipped"`
}

// Service turns the clause catalog into extracted clauses.
type Service struct {
	catalog *Catalog
	walker  ooxml.Walker
	log     *slog.Logger

	maxConcurrent int
}

func NewService(catalog *Catalog, log *slog.Logger, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Service{
		catalog:       catalog,
		walker:        ooxml.NewWalker(),
		log:           log,
		maxConcurrent: maxConcurrent,
	}
}

// ListClauses extracts every package in the catalog. A package that fails to
// read, unzip, parse or walk is left out of Clauses and reported in Skipped;
// it never fails the listing as a whole.
func (s *Service) ListClauses(ctx context.Context) Listing {
	sources := s.catalog.ListSources()

	type result struct {
		clause Clause
		err    error
	}
	results := make([]result, len(sources))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)
	for i, src := range sources {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				results[i].err = err
				return nil
			}
			content, err := s.extract(src)
			results[i] = result{
				clause: Clause{ID: src.ID, Title: src.Title, Content: content},
				err:    err,
			}
			return nil
		})
	}
	_ = g.Wait()

	listing := Listing{Clauses: []Clause{}, Skipped: []Skipped{}}
	for i, r := range results {
		if r.err != nil {
			s.log.Warn("skipping clause", "id", sources[i].ID, "error", r.err)
			listing.Skipped = append(listing.Skipped, Skipped{ID: sources[i].ID, Error: r.err.Error()})
			continue
		}
		listing.Clauses = append(listing.Clauses, r.clause)
	}
	return listing
}

func (s *Service) extract(src Source) (string, error) {
	data, err := s.catalog.Read(src)
	if err != nil {
		return "", err
	}
	return ooxml.ExtractTextWith(s.walker, data)
}
