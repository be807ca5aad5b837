package will

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("will not found")

// Will is a stored will document. Data holds the decoded document bytes.
type Will struct {
	ID          int64     `json:"id"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	ContentHash string    `json:"content_hash"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Data []byte `json:"-"`
}

// File is an uploaded document version.
type File struct {
	MimeType string
	Data     []byte
}

const schema = `
CREATE TABLE IF NOT EXISTS wills (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	mime_type    TEXT NOT NULL,
	size         INTEGER NOT NULL,
	buffer       TEXT NOT NULL,
	content_hash TEXT NOT NULL,
	created_at   TEXT NOT NULL,
	updated_at   TEXT NOT NULL
)`

// Store persists will documents in SQLite. The document is kept base64
// encoded in a text column.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the SQLite database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// One connection keeps ":memory:" databases coherent and serialises writers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Create stores a new will.
func (s *Store) Create(ctx context.Context, f File) (*Will, error) {
	now := s.now().UTC()
	w := newWill(f, now)

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO wills (mime_type, size, buffer, content_hash, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		w.MimeType, w.Size, base64.StdEncoding.EncodeToString(f.Data), w.ContentHash,
		formatTime(now), formatTime(now))
	if err != nil {
		return nil, fmt.Errorf("insert will: %w", err)
	}
	w.ID, err = res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert will: %w", err)
	}
	return w, nil
}

// Update replaces the document of an existing will.
func (s *Store) Update(ctx context.Context, id int64, f File) (*Will, error) {
	now := s.now().UTC()

	res, err := s.db.ExecContext(ctx,
		`UPDATE wills SET mime_type = ?, size = ?, buffer = ?, content_hash = ?, updated_at = ?
		 WHERE id = ?`,
		f.MimeType, len(f.Data), base64.StdEncoding.EncodeToString(f.Data), ContentHashHex(f.Data),
		formatTime(now), id)
	if err != nil {
		return nil, fmt.Errorf("update will %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update will %d: %w", id, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return s.Get(ctx, id)
}

// Get loads a will with its document bytes.
func (s *Store) Get(ctx context.Context, id int64) (*Will, error) {
	var (
		w                Will
		buffer           string
		created, updated string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, mime_type, size, buffer, content_hash, created_at, updated_at
		 FROM wills WHERE id = ?`, id).
		Scan(&w.ID, &w.MimeType, &w.Size, &buffer, &w.ContentHash, &created, &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("get will %d: %w", id, err)
	}

	w.Data, err = base64.StdEncoding.DecodeString(buffer)
	if err != nil {
		return nil, fmt.Errorf("decode will %d: %w", id, err)
	}
	if w.CreatedAt, err = time.Parse(time.RFC3339Nano, created); err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	if w.UpdatedAt, err = time.Parse(time.RFC3339Nano, updated); err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &w, nil
}

func newWill(f File, now time.Time) *Will {
	return &Will{
		MimeType:    f.MimeType,
		Size:        int64(len(f.Data)),
		ContentHash: ContentHashHex(f.Data),
		CreatedAt:   now,
		UpdatedAt:   now,
		Data:        f.Data,
	}
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
