// Package cache stores built outlines in SQLite, keyed by the PDF's content
// hash and a fingerprint of the heuristics that produced them.
package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/thywilljoshua/pdf-digest/internal/outline"
)

const schema = `
CREATE TABLE IF NOT EXISTS outlines (
	hash        TEXT NOT NULL,
	fingerprint TEXT NOT NULL,
	name        TEXT NOT NULL,
	title       TEXT NOT NULL,
	sections    TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	PRIMARY KEY (hash, fingerprint)
);
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	started_at  TEXT NOT NULL,
	finished_at TEXT,
	documents   INTEGER NOT NULL,
	sections    INTEGER
);`

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA busy_timeout=10000",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA foreign_keys=ON",
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path. ":memory:"
// gives a private in-memory store.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("cache: mkdir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open: %w", err)
	}
	db.SetMaxOpenConns(1)
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("cache: %s: %w", p, err)
		}
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Get returns the cached outline for (hash, fingerprint).
func (s *Store) Get(ctx context.Context, hash, fingerprint string) (outline.DocumentOutline, bool, error) {
	var title, sections string
	err := s.db.QueryRowContext(ctx,
		`SELECT title, sections FROM outlines WHERE hash = ? AND fingerprint = ?`,
		hash, fingerprint).Scan(&title, &sections)
	if errors.Is(err, sql.ErrNoRows) {
		return outline.DocumentOutline{}, false, nil
	}
	if err != nil {
		return outline.DocumentOutline{}, false, fmt.Errorf("cache: get: %w", err)
	}
	out := outline.DocumentOutline{Title: title}
	if err := json.Unmarshal([]byte(sections), &out.Sections); err != nil {
		return outline.DocumentOutline{}, false, fmt.Errorf("cache: decode sections: %w", err)
	}
	return out, true, nil
}

// Put stores or replaces the outline for (hash, fingerprint).
func (s *Store) Put(ctx context.Context, hash, fingerprint, name string, o outline.DocumentOutline) error {
	secs := o.Sections
	if secs == nil {
		secs = []outline.Section{}
	}
	b, err := json.Marshal(secs)
	if err != nil {
		return fmt.Errorf("cache: encode sections: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO outlines (hash, fingerprint, name, title, sections, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (hash, fingerprint) DO UPDATE SET
			name = excluded.name,
			title = excluded.title,
			sections = excluded.sections,
			created_at = excluded.created_at`,
		hash, fingerprint, name, o.Title, string(b), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("cache: put: %w", err)
	}
	return nil
}

// BeginRun records the start of a batch and returns its id.
func (s *Store) BeginRun(ctx context.Context, documents int) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, documents) VALUES (?, ?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339Nano), documents)
	if err != nil {
		return "", fmt.Errorf("cache: begin run: %w", err)
	}
	return id, nil
}

func (s *Store) FinishRun(ctx context.Context, id string, sections int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, sections = ? WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339Nano), sections, id)
	if err != nil {
		return fmt.Errorf("cache: finish run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("cache: finish run: unknown run %s", id)
	}
	return nil
}

// Hash returns the hex SHA-256 of r's contents.
func Hash(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashFile hashes the file at path.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Hash(f)
}

// Fingerprint identifies a parameter set; outlines built with different
// heuristics never share a cache entry.
func Fingerprint(params any) string {
	b, err := json.Marshal(params)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:8])
}
