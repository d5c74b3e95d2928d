// Package search maintains a token index over occurrence resource payloads.
// Tokens map to roaring bitmaps of occurrence ordinals; the bitmaps and the
// ordinal-to-identifier table live in the topic-map database itself, so a
// built index travels with the map file.
package search

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/RoaringBitmap/roaring"
	_ "modernc.org/sqlite"
)

const indexDDL = `
CREATE TABLE IF NOT EXISTS occurrence_index (
	token TEXT PRIMARY KEY,
	bitmap BLOB NOT NULL
);
CREATE TABLE IF NOT EXISTS occurrence_ids (
	id INTEGER PRIMARY KEY,
	identifier TEXT UNIQUE NOT NULL
);
`

// Indexer accumulates token postings in memory and writes them to the
// database in a single transaction. Mutations happen in RAM; no SQL is
// issued until Flush.
type Indexer struct {
	db *sql.DB

	flushOnce sync.Once
	mu        sync.Mutex
	pending   map[string]*roaring.Bitmap
	ordinals  map[string]uint32
	next      uint32
}

// NewIndexer opens the topic-map database read-write and ensures the index
// tables exist. The caller owns the returned Indexer and must Close it.
func NewIndexer(path string) (*Indexer, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open index database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(indexDDL); err != nil {
		_ = db.Close() // safe to ignore
		return nil, fmt.Errorf("create index tables: %w", err)
	}

	return &Indexer{
		db:       db,
		pending:  make(map[string]*roaring.Bitmap),
		ordinals: make(map[string]uint32),
	}, nil
}

// Close releases the database handle. Pending postings that were never
// flushed are discarded.
func (ix *Indexer) Close() error {
	return ix.db.Close()
}

// Add tokenizes text and accumulates one posting per distinct token against
// the occurrence identifier. No SQL is issued until Flush.
func (ix *Indexer) Add(identifier string, text []byte) {
	tokens := Tokenize(string(text))
	if len(tokens) == 0 {
		return
	}

	ix.mu.Lock()
	defer ix.mu.Unlock()

	ord, ok := ix.ordinals[identifier]
	if !ok {
		ord = ix.next
		ix.next++
		ix.ordinals[identifier] = ord
	}

	for _, token := range tokens {
		bm, ok := ix.pending[token]
		if !ok {
			bm = roaring.New()
			ix.pending[token] = bm
		}
		bm.Add(ord)
	}
}

// Flush writes all accumulated postings and the ordinal table in a single
// transaction. Guarded by sync.Once; only the first call performs the
// flush.
func (ix *Indexer) Flush() error {
	var flushErr error
	ix.flushOnce.Do(func() {
		flushErr = ix.flush()
	})
	return flushErr
}

func (ix *Indexer) flush() error {
	ix.mu.Lock()
	pending := ix.pending
	ordinals := ix.ordinals
	ix.mu.Unlock()

	if len(pending) == 0 {
		return nil
	}

	tx, err := ix.db.Begin()
	if err != nil {
		return fmt.Errorf("begin index flush: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // safe to ignore

	idStmt, err := tx.Prepare("INSERT OR IGNORE INTO occurrence_ids (id, identifier) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare occurrence_ids insert: %w", err)
	}
	defer func() { _ = idStmt.Close() }() // safe to ignore

	for identifier, ord := range ordinals {
		if _, err := idStmt.Exec(ord, identifier); err != nil {
			return fmt.Errorf("insert occurrence id %s: %w", identifier, err)
		}
	}

	tokenStmt, err := tx.Prepare("INSERT OR REPLACE INTO occurrence_index (token, bitmap) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare occurrence_index insert: %w", err)
	}
	defer func() { _ = tokenStmt.Close() }() // safe to ignore

	var buf bytes.Buffer
	for token, bm := range pending {
		buf.Reset()
		if _, err := bm.WriteTo(&buf); err != nil {
			return fmt.Errorf("serialize bitmap for %s: %w", token, err)
		}
		if _, err := tokenStmt.Exec(token, buf.Bytes()); err != nil {
			return fmt.Errorf("insert token %s: %w", token, err)
		}
	}

	return tx.Commit()
}

// Lookup returns the identifiers of the occurrences whose payload contains
// token. The token is normalized the same way Add normalizes text, so
// callers may pass raw user input. Returns nil when the token is unknown;
// input the tokenizer drops entirely (punctuation, single runes) can never
// be indexed and is likewise not found.
func (ix *Indexer) Lookup(ctx context.Context, token string) ([]string, error) {
	normalized := Tokenize(token)
	if len(normalized) == 0 {
		return nil, nil
	}
	if len(normalized) > 1 {
		return nil, fmt.Errorf("lookup: %q is not a single token", token)
	}

	var blob []byte
	err := ix.db.QueryRowContext(ctx,
		"SELECT bitmap FROM occurrence_index WHERE token = ?", normalized[0]).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup token %s: %w", normalized[0], err)
	}

	bm := roaring.New()
	if err := bm.UnmarshalBinary(blob); err != nil {
		return nil, fmt.Errorf("unmarshal bitmap for %s: %w", normalized[0], err)
	}

	var ordinals []uint32
	it := bm.Iterator()
	for it.HasNext() {
		ordinals = append(ordinals, it.Next())
	}
	if len(ordinals) == 0 {
		return nil, nil
	}

	args := make([]any, len(ordinals))
	placeholders := make([]string, len(ordinals))
	for i, ord := range ordinals {
		args[i] = ord
		placeholders[i] = "?"
	}

	query := fmt.Sprintf("SELECT identifier FROM occurrence_ids WHERE id IN (%s) ORDER BY id",
		strings.Join(placeholders, ","))
	rows, err := ix.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("resolve occurrence ids: %w", err)
	}
	defer func() { _ = rows.Close() }() // safe to ignore

	var identifiers []string
	for rows.Next() {
		var identifier string
		if err := rows.Scan(&identifier); err != nil {
			return nil, fmt.Errorf("scan occurrence id: %w", err)
		}
		identifiers = append(identifiers, identifier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resolve occurrence ids: %w", err)
	}
	return identifiers, nil
}

// OccurrenceTexts is the slice of the store surface the builder needs.
type OccurrenceTexts interface {
	ForEachOccurrenceText(ctx context.Context, mapIdentifier int, fn func(identifier string, data []byte) error) error
}

// Build streams every occurrence payload in the map through the indexer and
// flushes the result.
func (ix *Indexer) Build(ctx context.Context, src OccurrenceTexts, mapIdentifier int) error {
	err := src.ForEachOccurrenceText(ctx, mapIdentifier, func(identifier string, data []byte) error {
		ix.Add(identifier, data)
		return nil
	})
	if err != nil {
		return err
	}
	return ix.Flush()
}

// Tokenize lowercases text and splits it on any rune that is not a letter
// or digit. Single-rune tokens are dropped.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}
