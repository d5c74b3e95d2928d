// Package store is the topic-map retrieval engine: read-only operations that
// assemble graph-shaped entities (topics with names, attributes, occurrences
// and association membership) from the normalized relational schema.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"strings"
	"unicode"

	_ "modernc.org/sqlite"
)

// ErrMissingArgument is returned by GetAssociationGroups when called with
// neither an identifier nor a pre-fetched association list.
var ErrMissingArgument = errors.New("either an identifier or a list of associations is required")

// StoreError wraps any backing-store fault, naming the operation that failed.
// Not-found is never an error: single-entity lookups return a nil entity and
// a nil error when no row matches.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("topic store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

// Options configures a Store.
type Options struct {
	// Logger is an optional structured logger. If nil, a stderr text handler
	// at Info level is used.
	Logger *slog.Logger
	// MaxOpenConns bounds the connection pool. Defaults to 4.
	MaxOpenConns int
}

// Store reads one topic-map database. All operations are safe for concurrent
// use; each acquires its own connection (or read-only transaction) from the
// pool for its duration and releases it on every exit path. The store never
// writes.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// Open opens the database read-only. The file must exist and carry the
// topic-map schema.
func Open(path string, opts Options) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open topic map db %s: %w", path, err)
	}
	maxConns := opts.MaxOpenConns
	if maxConns <= 0 {
		maxConns = 4
	}
	db.SetMaxOpenConns(maxConns)

	logger := opts.Logger
	if logger == nil {
		logger = defaultLogger()
	}
	return &Store{db: db, log: logger}, nil
}

// Create creates (or completes) a topic-map database at path and returns
// once the schema exists. Used by bootstrap tooling and tests; the retrieval
// engine itself never writes.
func Create(ctx context.Context, path string) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("create topic map db %s: %w", path, err)
	}
	defer func() { _ = db.Close() }() // safe to ignore

	return InitSchema(ctx, db)
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

func defaultLogger() *slog.Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(h)
}

// baseTopics is the built-in ontology every topic map starts from: scopes,
// navigation topics, occurrence kinds, data types and language topics.
var baseTopics = map[string]string{
	"*":              "Universal",
	"home":           "Home",
	"entity":         "Entity",
	"topic":          "Topic",
	"base-topic":     "Base Topic",
	"association":    "Association",
	"occurrence":     "Occurrence",
	"navigation":     "Navigation",
	"member":         "Member",
	"category":       "Category",
	"categorization": "Categorization",
	"tag":            "Tag",
	"tags":           "Tags",
	"note":           "Note",
	"notes":          "Notes",
	"broader":        "Broader",
	"narrower":       "Narrower",
	"related":        "Related",
	"parent":         "Parent",
	"child":          "Child",
	"previous":       "Previous",
	"next":           "Next",
	"up":             "Up",
	"down":           "Down",
	"image":          "Image",
	"video":          "Video",
	"audio":          "Audio",
	"file":           "File",
	"url":            "URL",
	"text":           "Text",
	"3d-scene":       "3D Scene",
	"string":         "String",
	"number":         "Number",
	"timestamp":      "Timestamp",
	"boolean":        "Boolean",
	"eng":            "English Language",
	"spa":            "Spanish Language",
	"nld":            "Dutch Language",
	"inclusion":      "Inclusion",
	"characteristic": "Characteristic",
	"action":         "Action",
	"process":        "Process",
	"temporal":       "Temporal",
}

// BaseTopics returns the built-in ontology: identifier to display name.
func BaseTopics() map[string]string {
	return maps.Clone(baseTopics)
}

// NormalizeTopicName turns a slugified identifier into a display form:
// "base-topic" becomes "Base Topic".
func NormalizeTopicName(identifier string) string {
	words := strings.Split(identifier, "-")
	for i, word := range words {
		runes := []rune(word)
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// beginRead starts a read-only transaction, used by operations that issue
// several dependent queries and need one consistent snapshot.
func (s *Store) beginRead(ctx context.Context) (*sql.Tx, error) {
	return s.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
}
