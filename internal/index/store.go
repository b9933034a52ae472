// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index keeps a SQLite index of the persisted record files so that
// tafsir text can be searched across authors and chapters.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/tafsir-engine/internal/store"
	"github.com/pdiddy/tafsir-engine/pkg/types"
)

const (
	indexDir          = "index"
	dbFile            = "tafsir.db"
	defaultMaxResults = 20
)

// Store manages the index database at {DataDir}/index/tafsir.db.
type Store struct {
	db         *sql.DB
	dataDir    string
	maxResults int
	logger     *slog.Logger
}

// NewStore opens or creates the index database and its schema.
func NewStore(cfg types.IndexConfig, logger *slog.Logger) (*Store, error) {
	dbDir := filepath.Join(cfg.DataDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", filepath.Join(dbDir, dbFile)+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{db: db, dataDir: cfg.DataDir, maxResults: maxResults, logger: logger}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS records (
			author_key TEXT NOT NULL,
			chapter_id INTEGER NOT NULL,
			verse_id INTEGER NOT NULL,
			native_name TEXT,
			english_name TEXT,
			tafsir_text TEXT NOT NULL,
			author_name TEXT,
			source_url TEXT,
			extracted_at TEXT,
			file TEXT NOT NULL,
			PRIMARY KEY (author_key, chapter_id, verse_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_file ON records(file)`,
		`CREATE TABLE IF NOT EXISTS indexing_status (
			file TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// IngestSummary holds counts from an indexing run.
type IngestSummary struct {
	Indexed int
	Updated int
	Skipped int
	Failed  int
}

// Total returns the number of files processed.
func (s IngestSummary) Total() int {
	return s.Indexed + s.Updated + s.Skipped + s.Failed
}

// Ingest indexes every {DataDir}/data/{author}/*.json file. Files whose
// modification time matches the last run are skipped; changed files have
// their rows replaced in a single transaction.
func (s *Store) Ingest(ctx context.Context) (IngestSummary, error) {
	root := filepath.Join(s.dataDir, store.DataDir)
	authors, err := os.ReadDir(root)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("reading data directory %s: %w", root, err)
	}

	var summary IngestSummary
	for _, author := range authors {
		if !author.IsDir() {
			continue
		}
		entries, err := os.ReadDir(filepath.Join(root, author.Name()))
		if err != nil {
			s.logger.Error("reading author directory failed", "author", author.Name(), "err", err)
			summary.Failed++
			continue
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}
			select {
			case <-ctx.Done():
				return summary, ctx.Err()
			default:
			}
			s.ingestEntry(ctx, author.Name(), entry, &summary)
		}
	}

	s.logger.Info("ingest complete",
		"indexed", summary.Indexed, "updated", summary.Updated,
		"skipped", summary.Skipped, "failed", summary.Failed)
	return summary, nil
}

func (s *Store) ingestEntry(ctx context.Context, authorKey string, entry os.DirEntry, summary *IngestSummary) {
	file := filepath.ToSlash(filepath.Join(authorKey, entry.Name()))
	logger := s.logger.With("file", file)

	info, err := entry.Info()
	if err != nil {
		logger.Error("stat failed", "err", err)
		summary.Failed++
		return
	}
	modTime := info.ModTime().UTC().Format(time.RFC3339Nano)

	var storedModTime string
	err = s.db.QueryRowContext(ctx,
		`SELECT file_mod_time FROM indexing_status WHERE file = ?`, file,
	).Scan(&storedModTime)
	if err == nil && storedModTime == modTime {
		logger.Debug("skipped unchanged file")
		summary.Skipped++
		return
	}
	isUpdate := err == nil

	records, err := store.ReadRecords(filepath.Join(s.dataDir, store.DataDir, authorKey, entry.Name()))
	if err != nil {
		logger.Error("reading records failed", "err", err)
		summary.Failed++
		return
	}

	if err := s.ingestFile(ctx, authorKey, file, records, modTime); err != nil {
		logger.Error("indexing failed", "err", err)
		summary.Failed++
		return
	}

	if isUpdate {
		logger.Info("updated", "records", len(records))
		summary.Updated++
	} else {
		logger.Info("indexed", "records", len(records))
		summary.Indexed++
	}
}

func (s *Store) ingestFile(ctx context.Context, authorKey, file string, records []types.ExtractedRecord, modTime string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM records WHERE file = ?`, file); err != nil {
		return fmt.Errorf("deleting old records: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO records (author_key, chapter_id, verse_id, native_name, english_name,
			tafsir_text, author_name, source_url, extracted_at, file)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		_, err := stmt.ExecContext(ctx,
			authorKey, r.ChapterID, r.VerseID, r.NativeName, r.EnglishName,
			r.TafsirText, r.AuthorName, r.SourceURL, r.ExtractedAt, file,
		)
		if err != nil {
			return fmt.Errorf("inserting %d:%d: %w", r.ChapterID, r.VerseID, err)
		}
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO indexing_status (file, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(file) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		file, modTime,
	)
	if err != nil {
		return fmt.Errorf("updating indexing status: %w", err)
	}
	return tx.Commit()
}
