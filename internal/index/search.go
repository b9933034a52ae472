// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/pdiddy/tafsir-engine/pkg/types"
)

// QueryOptions holds search parameters. Empty fields do not filter.
type QueryOptions struct {
	// Query is a substring matched against the tafsir text.
	Query string

	// Author filters by author key.
	Author string

	// ChapterID filters by chapter when non-zero.
	ChapterID int

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

// QueryResult is an indexed record with the key of its author.
type QueryResult struct {
	types.ExtractedRecord `yaml:",inline"`
	AuthorKey             string `json:"authorKey" yaml:"author_key"`
}

// likeEscaper escapes LIKE wildcards so the query matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search returns records matching opts ordered by author, chapter, and verse.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]QueryResult, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(
		`SELECT author_key, chapter_id, verse_id, native_name, english_name,
			tafsir_text, author_name, source_url, extracted_at
		FROM records
		WHERE 1=1`)

	if opts.Query != "" {
		qb.WriteString(` AND tafsir_text LIKE ? ESCAPE '\'`)
		args = append(args, "%"+likeEscaper.Replace(opts.Query)+"%")
	}
	if opts.Author != "" {
		qb.WriteString(` AND author_key = ?`)
		args = append(args, opts.Author)
	}
	if opts.ChapterID != 0 {
		qb.WriteString(` AND chapter_id = ?`)
		args = append(args, opts.ChapterID)
	}

	qb.WriteString(` ORDER BY author_key, chapter_id, verse_id LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying index: %w", err)
	}
	defer rows.Close()

	var results []QueryResult
	for rows.Next() {
		qr, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, qr)
	}
	return results, rows.Err()
}

// Get returns the indexed record of one verse for one author.
func (s *Store) Get(ctx context.Context, author string, chapterID, verseID int) (QueryResult, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT author_key, chapter_id, verse_id, native_name, english_name,
			tafsir_text, author_name, source_url, extracted_at
		FROM records WHERE author_key = ? AND chapter_id = ? AND verse_id = ?`,
		author, chapterID, verseID)

	qr, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return QueryResult{}, fmt.Errorf("%s %d:%d not indexed", author, chapterID, verseID)
	}
	return qr, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanResult(sc scanner) (QueryResult, error) {
	var (
		qr                               QueryResult
		native, english, name, src, when sql.NullString
	)
	err := sc.Scan(&qr.AuthorKey, &qr.ChapterID, &qr.VerseID, &native, &english,
		&qr.TafsirText, &name, &src, &when)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return qr, err
		}
		return qr, fmt.Errorf("scanning row: %w", err)
	}
	qr.NativeName = native.String
	qr.EnglishName = english.String
	qr.AuthorName = name.String
	qr.SourceURL = src.String
	qr.ExtractedAt = when.String
	return qr, nil
}
