// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract drives verse, chapter, and range extraction: it walks the
// catalog, fetches each verse page, parses it into a record, and hands every
// non-empty chapter to the writer.
package extract

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pdiddy/tafsir-engine/internal/catalog"
	"github.com/pdiddy/tafsir-engine/internal/parse"
	"github.com/pdiddy/tafsir-engine/pkg/types"
)

// Fetcher retrieves one page body.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Writer persists the records of one chapter and returns the written path.
type Writer interface {
	Write(records []types.ExtractedRecord, authorKey string, chapterIDs []int) (string, error)
}

// BatchResult summarises a range or full extraction run.
type BatchResult struct {
	RunID         string
	Records       []types.ExtractedRecord
	Files         []string
	Chapters      int
	EmptyChapters int
	WriteFailures int
}

// HasFailures reports whether any chapter could not be written.
func (r BatchResult) HasFailures() bool {
	return r.WriteFailures > 0
}

// Extractor extracts tafsir for a single author.
type Extractor struct {
	fetcher Fetcher
	writer  Writer
	parser  *parse.Parser
	author  types.Author
	logger  *slog.Logger
}

// New returns an Extractor for cfg.Author rooted at cfg.BaseURL.
func New(fetcher Fetcher, writer Writer, cfg types.ExtractionConfig, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		fetcher: fetcher,
		writer:  writer,
		parser:  parse.New(cfg.Author, cfg.BaseURL),
		author:  cfg.Author,
		logger:  logger.With("author", cfg.Author.Key),
	}
}

// Parser exposes the record builder so callers can adjust its clock.
func (e *Extractor) Parser() *parse.Parser {
	return e.parser
}

// ExtractVerse fetches and parses a single verse. The chapter must exist and
// the verse must lie within its verse count.
func (e *Extractor) ExtractVerse(ctx context.Context, chapterID, verseID int) (types.ExtractedRecord, error) {
	info, ok := catalog.Lookup(chapterID)
	if !ok {
		return types.ExtractedRecord{}, types.NewFailure(types.KindInvalidChapter, nil,
			"chapter %d not in %d..%d", chapterID, catalog.FirstChapter, catalog.LastChapter)
	}
	if verseID < 1 || verseID > info.VerseCount {
		return types.ExtractedRecord{}, types.NewFailure(types.KindInvalidVerse, nil,
			"verse %d not in 1..%d for chapter %d", verseID, info.VerseCount, chapterID)
	}
	return e.extractVerse(ctx, e.logger, chapterID, verseID)
}

func (e *Extractor) extractVerse(ctx context.Context, logger *slog.Logger, chapterID, verseID int) (types.ExtractedRecord, error) {
	doc, err := e.fetcher.Fetch(ctx, e.parser.SourceURL(chapterID, verseID))
	if err != nil {
		return types.ExtractedRecord{}, err
	}
	rec, err := e.parser.Parse(doc, chapterID, verseID)
	if err != nil {
		return types.ExtractedRecord{}, err
	}
	logger.Debug("verse extracted", "chapter", chapterID, "verse", verseID)
	return rec, nil
}

// ExtractChapter extracts every verse of a chapter in order. Verses that fail
// are logged and skipped; the only error is InvalidChapter, or the context
// error if ctx ends mid-chapter, in which case the records gathered so far
// are returned with it.
func (e *Extractor) ExtractChapter(ctx context.Context, chapterID int) ([]types.ExtractedRecord, error) {
	return e.extractChapter(ctx, e.logger, chapterID)
}

func (e *Extractor) extractChapter(ctx context.Context, logger *slog.Logger, chapterID int) ([]types.ExtractedRecord, error) {
	info, ok := catalog.Lookup(chapterID)
	if !ok {
		return nil, types.NewFailure(types.KindInvalidChapter, nil,
			"chapter %d not in %d..%d", chapterID, catalog.FirstChapter, catalog.LastChapter)
	}

	logger.Info("extracting chapter", "chapter", chapterID, "name", info.EnglishName, "verses", info.VerseCount)

	records := make([]types.ExtractedRecord, 0, info.VerseCount)
	for verse := 1; verse <= info.VerseCount; verse++ {
		if err := ctx.Err(); err != nil {
			return records, err
		}
		rec, err := e.extractVerse(ctx, logger, chapterID, verse)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return records, ctxErr
			}
			logger.Warn("verse extraction failed", "chapter", chapterID, "verse", verse, "err", err)
			continue
		}
		records = append(records, rec)
	}

	logger.Info("chapter complete", "chapter", chapterID, "records", len(records))
	return records, nil
}

// ExtractChapterRange extracts chapters startID..endID inclusive, writing
// each non-empty chapter as soon as it completes. Write failures are logged
// and counted; the run continues.
func (e *Extractor) ExtractChapterRange(ctx context.Context, startID, endID int) (BatchResult, error) {
	if startID < catalog.FirstChapter || endID > catalog.LastChapter || startID > endID {
		return BatchResult{}, types.NewFailure(types.KindInvalidChapter, nil,
			"range %d-%d not within %d..%d", startID, endID, catalog.FirstChapter, catalog.LastChapter)
	}

	result := BatchResult{RunID: uuid.NewString()}
	logger := e.logger.With("run_id", result.RunID)
	logger.Info("starting extraction run", "start", startID, "end", endID)

	for id := startID; id <= endID; id++ {
		records, err := e.extractChapter(ctx, logger, id)
		result.Records = append(result.Records, records...)
		if err != nil {
			logger.Warn("extraction run interrupted", "chapter", id, "err", err)
			return result, err
		}
		result.Chapters++

		if len(records) == 0 {
			result.EmptyChapters++
			logger.Warn("chapter produced no records", "chapter", id)
			continue
		}

		path, err := e.writer.Write(records, e.author.Key, []int{id})
		if err != nil {
			result.WriteFailures++
			logger.Error("chapter write failed", "chapter", id, "err", err)
			continue
		}
		result.Files = append(result.Files, path)
	}

	logger.Info("extraction run complete",
		"chapters", result.Chapters,
		"records", len(result.Records),
		"files", len(result.Files),
		"empty", result.EmptyChapters,
		"write_failures", result.WriteFailures)
	return result, nil
}

// ExtractAll extracts every chapter of the catalog.
func (e *Extractor) ExtractAll(ctx context.Context) (BatchResult, error) {
	return e.ExtractChapterRange(ctx, catalog.FirstChapter, catalog.LastChapter)
}
