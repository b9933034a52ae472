// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists extracted records as pretty-printed JSON files and
// reads them back. File names follow a fixed rule derived from the author
// key and the chapters the records cover.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/pdiddy/tafsir-engine/pkg/types"
)

// DataDir is the directory that holds one subdirectory per author.
const DataDir = "data"

// Writer writes record files under a root directory.
type Writer struct {
	root   string
	logger *slog.Logger
}

// New returns a Writer rooted at root ("" means the working directory).
func New(root string, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{root: root, logger: logger}
}

// Path returns the file path for records of authorKey covering chapterIDs,
// relative to the writer root:
//
//	one distinct chapter     data/{author}/{chapter}.json
//	several chapters         {author}_{min}-{max}.json
//	no chapters              {author}_all.json
func Path(authorKey string, chapterIDs []int) string {
	return pathWithExt(authorKey, chapterIDs, ".json")
}

func pathWithExt(authorKey string, chapterIDs []int, ext string) string {
	distinct := slices.Compact(slices.Sorted(slices.Values(chapterIDs)))
	switch len(distinct) {
	case 0:
		return authorKey + "_all" + ext
	case 1:
		return filepath.Join(DataDir, authorKey, strconv.Itoa(distinct[0])+ext)
	default:
		return fmt.Sprintf("%s_%d-%d%s", authorKey, distinct[0], distinct[len(distinct)-1], ext)
	}
}

// Write serializes records to the path derived from authorKey and
// chapterIDs, creating directories as needed, and returns that path
// (joined with the writer root). I/O failures are logged and returned as
// WriteError.
func (w *Writer) Write(records []types.ExtractedRecord, authorKey string, chapterIDs []int) (string, error) {
	path := filepath.Join(w.root, Path(authorKey, chapterIDs))

	data, err := MarshalRecords(records)
	if err != nil {
		w.logger.Error("failed to encode records", "path", path, "err", err)
		return "", types.NewFailure(types.KindWrite, err, "encoding %s", path)
	}
	if err := WriteFileAtomic(path, data); err != nil {
		w.logger.Error("failed to save JSON", "path", path, "err", err)
		return "", types.NewFailure(types.KindWrite, err, "writing %s", path)
	}

	w.logger.Info("data saved", "path", path, "records", len(records))
	return path, nil
}

// MarshalRecords encodes v as a 2-space indented JSON document without HTML
// escaping, so Arabic text and punctuation are written verbatim.
func MarshalRecords(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFileAtomic writes data to a temporary file next to path and renames
// it into place, creating parent directories first.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	tmpFile, err := os.CreateTemp(dir, ".store-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, writeErr := tmpFile.Write(data)
	closeErr := tmpFile.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", writeErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// ReadRecords decodes a record file written by Write.
func ReadRecords(path string) ([]types.ExtractedRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []types.ExtractedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
