// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"bytes"
	"encoding/csv"
	"path/filepath"
	"strconv"

	"github.com/pdiddy/tafsir-engine/pkg/types"
)

// csvHeader mirrors the JSON field names of ExtractedRecord.
var csvHeader = []string{
	"chapterId", "nativeName", "englishName", "verseId",
	"tafsirText", "authorName", "sourceUrl", "extractedAt",
}

// CSVPath is Path with a .csv extension.
func CSVPath(authorKey string, chapterIDs []int) string {
	return pathWithExt(authorKey, chapterIDs, ".csv")
}

// WriteCSV writes records as CSV with a header row, using the same naming
// rule as Write.
func (w *Writer) WriteCSV(records []types.ExtractedRecord, authorKey string, chapterIDs []int) (string, error) {
	path := filepath.Join(w.root, CSVPath(authorKey, chapterIDs))

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(csvHeader); err != nil {
		return "", types.NewFailure(types.KindWrite, err, "encoding %s", path)
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.ChapterID), r.NativeName, r.EnglishName, strconv.Itoa(r.VerseID),
			r.TafsirText, r.AuthorName, r.SourceURL, r.ExtractedAt,
		}
		if err := cw.Write(row); err != nil {
			return "", types.NewFailure(types.KindWrite, err, "encoding %s", path)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", types.NewFailure(types.KindWrite, err, "encoding %s", path)
	}

	if err := WriteFileAtomic(path, buf.Bytes()); err != nil {
		w.logger.Error("failed to save CSV", "path", path, "err", err)
		return "", types.NewFailure(types.KindWrite, err, "writing %s", path)
	}
	w.logger.Info("data saved", "path", path, "records", len(records))
	return path, nil
}
