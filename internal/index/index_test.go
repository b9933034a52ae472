// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package index

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tafsir-engine/internal/store"
	"github.com/pdiddy/tafsir-engine/pkg/types"
)

func testSetup(t *testing.T) (*Store, string, *bytes.Buffer) {
	t.Helper()
	root := t.TempDir()
	var logs bytes.Buffer
	s, err := NewStore(types.IndexConfig{DataDir: root}, slog.New(slog.NewTextHandler(&logs, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, root, &logs
}

func record(chapter, verse int, author, text string) types.ExtractedRecord {
	return types.ExtractedRecord{
		ChapterID:   chapter,
		NativeName:  "الفاتحة",
		EnglishName: "Al-Fatihah",
		VerseID:     verse,
		TafsirText:  text,
		AuthorName:  author,
		SourceURL:   "https://tafsir.app/x",
		ExtractedAt: "2026-03-14 09:26:53",
	}
}

func writeChapter(t *testing.T, root, author string, chapter int, records ...types.ExtractedRecord) string {
	t.Helper()
	path, err := store.New(root, nil).Write(records, author, []int{chapter})
	require.NoError(t, err)
	return path
}

func TestNewStore_CreatesDatabase(t *testing.T) {
	_, root, _ := testSetup(t)
	assert.FileExists(t, filepath.Join(root, "index", "tafsir.db"))
}

func TestIngest_Incremental(t *testing.T) {
	s, root, _ := testSetup(t)
	ctx := context.Background()

	writeChapter(t, root, "alrazi", 1, record(1, 1, "Al-Razi", "بسم الله"), record(1, 2, "Al-Razi", "الحمد لله"))
	path := writeChapter(t, root, "tabari", 1, record(1, 1, "At-Tabari", "القول في تأويل"))

	sum, err := s.Ingest(ctx)
	require.NoError(t, err)
	assert.Equal(t, IngestSummary{Indexed: 2}, sum)

	sum, err = s.Ingest(ctx)
	require.NoError(t, err)
	assert.Equal(t, IngestSummary{Skipped: 2}, sum)
	assert.Equal(t, 2, sum.Total())

	writeChapter(t, root, "tabari", 1, record(1, 1, "At-Tabari", "نص جديد"))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))

	sum, err = s.Ingest(ctx)
	require.NoError(t, err)
	assert.Equal(t, IngestSummary{Updated: 1, Skipped: 1}, sum)

	got, err := s.Get(ctx, "tabari", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "نص جديد", got.TafsirText)
}

func TestIngest_UpdateDropsRemovedVerses(t *testing.T) {
	s, root, _ := testSetup(t)
	ctx := context.Background()

	path := writeChapter(t, root, "alrazi", 1, record(1, 1, "Al-Razi", "a"), record(1, 2, "Al-Razi", "b"))
	_, err := s.Ingest(ctx)
	require.NoError(t, err)

	writeChapter(t, root, "alrazi", 1, record(1, 1, "Al-Razi", "a"))
	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))
	_, err = s.Ingest(ctx)
	require.NoError(t, err)

	results, err := s.Search(ctx, QueryOptions{Author: "alrazi"})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestIngest_MalformedFileCountsAsFailed(t *testing.T) {
	s, root, logs := testSetup(t)
	dir := filepath.Join(root, "data", "alrazi")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.json"), []byte("{oops"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	sum, err := s.Ingest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, IngestSummary{Failed: 1}, sum)
	assert.Contains(t, logs.String(), "alrazi/1.json")
}

func TestIngest_MissingDataDir(t *testing.T) {
	s, _, _ := testSetup(t)
	_, err := s.Ingest(context.Background())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSearch(t *testing.T) {
	s, root, _ := testSetup(t)
	ctx := context.Background()

	writeChapter(t, root, "alrazi", 1,
		record(1, 1, "Al-Razi", "بسم الله الرحمن الرحيم"),
		record(1, 2, "Al-Razi", "الحمد لله رب العالمين"),
		record(1, 3, "Al-Razi", "100% literal_match"),
	)
	writeChapter(t, root, "alrazi", 2, record(2, 1, "Al-Razi", "الم ذلك الكتاب لا ريب فيه هدى لله"))
	writeChapter(t, root, "tabari", 1, record(1, 1, "At-Tabari", "القول في تأويل بسم الله"))
	_, err := s.Ingest(ctx)
	require.NoError(t, err)

	tests := []struct {
		name string
		opts QueryOptions
		want []string // author:chapter:verse
	}{
		{"substring across authors", QueryOptions{Query: "بسم الله"}, []string{"alrazi:1:1", "tabari:1:1"}},
		{"author filter", QueryOptions{Query: "الله", Author: "alrazi"}, []string{"alrazi:1:1"}},
		{"chapter filter", QueryOptions{Author: "alrazi", ChapterID: 2}, []string{"alrazi:2:1"}},
		{"filters only ordered", QueryOptions{Author: "alrazi"}, []string{"alrazi:1:1", "alrazi:1:2", "alrazi:1:3", "alrazi:2:1"}},
		{"max results", QueryOptions{Author: "alrazi", MaxResults: 2}, []string{"alrazi:1:1", "alrazi:1:2"}},
		{"percent is literal", QueryOptions{Query: "0%"}, []string{"alrazi:1:3"}},
		{"underscore is literal", QueryOptions{Query: "100_"}, nil},
		{"no match", QueryOptions{Query: "غير موجود"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := s.Search(ctx, tt.opts)
			require.NoError(t, err)
			var got []string
			for _, r := range results {
				got = append(got, r.AuthorKey+":"+strconv.Itoa(r.ChapterID)+":"+strconv.Itoa(r.VerseID))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGet_NotIndexed(t *testing.T) {
	s, _, _ := testSetup(t)
	_, err := s.Get(context.Background(), "alrazi", 1, 1)
	assert.ErrorContains(t, err, "not indexed")
}

func TestExport(t *testing.T) {
	s, root, _ := testSetup(t)
	ctx := context.Background()
	writeChapter(t, root, "alrazi", 1, record(1, 1, "Al-Razi", "بسم الله"))
	writeChapter(t, root, "tabari", 1, record(1, 1, "At-Tabari", "تأويل"))
	_, err := s.Ingest(ctx)
	require.NoError(t, err)

	yamlPath, err := s.ExportYAML(ctx, QueryOptions{Author: "alrazi"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "index", "export.yaml"), yamlPath)

	data, err := os.ReadFile(yamlPath)
	require.NoError(t, err)
	var fromYAML []QueryResult
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	require.Len(t, fromYAML, 1)
	assert.Equal(t, "alrazi", fromYAML[0].AuthorKey)
	assert.Equal(t, "بسم الله", fromYAML[0].TafsirText)

	jsonPath, err := s.ExportJSON(ctx, QueryOptions{})
	require.NoError(t, err)
	data, err = os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON []QueryResult
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Len(t, fromJSON, 2)
}

func TestExport_EmptyIndexWritesEmptyList(t *testing.T) {
	s, _, _ := testSetup(t)
	path, err := s.ExportJSON(context.Background(), QueryOptions{})
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
