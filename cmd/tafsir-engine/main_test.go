// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tafsir-engine/internal/store"
	"github.com/pdiddy/tafsir-engine/pkg/types"
)

// tafsirServer serves a minimal page for every /{author}/{chapter}/{verse}.
func tafsirServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			atomic.AddInt32(hits, 1)
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<div id="preloaded-data">{"ayah": "x"}</div><div id="preloaded-text"><p>تفسير ` +
			r.URL.Path + `</p></div>`))
	}))
	t.Cleanup(ts.Close)
	return ts
}

// withConfig points the CLI configuration at ts and a temporary data dir.
func withConfig(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	dataDir := t.TempDir()
	t.Cleanup(viper.Reset)
	viper.Set("base_url", ts.URL)
	viper.Set("delay", 0)
	viper.Set("data_dir", dataDir)
	viper.Set("log.file", "")
	return dataDir
}

func TestExtractionConfig(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("base_url", "https://tafsir.app/")
	viper.Set("data_dir", "out")
	viper.Set("author", "tabari")

	author, err := configuredAuthor()
	require.NoError(t, err)
	cfg := extractionConfig(author)
	assert.Equal(t, "https://tafsir.app/tabari", cfg.BaseURL)
	assert.Equal(t, "At-Tabari", cfg.Author.DisplayName)
	assert.Equal(t, "out", cfg.DataDir)
}

func TestConfiguredAuthor_Invalid(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("author", "ibn-unknown")

	_, err := configuredAuthor()
	assert.ErrorIs(t, err, types.ErrInvalidAuthor)
}

func TestInteractive_ChapterWritesFile(t *testing.T) {
	ts := tafsirServer(t, nil)
	dataDir := withConfig(t, ts)

	var out bytes.Buffer
	err := runInteractive(context.Background(), strings.NewReader("4\n2\n103\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Selected: At-Tabari")
	assert.Contains(t, out.String(), "Extracted 3 verses from chapter 103 - At-Tabari")

	records, err := store.ReadRecords(filepath.Join(dataDir, "data", "tabari", "103.json"))
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "تفسير /tabari/103/2", records[1].TafsirText)
}

func TestInteractive_InvalidAuthorDefaultsToAlRazi(t *testing.T) {
	ts := tafsirServer(t, nil)
	dataDir := withConfig(t, ts)

	var out bytes.Buffer
	err := runInteractive(context.Background(), strings.NewReader("9\n1\n1\n7\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Invalid choice. Defaulting to Al-Razi.")
	assert.Contains(t, out.String(), "Extracted content for chapter 1, verse 7 - Al-Razi")
	assert.FileExists(t, filepath.Join(dataDir, "data", "alrazi", "1.json"))
}

func TestInteractive_RangeRequiresYes(t *testing.T) {
	var hits int32
	ts := tafsirServer(t, &hits)
	dataDir := withConfig(t, ts)

	var out bytes.Buffer
	err := runInteractive(context.Background(), strings.NewReader("2\n3\n113\n114\nno\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Cancelled.")
	assert.Zero(t, atomic.LoadInt32(&hits))

	out.Reset()
	err = runInteractive(context.Background(), strings.NewReader("2\n3\n113\n114\nyes\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Extracted 11 total verses from chapters 113-114 - Al-Razi")
	assert.FileExists(t, filepath.Join(dataDir, "data", "alrazi", "113.json"))
	assert.FileExists(t, filepath.Join(dataDir, "data", "alrazi", "114.json"))
}

func TestInteractive_InvalidVerseIsAnError(t *testing.T) {
	ts := tafsirServer(t, nil)
	withConfig(t, ts)

	err := runInteractive(context.Background(), strings.NewReader("2\n1\n1\n8\n"), &bytes.Buffer{})
	assert.ErrorIs(t, err, types.ErrInvalidVerse)

	err = runInteractive(context.Background(), strings.NewReader("2\n2\nabc\n"), &bytes.Buffer{})
	assert.ErrorContains(t, err, `invalid number "abc"`)
}

func TestInteractive_UnknownOption(t *testing.T) {
	ts := tafsirServer(t, nil)
	withConfig(t, ts)

	var out bytes.Buffer
	require.NoError(t, runInteractive(context.Background(), strings.NewReader("2\n7\n"), &out))
	assert.Contains(t, out.String(), "Invalid choice.")
}

func TestExportCSV_AllChapters(t *testing.T) {
	ts := tafsirServer(t, nil)
	dataDir := withConfig(t, ts)
	viper.Set("author", "qurtubi")

	r := newRunnerFor(types.Author{Key: "qurtubi", DisplayName: "Al-Qurtubi"}, &bytes.Buffer{})
	require.NoError(t, r.chapter(context.Background(), 112))
	require.NoError(t, r.chapter(context.Background(), 108))

	records, err := loadChapters(dataDir, "qurtubi", nil)
	require.NoError(t, err)
	require.Len(t, records, 7)
	assert.Equal(t, 108, records[0].ChapterID)

	path, err := store.New(dataDir, nil).WriteCSV(records, "qurtubi", nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "qurtubi_all.csv"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 7, strings.Count(string(data), ts.URL+"/qurtubi/"), "one source URL per record")
}

func TestWriteListing_Formats(t *testing.T) {
	type row struct {
		Key string `json:"key" yaml:"key"`
	}
	rows := []row{{Key: "alrazi"}}

	var buf bytes.Buffer
	require.NoError(t, writeListing(&buf, "yaml", rows, nil))
	assert.Equal(t, "- key: alrazi\n", buf.String())

	buf.Reset()
	require.NoError(t, writeListing(&buf, "json", rows, nil))
	assert.JSONEq(t, `[{"key":"alrazi"}]`, buf.String())

	assert.Error(t, writeListing(&buf, "xml", rows, nil))
}
