// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package translate mirrors the extracted record tree into a per-language
// tree where every record carries a translatedText field.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/tafsir-engine/internal/store"
	"github.com/pdiddy/tafsir-engine/pkg/types"
)

// Defaults applied to empty TranslationConfig fields.
const (
	DefaultSourceDir = "data"
	DefaultOutputDir = "data_translated"
	DefaultLanguage  = "en"
)

// textField is the record key whose value is translated.
const textField = "tafsirText"

// Translator turns text into the target language.
type Translator interface {
	Translate(ctx context.Context, text, lang string) (string, error)
}

// Identity returns text unchanged.
type Identity struct{}

// Translate implements Translator.
func (Identity) Translate(_ context.Context, text, _ string) (string, error) {
	return text, nil
}

// Summary counts the outcome of a pass.
type Summary struct {
	Files   int // files written
	Records int // records written
	Failed  int // records carrying a failure marker
	Skipped int // files that could not be read or decoded
}

// Pass walks SourceDir/{author}/*.json and writes the translated mirror.
type Pass struct {
	translator Translator
	cfg        types.TranslationConfig
	logger     *slog.Logger
}

// New returns a Pass using t, with empty config fields set to their defaults.
func New(t Translator, cfg types.TranslationConfig, logger *slog.Logger) *Pass {
	if t == nil {
		t = Identity{}
	}
	if cfg.SourceDir == "" {
		cfg.SourceDir = DefaultSourceDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = DefaultOutputDir
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pass{translator: t, cfg: cfg, logger: logger}
}

// OutputPath returns where the translation of SourceDir/author/filename goes.
func (p *Pass) OutputPath(author, filename string) string {
	return filepath.Join(p.cfg.OutputDir, p.cfg.Language, author, filename)
}

// Run translates every record file. Only an unreadable SourceDir, a write
// failure, or context cancellation stop the pass.
func (p *Pass) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	authors, err := os.ReadDir(p.cfg.SourceDir)
	if err != nil {
		return sum, fmt.Errorf("reading source directory %s: %w", p.cfg.SourceDir, err)
	}

	for _, author := range authors {
		if !author.IsDir() {
			continue
		}
		authorDir := filepath.Join(p.cfg.SourceDir, author.Name())
		files, err := os.ReadDir(authorDir)
		if err != nil {
			p.logger.Error("error reading directory", "path", authorDir, "err", err)
			continue
		}

		for _, f := range files {
			if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
				continue
			}
			if err := ctx.Err(); err != nil {
				return sum, err
			}

			src := filepath.Join(authorDir, f.Name())
			out, failed, err := p.translateFile(ctx, src)
			if err != nil {
				p.logger.Error("error reading file", "path", src, "err", err)
				sum.Skipped++
				continue
			}

			dst := p.OutputPath(author.Name(), f.Name())
			data, err := store.MarshalRecords(out)
			if err != nil {
				return sum, types.NewFailure(types.KindWrite, err, "encoding %s", dst)
			}
			if err := store.WriteFileAtomic(dst, data); err != nil {
				return sum, types.NewFailure(types.KindWrite, err, "writing %s", dst)
			}

			sum.Files++
			sum.Records += len(out)
			sum.Failed += failed
			p.logger.Info("translated", "source", src, "output", dst, "records", len(out), "failed", failed)
		}
	}
	return sum, nil
}

// translateFile decodes one record file and translates each record. A
// record that lacks tafsirText or whose translation fails gets a failure
// marker; failed counts those.
func (p *Pass) translateFile(ctx context.Context, path string) (out []types.TranslatedRecord, failed int, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, 0, fmt.Errorf("decoding %s: %w", path, err)
	}

	out = make([]types.TranslatedRecord, 0, len(entries))
	for _, raw := range entries {
		tr, err := p.translateEntry(ctx, raw)
		if err != nil {
			tr.TranslatedText = failureMarker(err)
			failed++
		}
		out = append(out, tr)
	}
	return out, failed, nil
}

func (p *Pass) translateEntry(ctx context.Context, raw json.RawMessage) (types.TranslatedRecord, error) {
	var tr types.TranslatedRecord
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return tr, fmt.Errorf("record is not an object: %w", err)
	}
	if err := json.Unmarshal(raw, &tr.ExtractedRecord); err != nil {
		return tr, err
	}
	if _, ok := fields[textField]; !ok {
		return tr, fmt.Errorf("missing field %q", textField)
	}

	text, err := p.translator.Translate(ctx, tr.TafsirText, p.cfg.Language)
	if err != nil {
		return tr, err
	}
	tr.TranslatedText = text
	return tr, nil
}

func failureMarker(err error) string {
	return fmt.Sprintf("[Translation failed: %v]", err)
}
