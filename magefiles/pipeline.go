//go:build mage

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Pipeline groups targets that drive the built CLI.
type Pipeline mg.Namespace

// cli runs the tafsir-engine binary, building it first. TAFSIR_AUTHOR
// selects the author.
func cli(args ...string) error {
	mg.Deps(Build)
	if author := os.Getenv("TAFSIR_AUTHOR"); author != "" {
		args = append(args, "--author", author)
	}
	return sh.RunV("./"+binDir+"/"+binName, args...)
}

// Extract extracts CHAPTERS (e.g. "1" or "2-5"; default "1") without prompting.
func (Pipeline) Extract() error {
	chapters := os.Getenv("CHAPTERS")
	if chapters == "" {
		chapters = "1"
	}
	if start, end, ok := strings.Cut(chapters, "-"); ok {
		return cli("extract", "range", start, end, "--yes")
	}
	return cli("extract", "chapter", chapters)
}

// Translate mirrors data/ into data_translated/.
func (Pipeline) Translate() error {
	return cli("translate")
}

// Index builds the SQLite record index.
func (Pipeline) Index() error {
	return cli("index", "build")
}

// All extracts, translates, and indexes in order.
func (p Pipeline) All() {
	mg.SerialDeps(p.Extract, p.Translate, p.Index)
}
