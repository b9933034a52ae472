// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse extracts tafsir records from fetched pages. A page carries
// two embedded regions: div#preloaded-data holds a JSON payload with the
// verse text under "ayah", and div#preloaded-text holds the rendered
// exegesis.
package parse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pdiddy/tafsir-engine/internal/catalog"
	"github.com/pdiddy/tafsir-engine/pkg/types"
)

const (
	dataSelector = "div#preloaded-data"
	textSelector = "div#preloaded-text"
)

// Page holds the raw content of the two carriers.
type Page struct {
	// Ayah is the verse source text from the JSON payload. It is empty when
	// the payload has no "ayah" field.
	Ayah string

	// Text is the normalized exegesis.
	Text string
}

type payload struct {
	Ayah json.RawMessage `json:"ayah"`
}

// ParsePage locates both carriers in doc, decodes the JSON payload, and
// normalizes the exegesis text. A missing carrier or a malformed payload is
// a ParseError.
func ParsePage(doc []byte) (Page, error) {
	root, err := goquery.NewDocumentFromReader(bytes.NewReader(doc))
	if err != nil {
		return Page{}, types.NewFailure(types.KindParse, err, "parsing html")
	}

	dataSel := root.Find(dataSelector).First()
	if dataSel.Length() == 0 {
		return Page{}, types.NewFailure(types.KindParse, nil, "%s not found", dataSelector)
	}
	var p payload
	if err := json.Unmarshal([]byte(dataSel.Text()), &p); err != nil {
		return Page{}, types.NewFailure(types.KindParse, err, "decoding %s", dataSelector)
	}
	ayah, err := decodeAyah(p.Ayah)
	if err != nil {
		return Page{}, types.NewFailure(types.KindParse, err, "decoding ayah")
	}

	textSel := root.Find(textSelector).First()
	if textSel.Length() == 0 {
		return Page{}, types.NewFailure(types.KindParse, nil, "%s not found", textSelector)
	}

	return Page{
		Ayah: ayah,
		Text: NormalizeText(joinedText(textSel)),
	}, nil
}

// decodeAyah accepts a JSON string or any other JSON value, which is kept
// in its compact encoding.
func decodeAyah(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// joinedText returns every text node under sel joined with "\n", so element
// boundaries (paragraphs, <br>) become line breaks.
func joinedText(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, "\n")
}

func collectText(n *html.Node, parts *[]string) {
	switch n.Type {
	case html.TextNode:
		*parts = append(*parts, n.Data)
		return
	case html.CommentNode:
		return
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// Parser builds ExtractedRecords for one author.
type Parser struct {
	author  types.Author
	baseURL string
	now     func() time.Time
}

// New returns a Parser stamping records with author and source URLs under baseURL.
func New(author types.Author, baseURL string) *Parser {
	return &Parser{
		author:  author,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		now:     time.Now,
	}
}

// SetClock replaces the clock used for ExtractedAt.
func (p *Parser) SetClock(now func() time.Time) {
	p.now = now
}

// SourceURL returns the canonical page URL of a verse.
func (p *Parser) SourceURL(chapterID, verseID int) string {
	return fmt.Sprintf("%s/%d/%d", p.baseURL, chapterID, verseID)
}

// Parse extracts the record for chapterID:verseID from doc. Structural
// problems yield ParseError; a chapter missing from the catalog yields
// UnknownChapter.
func (p *Parser) Parse(doc []byte, chapterID, verseID int) (types.ExtractedRecord, error) {
	page, err := ParsePage(doc)
	if err != nil {
		return types.ExtractedRecord{}, fmt.Errorf("chapter %d verse %d: %w", chapterID, verseID, err)
	}

	info, ok := catalog.Lookup(chapterID)
	if !ok {
		return types.ExtractedRecord{}, types.NewFailure(types.KindUnknownChapter, nil,
			"chapter %d", chapterID)
	}

	return types.ExtractedRecord{
		ChapterID:   chapterID,
		NativeName:  info.NativeName,
		EnglishName: info.EnglishName,
		VerseID:     verseID,
		TafsirText:  page.Text,
		AuthorName:  p.author.DisplayName,
		SourceURL:   p.SourceURL(chapterID, verseID),
		ExtractedAt: p.now().Format(types.TimestampLayout),
	}, nil
}
