// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tafsir-engine/pkg/types"
)

const samplePage = `<!DOCTYPE html>
<html lang="ar">
<head><title>تفسير الرازي</title></head>
<body>
  <div id="preloaded-data" style="display:none">{"ayah": "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ", "page": 1}</div>
  <div id="preloaded-text">
    <p>   المسألة الأولى:   </p>

    <p>قوله تعالى<br>  بسم الله  </p>
    <!-- ad slot -->
    <script>var tracking = 1;</script>

    <p></p>
  </div>
</body>
</html>`

var fixedClock = func() time.Time {
	return time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)
}

func TestParse_BuildsRecord(t *testing.T) {
	p := New(types.Author{Key: "alrazi", DisplayName: "Al-Razi"}, "https://tafsir.app/alrazi/")
	p.SetClock(fixedClock)

	rec, err := p.Parse([]byte(samplePage), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, types.ExtractedRecord{
		ChapterID:   1,
		NativeName:  "الفاتحة",
		EnglishName: "Al-Fatihah",
		VerseID:     1,
		TafsirText:  "المسألة الأولى:\nقوله تعالى\nبسم الله",
		AuthorName:  "Al-Razi",
		SourceURL:   "https://tafsir.app/alrazi/1/1",
		ExtractedAt: "2026-03-14 09:26:53",
	}, rec)
}

func TestParsePage_DecodesAyah(t *testing.T) {
	page, err := ParsePage([]byte(samplePage))
	require.NoError(t, err)
	assert.Equal(t, "بِسْمِ اللَّهِ الرَّحْمَٰنِ الرَّحِيمِ", page.Ayah)
}

func TestParsePage_AyahVariants(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"string", `{"ayah": "text"}`, "text"},
		{"absent", `{"other": 1}`, ""},
		{"null", `{"ayah": null}`, ""},
		{"object", `{"ayah": { "t": "x" }}`, `{"t":"x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := `<div id="preloaded-data">` + tt.payload + `</div><div id="preloaded-text">a</div>`
			page, err := ParsePage([]byte(doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, page.Ayah)
			assert.Equal(t, "a", page.Text)
		})
	}
}

func TestParse_StructuralErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantMsg string
	}{
		{
			name:    "missing data carrier",
			doc:     `<html><body><div id="preloaded-text">text</div></body></html>`,
			wantMsg: "div#preloaded-data not found",
		},
		{
			name:    "malformed payload",
			doc:     `<div id="preloaded-data">{"ayah": </div><div id="preloaded-text">text</div>`,
			wantMsg: "decoding div#preloaded-data",
		},
		{
			name:    "payload is not an object",
			doc:     `<div id="preloaded-data">[1, 2]</div><div id="preloaded-text">text</div>`,
			wantMsg: "decoding div#preloaded-data",
		},
		{
			name:    "missing text carrier",
			doc:     `<div id="preloaded-data">{"ayah": "x"}</div>`,
			wantMsg: "div#preloaded-text not found",
		},
		{
			name:    "empty document",
			doc:     ``,
			wantMsg: "div#preloaded-data not found",
		},
	}
	p := New(types.Author{Key: "tabari", DisplayName: "At-Tabari"}, "https://tafsir.app/tabari")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse([]byte(tt.doc), 2, 255)
			require.Error(t, err)
			assert.ErrorIs(t, err, types.ErrParse)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Contains(t, err.Error(), "chapter 2 verse 255")
		})
	}
}

func TestParse_UnknownChapter(t *testing.T) {
	p := New(types.Author{Key: "alrazi", DisplayName: "Al-Razi"}, "https://tafsir.app/alrazi")

	_, err := p.Parse([]byte(samplePage), 115, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrUnknownChapter)
}

func TestSourceURL(t *testing.T) {
	p := New(types.Author{Key: "qurtubi"}, "https://tafsir.app/qurtubi")
	assert.Equal(t, "https://tafsir.app/qurtubi/18/110", p.SourceURL(18, 110))
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"only whitespace", " \n\t\n  \r\n", ""},
		{"trims lines", "  a  \n b ", "a\nb"},
		{"drops blank lines", "a\n\n\n   \nb", "a\nb"},
		{"crlf", "a\r\nb\r\n", "a\nb"},
		{"unicode separators", "a\u2028b\u2029c\u0085d", "a\nb\nc\nd"},
		{"keeps inner spaces", "  قال  الرازي  ", "قال  الرازي"},
		{"nbsp trimmed", "\u00a0a\u00a0", "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.in))
		})
	}
}

func TestNormalizeText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"one line",
		"المسألة الأولى:\nقوله تعالى\nبسم الله",
		"  messy \n\n\t text \r\n here  ",
	}
	for _, in := range inputs {
		once := NormalizeText(in)
		assert.Equal(t, once, NormalizeText(once), "input %q", in)
	}
}
