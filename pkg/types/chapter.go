// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// RevelationPlace is where a chapter was revealed.
type RevelationPlace string

const (
	Makkah  RevelationPlace = "Makkah"
	Madinah RevelationPlace = "Madinah"
)

// ChapterInfo describes one chapter (surah) of the corpus.
type ChapterInfo struct {
	// ID is the chapter number, 1 through 114.
	ID int `json:"id" yaml:"id"`

	// NativeName is the Arabic chapter name (e.g. "الفاتحة").
	NativeName string `json:"nativeName" yaml:"native_name"`

	// EnglishName is the transliterated name (e.g. "Al-Fatihah").
	EnglishName string `json:"englishName" yaml:"english_name"`

	// VerseCount is the number of verses (ayahs) in the chapter.
	VerseCount int `json:"verseCount" yaml:"verse_count"`

	// RevelationPlace is Makkah or Madinah.
	RevelationPlace RevelationPlace `json:"revelationPlace" yaml:"revelation_place"`
}

// Author identifies one tafsir source. Key is used both in the remote URL
// path and in local output paths.
type Author struct {
	Key         string `json:"key" yaml:"key"`
	DisplayName string `json:"displayName" yaml:"display_name"`
}
