// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// TimestampLayout is the format of ExtractedRecord.ExtractedAt.
const TimestampLayout = "2006-01-02 15:04:05"

// ExtractedRecord is the tafsir text of one verse as fetched from one author.
// It is the unit persisted in data/{author}/{chapter}.json.
type ExtractedRecord struct {
	ChapterID   int    `json:"chapterId" yaml:"chapter_id"`
	NativeName  string `json:"nativeName" yaml:"native_name"`
	EnglishName string `json:"englishName" yaml:"english_name"`
	VerseID     int    `json:"verseId" yaml:"verse_id"`

	// TafsirText holds the non-empty, trimmed lines of the exegesis joined by "\n".
	TafsirText string `json:"tafsirText" yaml:"tafsir_text"`

	AuthorName string `json:"authorName" yaml:"author_name"`

	// SourceURL is {baseURL}/{chapter}/{verse}.
	SourceURL string `json:"sourceUrl" yaml:"source_url"`

	// ExtractedAt is the local wall-clock time formatted with TimestampLayout.
	ExtractedAt string `json:"extractedAt" yaml:"extracted_at"`
}

// TranslatedRecord is an ExtractedRecord with the output of the translation pass.
type TranslatedRecord struct {
	ExtractedRecord `yaml:",inline"`

	// TranslatedText is the translation, or an error marker when the
	// record could not be translated.
	TranslatedText string `json:"translatedText" yaml:"translated_text"`
}
