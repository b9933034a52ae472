// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/tafsir-engine/pkg/types"
)

func TestLookup_SpotChecks(t *testing.T) {
	tests := []struct {
		id       int
		english  string
		verses   int
		revealed types.RevelationPlace
	}{
		{1, "Al-Fatihah", 7, types.Makkah},
		{2, "Al-Baqarah", 286, types.Madinah},
		{9, "At-Tawbah", 129, types.Madinah},
		{36, "Ya-Sin", 83, types.Makkah},
		{103, "Al-Asr", 3, types.Makkah},
		{114, "An-Nas", 6, types.Makkah},
	}
	for _, tt := range tests {
		t.Run(tt.english, func(t *testing.T) {
			info, ok := Lookup(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.id, info.ID)
			assert.Equal(t, tt.english, info.EnglishName)
			assert.Equal(t, tt.verses, info.VerseCount)
			assert.Equal(t, tt.revealed, info.RevelationPlace)
			assert.NotEmpty(t, info.NativeName)
		})
	}
}

func TestLookup_OutOfRange(t *testing.T) {
	for _, id := range []int{-1, 0, 115, 1000} {
		_, ok := Lookup(id)
		assert.False(t, ok, "chapter %d", id)
		assert.Zero(t, VerseCount(id))
	}
}

func TestChapter_InvalidChapter(t *testing.T) {
	_, err := Chapter(115)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrInvalidChapter))

	info, err := Chapter(1)
	require.NoError(t, err)
	assert.Equal(t, "الفاتحة", info.NativeName)
}

func TestChapters_ContiguousIDs(t *testing.T) {
	all := Chapters()
	require.Len(t, all, LastChapter)
	seen := make(map[int]bool)
	for i, c := range all {
		assert.Equal(t, i+1, c.ID)
		assert.False(t, seen[c.ID], "duplicate id %d", c.ID)
		seen[c.ID] = true
		assert.GreaterOrEqual(t, c.VerseCount, 1)
		assert.Contains(t, []types.RevelationPlace{types.Makkah, types.Madinah}, c.RevelationPlace)
	}
}

func TestChapters_ReturnsCopy(t *testing.T) {
	all := Chapters()
	all[0].VerseCount = 999
	assert.Equal(t, 7, VerseCount(1))
}

func TestTotalVerses(t *testing.T) {
	assert.Equal(t, 6236, TotalVerses())
}

func TestLookupAuthor(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{"alaloosi", "Al-Alusi", false},
		{"alrazi", "Al-Razi", false},
		{"ibn-katheer", "Ibn Katheer", false},
		{"tabari", "At-Tabari", false},
		{"qurtubi", "Al-Qurtubi", false},
		{"ibn-aashoor", "Ibn Ashur", false},
		{"iraab-daas", "Iraab ul Quran", false},
		{"unknown", "", true},
		{"", "", true},
		{"AlRazi", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			a, err := LookupAuthor(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, types.ErrInvalidAuthor)
				assert.Contains(t, err.Error(), "alrazi")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, a.Key)
			assert.Equal(t, tt.want, a.DisplayName)
		})
	}
}

func TestAuthorKeys_MenuOrder(t *testing.T) {
	assert.Equal(t, []string{
		"alaloosi", "alrazi", "ibn-katheer", "tabari", "qurtubi", "ibn-aashoor", "iraab-daas",
	}, AuthorKeys())

	_, err := LookupAuthor(DefaultAuthorKey)
	assert.NoError(t, err)
}
