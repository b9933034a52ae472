// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"strings"

	"github.com/pdiddy/tafsir-engine/pkg/types"
)

// DefaultAuthorKey is used when no author is configured.
const DefaultAuthorKey = "alrazi"

// authors is in menu order.
var authors = []types.Author{
	{Key: "alaloosi", DisplayName: "Al-Alusi"},
	{Key: "alrazi", DisplayName: "Al-Razi"},
	{Key: "ibn-katheer", DisplayName: "Ibn Katheer"},
	{Key: "tabari", DisplayName: "At-Tabari"},
	{Key: "qurtubi", DisplayName: "Al-Qurtubi"},
	{Key: "ibn-aashoor", DisplayName: "Ibn Ashur"},
	{Key: "iraab-daas", DisplayName: "Iraab ul Quran"},
}

// Authors returns the supported authors in menu order.
func Authors() []types.Author {
	out := make([]types.Author, len(authors))
	copy(out, authors)
	return out
}

// AuthorKeys returns the supported author keys in menu order.
func AuthorKeys() []string {
	keys := make([]string, len(authors))
	for i, a := range authors {
		keys[i] = a.Key
	}
	return keys
}

// LookupAuthor returns the author with the given key, or an InvalidAuthor
// failure naming the valid keys.
func LookupAuthor(key string) (types.Author, error) {
	for _, a := range authors {
		if a.Key == key {
			return a, nil
		}
	}
	return types.Author{}, types.NewFailure(types.KindInvalidAuthor, nil,
		"unknown author %q (available: %s)", key, strings.Join(AuthorKeys(), ", "))
}
