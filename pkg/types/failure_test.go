// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailure_IsMatchesKind(t *testing.T) {
	err := NewFailure(KindInvalidVerse, nil, "verse %d of chapter %d", 8, 1)

	assert.True(t, errors.Is(err, ErrInvalidVerse))
	assert.False(t, errors.Is(err, ErrInvalidChapter))
	assert.Equal(t, "InvalidVerse: verse 8 of chapter 1", err.Error())
}

func TestFailure_WrappedStillMatches(t *testing.T) {
	inner := NewFailure(KindNetwork, io.ErrUnexpectedEOF, "GET %s", "http://x")
	wrapped := fmt.Errorf("chapter 2: %w", inner)

	assert.ErrorIs(t, wrapped, ErrNetwork)
	assert.ErrorIs(t, wrapped, io.ErrUnexpectedEOF)

	var f *Failure
	assert.True(t, errors.As(wrapped, &f))
	assert.Equal(t, KindNetwork, f.Kind)
}

func TestFailure_ErrorFormats(t *testing.T) {
	tests := []struct {
		name string
		f    *Failure
		want string
	}{
		{"kind only", &Failure{Kind: KindWrite}, "WriteError"},
		{"detail", &Failure{Kind: KindParse, Detail: "missing div"}, "ParseError: missing div"},
		{"err", &Failure{Kind: KindParse, Err: io.EOF}, "ParseError: EOF"},
		{"both", &Failure{Kind: KindWrite, Detail: "a.json", Err: io.EOF}, "WriteError: a.json: EOF"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.f.Error())
		})
	}
}
