// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// FailureKind classifies why an item could not be produced.
type FailureKind string

const (
	KindNetwork        FailureKind = "NetworkError"
	KindParse          FailureKind = "ParseError"
	KindUnknownChapter FailureKind = "UnknownChapter"
	KindInvalidChapter FailureKind = "InvalidChapter"
	KindInvalidVerse   FailureKind = "InvalidVerse"
	KindInvalidAuthor  FailureKind = "InvalidAuthor"
	KindWrite          FailureKind = "WriteError"
)

// Failure is the error value returned by the fetch, parse, and persist
// stages. Two failures match under errors.Is when their kinds are equal, so
// the sentinels below can be used as targets.
type Failure struct {
	Kind   FailureKind
	Detail string
	Err    error
}

// Sentinels for errors.Is.
var (
	ErrNetwork        = &Failure{Kind: KindNetwork}
	ErrParse          = &Failure{Kind: KindParse}
	ErrUnknownChapter = &Failure{Kind: KindUnknownChapter}
	ErrInvalidChapter = &Failure{Kind: KindInvalidChapter}
	ErrInvalidVerse   = &Failure{Kind: KindInvalidVerse}
	ErrInvalidAuthor  = &Failure{Kind: KindInvalidAuthor}
	ErrWrite          = &Failure{Kind: KindWrite}
)

// NewFailure builds a Failure with a formatted detail message.
func NewFailure(kind FailureKind, err error, format string, args ...any) *Failure {
	return &Failure{Kind: kind, Detail: fmt.Sprintf(format, args...), Err: err}
}

func (f *Failure) Error() string {
	switch {
	case f.Detail != "" && f.Err != nil:
		return fmt.Sprintf("%s: %s: %v", f.Kind, f.Detail, f.Err)
	case f.Detail != "":
		return fmt.Sprintf("%s: %s", f.Kind, f.Detail)
	case f.Err != nil:
		return fmt.Sprintf("%s: %v", f.Kind, f.Err)
	default:
		return string(f.Kind)
	}
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Is reports whether target is a Failure of the same kind.
func (f *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok {
		return false
	}
	return f.Kind == t.Kind
}
