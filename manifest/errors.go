package manifest

import (
	"fmt"
	"time"
)

// ManifestError reports a manifest that is missing, unreadable or malformed,
// or a referenced track file that cannot be opened.
type ManifestError struct {
	Path string
	Err  error
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest: %s: %s", e.Path, e.Err)
}

func (e *ManifestError) Unwrap() error {
	return e.Err
}

// ParseError reports a track file without any track points, or one whose
// point elements carry missing or non-numeric coordinates.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("track file: %s: %s", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IntervalError reports a manifest entry whose end instant is not strictly
// after its start instant.
type IntervalError struct {
	Path       string
	Start, End time.Time
}

func (e *IntervalError) Error() string {
	return fmt.Sprintf(
		"entry '%s': end of tracking (%s) not after start of tracking (%s)",
		e.Path, e.End.Format(instantLayout), e.Start.Format(instantLayout),
	)
}
