// Package errs is a thin facade over cockroachdb/errors. Callers wrap
// store failures for context and mark them with domain sentinels; the
// handler layer matches sentinels with errors.Is without losing the
// original chain or its stack trace.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as a sentinel so Is(err, markErr) holds while
// errors.As still reaches the concrete cause. Marks ride alongside the
// cause chain, so matching them takes Is below, not the stdlib's.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches target, honouring both Unwrap chains
// and marks. Sentinel checks on errors that passed through Mark must
// use this; stdlib errors.Is does not see marks.
func Is(err, target error) bool {
	return cr.Is(err, target)
}

// ExtractStackLines renders the error with its stack trace and returns
// at most maxLines lines, for structured log output.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
