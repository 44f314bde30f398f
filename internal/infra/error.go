package infra

import (
	"errors"

	"huntbook/internal/pkg/errs"
)

type RepositoryErrorKind string

const (
	KindNotFound    RepositoryErrorKind = "not_found"
	KindConflict    RepositoryErrorKind = "conflict"
	KindUnavailable RepositoryErrorKind = "unavailable"
	KindInternal    RepositoryErrorKind = "internal"
)

// RepositoryError separates transient store failures (retriable by the
// caller) from validation verdicts, which never travel this path.
type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

func WrapRepoErr(msg string, err error, kinds ...RepositoryErrorKind) error {
	kind := KindInternal
	if len(kinds) > 0 {
		kind = kinds[0]
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
