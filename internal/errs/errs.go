// Package errs defines the failure kinds shared across quill. Every error
// surfaced by the library is classified as one of the four kinds so callers
// can branch on the class of failure without string matching.
package errs

import (
	stderrors "errors"
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a failure.
type Kind int

const (
	// KindConfig marks invalid configuration: a log format missing the
	// message placeholder, an unknown enum value in a template, and so on.
	KindConfig Kind = iota + 1
	// KindPath marks file stream operations attempted without a valid
	// writable log file path.
	KindPath
	// KindLocked marks operations rejected because the advisory file lock
	// is held.
	KindLocked
	// KindIO marks underlying file open/write failures.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindPath:
		return "path"
	case KindLocked:
		return "locked"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error is a classified failure with an optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return e.Msg
	case e.Msg == "":
		return e.Err.Error()
	default:
		return e.Msg + ": " + e.Err.Error()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an error of the given kind.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf returns an error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrapf classifies err under kind, annotating it with formatted context and
// a stack trace. Returns nil when err is nil.
func Wrapf(kind Kind, err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.Wrapf(err, format, args...)}
}

// Is reports whether err (or anything it wraps) is a quill error of the
// given kind. The outermost classification wins.
func Is(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsConfig reports whether err is a configuration error.
func IsConfig(err error) bool { return Is(err, KindConfig) }

// IsPath reports whether err is a log file path error.
func IsPath(err error) bool { return Is(err, KindPath) }

// IsLocked reports whether err was caused by the advisory file lock.
func IsLocked(err error) bool { return Is(err, KindLocked) }

// IsIO reports whether err is an underlying I/O failure.
func IsIO(err error) bool { return Is(err, KindIO) }
