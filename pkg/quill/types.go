package quill

import (
	"github.com/crimson-sun/quill/internal/ansi"
	"github.com/crimson-sun/quill/internal/errs"
	"github.com/crimson-sun/quill/internal/model"
)

// Severity is the importance tier of a log event, ordered ascending.
type Severity = model.Severity

const (
	Debug   = model.Debug
	Info    = model.Info
	Warning = model.Warning
	Error   = model.Error
	Fatal   = model.Fatal
)

// Verbosity is a suppression threshold mapped to a minimum severity.
type Verbosity = model.Verbosity

const (
	All        = model.All
	Standard   = model.Standard
	Quiet      = model.Quiet
	ErrorsOnly = model.ErrorsOnly
)

// OnDropPolicy governs what Close does with pending file lines while the
// advisory lock is held.
type OnDropPolicy = model.OnDropPolicy

const (
	DiscardLogBuffer  = model.DiscardLogBuffer
	IgnoreLogFileLock = model.IgnoreLogFileLock
)

// Event is a single log occurrence: severity, message, and creation time.
type Event = model.Event

// NewEvent returns an Event stamped with the current time.
func NewEvent(severity Severity, message string) Event {
	return model.NewEvent(severity, message)
}

// Color names a terminal color for severity headers.
type Color = ansi.Color

const (
	NoColor = ansi.None
	Black   = ansi.Black
	Blue    = ansi.Blue
	Cyan    = ansi.Cyan
	Green   = ansi.Green
	Gray    = ansi.Gray
	Magenta = ansi.Magenta
	Red     = ansi.Red
	White   = ansi.White
	Yellow  = ansi.Yellow
)

// ParseSeverity converts a severity name ("debug" through "fatal") to its
// Severity value.
func ParseSeverity(name string) (Severity, error) { return model.ParseSeverity(name) }

// ParseVerbosity converts a verbosity name ("all", "standard", "quiet",
// "errors_only") to its Verbosity value.
func ParseVerbosity(name string) (Verbosity, error) { return model.ParseVerbosity(name) }

// ParseOnDropPolicy converts a policy name ("discard_log_buffer",
// "ignore_log_file_lock") to its OnDropPolicy value.
func ParseOnDropPolicy(name string) (OnDropPolicy, error) { return model.ParseOnDropPolicy(name) }

// IsConfig reports whether err is a configuration error: an invalid
// template string, a missing mandatory placeholder, or an unknown enum
// value during template loading.
func IsConfig(err error) bool { return errs.IsConfig(err) }

// IsPath reports whether err came from a file stream operation without a
// valid writable log file path.
func IsPath(err error) bool { return errs.IsPath(err) }

// IsLocked reports whether err was caused by the advisory file lock.
func IsLocked(err error) bool { return errs.IsLocked(err) }

// IsIO reports whether err is an underlying file open/write failure.
func IsIO(err error) bool { return errs.IsIO(err) }
