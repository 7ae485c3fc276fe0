package quill

import (
	"io"

	"github.com/crimson-sun/quill/internal/format"
	"github.com/crimson-sun/quill/internal/model"
	"github.com/crimson-sun/quill/internal/output/router"
)

// Logger is the top-level logging facade. It owns a formatter and an
// output router, filters events by severity before dispatch, and exposes
// one entry point per severity.
//
// A Logger assumes a single logical owner: it carries no internal locking.
// Callers sharing one Logger across goroutines must wrap it in their own
// sync.Mutex.
type Logger struct {
	formatter *format.Formatter
	output    *router.Router
	verbosity model.Verbosity
	filtering bool
}

// New returns a Logger with the default configuration: standard verbosity,
// filtering on, colored "[%h] %m" output to stderr only. Options are
// applied in order; the first failing option aborts construction.
func New(opts ...Option) (*Logger, error) {
	l := &Logger{
		formatter: format.New(),
		output:    router.New(),
		verbosity: model.Standard,
		filtering: true,
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// Log stamps the message with the current time, filters it by the
// configured verbosity, and dispatches it to every enabled output stream.
// Fatal events bypass filtering. The returned error aggregates per-stream
// delivery failures; delivery to one stream is never aborted by another
// stream failing.
func (l *Logger) Log(severity Severity, message string) error {
	if l.filtering && severity != model.Fatal && severity < l.verbosity.Threshold() {
		return nil
	}
	return l.output.Dispatch(model.NewEvent(severity, message), l.formatter)
}

// LogNoFilter dispatches the message unconditionally, ignoring verbosity.
func (l *Logger) LogNoFilter(severity Severity, message string) error {
	return l.output.Dispatch(model.NewEvent(severity, message), l.formatter)
}

// Debug logs a debug-severity message.
func (l *Logger) Debug(message string) error { return l.Log(model.Debug, message) }

// Info logs an info-severity message.
func (l *Logger) Info(message string) error { return l.Log(model.Info, message) }

// Warning logs a warning-severity message.
func (l *Logger) Warning(message string) error { return l.Log(model.Warning, message) }

// Error logs an error-severity message. Errors pass every verbosity
// threshold.
func (l *Logger) Error(message string) error { return l.Log(model.Error, message) }

// Fatal logs a fatal-severity message. Fatal events are never filtered.
func (l *Logger) Fatal(message string) error { return l.Log(model.Fatal, message) }

// SetVerbosity sets the filtering threshold.
func (l *Logger) SetVerbosity(v Verbosity) { l.verbosity = v }

// Verbosity returns the current filtering threshold.
func (l *Logger) Verbosity() Verbosity { return l.verbosity }

// EnableFiltering turns verbosity filtering on.
func (l *Logger) EnableFiltering() { l.filtering = true }

// DisableFiltering turns verbosity filtering off; every event is emitted.
func (l *Logger) DisableFiltering() { l.filtering = false }

// FilteringEnabled reports whether verbosity filtering is on.
func (l *Logger) FilteringEnabled() bool { return l.filtering }

// FormatEvent renders an event with the current formatter configuration,
// without dispatching it.
func (l *Logger) FormatEvent(e Event) string { return l.formatter.Render(e) }

// SetLogFormat replaces the log line template. Fails with a config error
// when the mandatory %m placeholder is missing, leaving the previous
// template in place.
func (l *Logger) SetLogFormat(tpl string) error { return l.formatter.SetLogFormat(tpl) }

// SetDatetimeFormat replaces the strftime-style datetime template used by
// the %d placeholder.
func (l *Logger) SetDatetimeFormat(tpl string) { l.formatter.SetDatetimeFormat(tpl) }

// SetHeader replaces the header label for the given severity.
func (l *Logger) SetHeader(s Severity, header string) { l.formatter.SetHeader(s, header) }

// SetHeaderColor replaces the header color for the given severity.
func (l *Logger) SetHeaderColor(s Severity, c Color) { l.formatter.SetColor(s, c) }

// EnableHeaderColor turns colored headers on.
func (l *Logger) EnableHeaderColor() { l.formatter.SetColorEnabled(true) }

// DisableHeaderColor turns colored headers off; headers render plain.
func (l *Logger) DisableHeaderColor() { l.formatter.SetColorEnabled(false) }

// SetLogFilePath validates and records the log file path. The file is
// created if missing, never truncated.
func (l *Logger) SetLogFilePath(path string) error { return l.output.File().SetPath(path) }

// EnableFileLog turns the file stream on. Fails with a path error when no
// writable path has been set.
func (l *Logger) EnableFileLog() error { return l.output.File().Enable() }

// DisableFileLog turns the file stream off, keeping buffered lines.
func (l *Logger) DisableFileLog() { l.output.File().Disable() }

// SetMaxLogBufferSize sets the file stream auto-flush threshold. Sizes of
// zero or less disable auto-flushing.
func (l *Logger) SetMaxLogBufferSize(n int) { l.output.File().SetMaxBufferSize(n) }

// LockLogFile raises the advisory file lock: file writes fail fast until
// UnlockLogFile.
func (l *Logger) LockLogFile() { l.output.File().Lock() }

// UnlockLogFile clears the advisory file lock.
func (l *Logger) UnlockLogFile() { l.output.File().Unlock() }

// LogFileLocked reports whether the advisory file lock is held.
func (l *Logger) LogFileLocked() bool { return l.output.File().Locked() }

// SetOnDropPolicy sets what Close does with pending file lines while the
// lock is held.
func (l *Logger) SetOnDropPolicy(p OnDropPolicy) { l.output.File().SetOnDropPolicy(p) }

// Flush writes the file stream's buffered lines to the log file. A no-op
// when file logging is disabled.
func (l *Logger) Flush() error {
	if !l.output.File().Enabled() {
		return nil
	}
	return l.output.File().Flush()
}

// SetStderrWriter redirects the stderr stream to w.
func (l *Logger) SetStderrWriter(w io.Writer) { l.output.Stderr().SetWriter(w) }

// EnableStderr turns the stderr stream on.
func (l *Logger) EnableStderr() { l.output.Stderr().Enable() }

// DisableStderr turns the stderr stream off.
func (l *Logger) DisableStderr() { l.output.Stderr().Disable() }

// EnableBufferLog turns the raw-event buffer stream on.
func (l *Logger) EnableBufferLog() { l.output.Buffer().Enable() }

// DisableBufferLog turns the raw-event buffer stream off.
func (l *Logger) DisableBufferLog() { l.output.Buffer().Disable() }

// BufferedEvents returns a snapshot of the raw events captured by the
// buffer stream, in arrival order.
func (l *Logger) BufferedEvents() []Event { return l.output.Buffer().Events() }

// ClearLogBuffer discards the buffer stream's captured events.
func (l *Logger) ClearLogBuffer() { l.output.Buffer().Clear() }

// EnableOutput opens the router's master gate.
func (l *Logger) EnableOutput() { l.output.Enable() }

// DisableOutput closes the router's master gate; all logging becomes a
// no-op until re-enabled.
func (l *Logger) DisableOutput() { l.output.Disable() }

// Close releases the output streams. The file stream applies its on-drop
// policy exactly once: pending lines behind a held lock are written or
// discarded according to the configured policy.
func (l *Logger) Close() error { return l.output.Close() }
