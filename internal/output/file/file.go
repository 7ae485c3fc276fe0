// Package file implements the log file output stream: formatted lines are
// buffered in memory and appended to the file on flush.
package file

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/crimson-sun/quill/internal/errs"
	"github.com/crimson-sun/quill/internal/format"
	"github.com/crimson-sun/quill/internal/model"
)

// DefaultMaxBufferSize is the auto-flush threshold applied by New.
const DefaultMaxBufferSize = 128

// Stream buffers formatted lines and appends them to the log file. Writes
// only reach disk on Flush, either explicit or triggered by the buffer
// reaching its size limit.
//
// The advisory lock is a cooperative flag, not an OS file lock: while it is
// held, Out and Flush fail fast instead of blocking, so external code can
// manipulate the log file safely. Close applies the on-drop policy to any
// lines still pending behind the lock.
type Stream struct {
	enabled       bool
	path          string
	lines         []string
	maxBufferSize int
	locked        bool
	policy        model.OnDropPolicy
	closed        bool
}

// New returns a disabled file stream with no path, the default auto-flush
// threshold, and the discard-on-drop policy.
func New() *Stream {
	return &Stream{maxBufferSize: DefaultMaxBufferSize}
}

// SetPath validates that path is writable and records it. The file is
// created if missing but never truncated: the log is append-only.
func (s *Stream) SetPath(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errs.Wrapf(errs.KindPath, err, "log file %s is not writable", path)
	}
	f.Close()
	s.path = path
	return nil
}

// Path returns the configured log file path, empty when unset.
func (s *Stream) Path() string { return s.path }

// Enable turns the stream on. It fails with a path error when no writable
// path has been set, leaving the stream disabled.
func (s *Stream) Enable() error {
	if s.enabled {
		return nil
	}
	if s.path == "" {
		return errs.New(errs.KindPath, "no log file path set")
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errs.Wrapf(errs.KindPath, err, "log file %s is not writable", s.path)
	}
	f.Close()
	s.enabled = true
	return nil
}

// Disable turns the stream off. Buffered lines are kept.
func (s *Stream) Disable() { s.enabled = false }

// Enabled reports whether the stream is on.
func (s *Stream) Enabled() bool { return s.enabled }

// Out renders the event and appends it to the in-memory buffer. Once the
// buffer reaches the configured size limit, it is flushed before Out
// returns. Fails fast while the advisory lock is held.
func (s *Stream) Out(e model.Event, f *format.Formatter) error {
	if !s.enabled {
		return errors.New("file stream is disabled")
	}
	if s.locked {
		return errs.New(errs.KindLocked, "log file is locked")
	}
	s.lines = append(s.lines, f.Render(e))
	if s.maxBufferSize > 0 && len(s.lines) >= s.maxBufferSize {
		return s.Flush()
	}
	return nil
}

// Flush appends every buffered line to the log file and clears the buffer.
// The buffer is only cleared once the write succeeds, so a failed flush can
// be retried with the same pending lines.
func (s *Stream) Flush() error {
	if s.locked {
		return errs.New(errs.KindLocked, "log file is locked")
	}
	return s.writeOut()
}

// SetMaxBufferSize sets the auto-flush threshold. Sizes of zero or less
// disable auto-flushing; the buffer then grows until an explicit Flush.
func (s *Stream) SetMaxBufferSize(n int) {
	if n < 0 {
		n = 0
	}
	s.maxBufferSize = n
}

// MaxBufferSize returns the auto-flush threshold, zero when disabled.
func (s *Stream) MaxBufferSize() int { return s.maxBufferSize }

// Lock raises the advisory flag. Out and Flush fail until Unlock.
func (s *Stream) Lock() { s.locked = true }

// Unlock clears the advisory flag.
func (s *Stream) Unlock() { s.locked = false }

// Locked reports whether the advisory flag is raised.
func (s *Stream) Locked() bool { return s.locked }

// SetOnDropPolicy sets what Close does with pending lines while locked.
func (s *Stream) SetOnDropPolicy(p model.OnDropPolicy) { s.policy = p }

// OnDropPolicy returns the current on-drop policy.
func (s *Stream) OnDropPolicy() model.OnDropPolicy { return s.policy }

// BufferedLines reports how many rendered lines await flushing.
func (s *Stream) BufferedLines() int { return len(s.lines) }

// Close applies the on-drop policy exactly once and disables the stream.
// While the lock is held, DiscardLogBuffer drops pending lines and
// IgnoreLogFileLock writes them regardless; unlocked streams flush
// normally.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.enabled = false
	if s.locked && s.policy == model.DiscardLogBuffer {
		s.lines = nil
		return nil
	}
	return s.writeOut()
}

// writeOut performs the append, ignoring the lock. Callers decide whether
// the lock applies.
func (s *Stream) writeOut() error {
	if len(s.lines) == 0 {
		return nil
	}
	if s.path == "" {
		return errs.New(errs.KindPath, "no log file path set")
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return errs.Wrapf(errs.KindIO, err, "open log file %s", s.path)
	}
	var b strings.Builder
	for _, line := range s.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if _, err := f.WriteString(b.String()); err != nil {
		f.Close()
		return errs.Wrapf(errs.KindIO, err, "append to log file %s", s.path)
	}
	s.lines = nil
	if err := f.Close(); err != nil {
		return errs.Wrapf(errs.KindIO, err, "close log file %s", s.path)
	}
	return nil
}
