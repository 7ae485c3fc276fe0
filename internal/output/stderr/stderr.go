// Package stderr implements the standard error output stream.
package stderr

import (
	"io"
	"os"

	"github.com/crimson-sun/quill/internal/errs"
	"github.com/crimson-sun/quill/internal/format"
	"github.com/crimson-sun/quill/internal/model"
)

// Stream writes formatted log lines to standard error. Enabled by default.
type Stream struct {
	w       io.Writer
	enabled bool
}

// New returns an enabled stream writing to os.Stderr.
func New() *Stream {
	return &Stream{w: os.Stderr, enabled: true}
}

// SetWriter redirects output to w. Nil writers are rejected silently so a
// stream always has a destination.
func (s *Stream) SetWriter(w io.Writer) {
	if w == nil {
		return
	}
	s.w = w
}

// Enable turns the stream on. It has no preconditions and never fails.
func (s *Stream) Enable() error {
	s.enabled = true
	return nil
}

// Disable turns the stream off.
func (s *Stream) Disable() { s.enabled = false }

// Enabled reports whether the stream is on.
func (s *Stream) Enabled() bool { return s.enabled }

// Out formats the event and writes the line plus a trailing newline.
// Disabled streams drop the event silently.
func (s *Stream) Out(e model.Event, f *format.Formatter) error {
	if !s.enabled {
		return nil
	}
	if _, err := io.WriteString(s.w, f.Render(e)+"\n"); err != nil {
		return errs.Wrapf(errs.KindIO, err, "write log line")
	}
	return nil
}

// Close is a no-op; the stream owns no resources.
func (s *Stream) Close() error { return nil }
