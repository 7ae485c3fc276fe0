// Package buffer implements the in-memory output stream that stores raw,
// unformatted events.
package buffer

import (
	"github.com/crimson-sun/quill/internal/format"
	"github.com/crimson-sun/quill/internal/model"
)

// Stream stores raw events in arrival order. It grows without bound until
// Clear is called. Disabled by default.
type Stream struct {
	enabled bool
	events  []model.Event
}

// New returns a disabled buffer stream.
func New() *Stream { return &Stream{} }

// Enable turns the stream on. It has no preconditions and never fails.
func (s *Stream) Enable() error {
	s.enabled = true
	return nil
}

// Disable turns the stream off.
func (s *Stream) Disable() { s.enabled = false }

// Enabled reports whether the stream is on.
func (s *Stream) Enabled() bool { return s.enabled }

// Out stores the raw event. The formatter is unused: buffered events keep
// their original form so consumers can inspect or format them later.
func (s *Stream) Out(e model.Event, _ *format.Formatter) error {
	if !s.enabled {
		return nil
	}
	s.events = append(s.events, e)
	return nil
}

// Events returns a snapshot of the buffered events in arrival order.
func (s *Stream) Events() []model.Event {
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}

// Len reports how many events are buffered.
func (s *Stream) Len() int { return len(s.events) }

// Clear discards all buffered events.
func (s *Stream) Clear() { s.events = nil }

// Close is a no-op; buffered events stay readable until Clear.
func (s *Stream) Close() error { return nil }
