// Package router owns the set of output streams and fans dispatched events
// out to every enabled one.
package router

import (
	"errors"

	"github.com/crimson-sun/quill/internal/format"
	"github.com/crimson-sun/quill/internal/model"
	"github.com/crimson-sun/quill/internal/output"
	"github.com/crimson-sun/quill/internal/output/buffer"
	"github.com/crimson-sun/quill/internal/output/file"
	"github.com/crimson-sun/quill/internal/output/stderr"
)

// Router dispatches events to its child streams. An event reaches a child
// only when both the router's master gate and the child's own flag are
// enabled.
type Router struct {
	enabled bool
	stderr  *stderr.Stream
	buffer  *buffer.Stream
	file    *file.Stream
}

// New returns a Router in the default configuration: master gate and
// stderr stream enabled, buffer and file streams disabled.
func New() *Router {
	return &Router{
		enabled: true,
		stderr:  stderr.New(),
		buffer:  buffer.New(),
		file:    file.New(),
	}
}

// Enable opens the master gate.
func (r *Router) Enable() { r.enabled = true }

// Disable closes the master gate; Dispatch becomes a no-op.
func (r *Router) Disable() { r.enabled = false }

// Enabled reports whether the master gate is open.
func (r *Router) Enabled() bool { return r.enabled }

// Stderr returns the stderr stream.
func (r *Router) Stderr() *stderr.Stream { return r.stderr }

// Buffer returns the raw-event buffer stream.
func (r *Router) Buffer() *buffer.Stream { return r.buffer }

// File returns the file stream.
func (r *Router) File() *file.Stream { return r.file }

func (r *Router) streams() []output.Stream {
	return []output.Stream{r.stderr, r.buffer, r.file}
}

// Dispatch delivers the event to every enabled stream. A failing stream
// does not prevent delivery to the others; all errors are joined and
// returned.
func (r *Router) Dispatch(e model.Event, f *format.Formatter) error {
	if !r.enabled {
		return nil
	}
	var failures []error
	for _, s := range r.streams() {
		if !s.Enabled() {
			continue
		}
		if err := s.Out(e, f); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}

// Close closes every stream, letting the file stream apply its on-drop
// policy. Errors are collected, not short-circuited.
func (r *Router) Close() error {
	var failures []error
	for _, s := range r.streams() {
		if err := s.Close(); err != nil {
			failures = append(failures, err)
		}
	}
	return errors.Join(failures...)
}
