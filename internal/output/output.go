// Package output defines the stream abstraction shared by every log
// destination.
package output

import (
	"github.com/crimson-sun/quill/internal/format"
	"github.com/crimson-sun/quill/internal/model"
)

// Stream is a toggleable log destination. Out consumes one event; variants
// that need display text format it with the supplied formatter, others
// (the raw event buffer) ignore it. Close releases the destination,
// applying any pending-write policy the variant defines.
type Stream interface {
	Enable() error
	Disable()
	Enabled() bool
	Out(event model.Event, f *format.Formatter) error
	Close() error
}
