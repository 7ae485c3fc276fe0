// Package model holds the core value types of the library: log events and
// the enumerations that configure how they are filtered and persisted.
package model

import "time"

// Event is a single log occurrence. Events are immutable once created:
// streams receive their own copy and never mutate it.
type Event struct {
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	Time     time.Time `json:"time"`
}

// NewEvent returns an Event stamped with the current time.
func NewEvent(severity Severity, message string) Event {
	return Event{Severity: severity, Message: message, Time: time.Now()}
}
