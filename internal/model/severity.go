package model

import (
	"encoding/json"

	"github.com/crimson-sun/quill/internal/errs"
)

// Severity is the importance tier of a log event, ordered ascending from
// Debug to Fatal.
type Severity int

const (
	Debug Severity = iota
	Info
	Warning
	Error
	Fatal
)

var severityNames = [...]string{"debug", "info", "warning", "error", "fatal"}

// Severities returns all severities in ascending order.
func Severities() []Severity {
	return []Severity{Debug, Info, Warning, Error, Fatal}
}

func (s Severity) String() string {
	if s < Debug || s > Fatal {
		return "unknown"
	}
	return severityNames[s]
}

// ParseSeverity converts a severity name to its Severity value.
func ParseSeverity(name string) (Severity, error) {
	for i, n := range severityNames {
		if n == name {
			return Severity(i), nil
		}
	}
	return 0, errs.Newf(errs.KindConfig, "unknown severity %q", name)
}

// MarshalJSON encodes the severity as its lowercase name.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a severity from its lowercase name.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errs.Wrapf(errs.KindConfig, err, "decode severity")
	}
	v, err := ParseSeverity(name)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
