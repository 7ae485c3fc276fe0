package model

import (
	"encoding/json"

	"github.com/crimson-sun/quill/internal/errs"
)

// Verbosity is a suppression threshold. Events below the implied minimum
// severity are filtered when filtering is enabled; Fatal always passes.
type Verbosity int

const (
	// All lets every log through.
	All Verbosity = iota
	// Standard filters debug logs only.
	Standard
	// Quiet only lets warnings and errors through.
	Quiet
	// ErrorsOnly suppresses everything below Error.
	ErrorsOnly
)

var verbosityNames = [...]string{"all", "standard", "quiet", "errors_only"}

// Threshold returns the minimum severity the verbosity lets through.
func (v Verbosity) Threshold() Severity {
	switch v {
	case All:
		return Debug
	case Quiet:
		return Warning
	case ErrorsOnly:
		return Error
	default:
		return Info
	}
}

func (v Verbosity) String() string {
	if v < All || v > ErrorsOnly {
		return "unknown"
	}
	return verbosityNames[v]
}

// ParseVerbosity converts a verbosity name to its Verbosity value.
func ParseVerbosity(name string) (Verbosity, error) {
	for i, n := range verbosityNames {
		if n == name {
			return Verbosity(i), nil
		}
	}
	return 0, errs.Newf(errs.KindConfig, "unknown verbosity %q", name)
}

// MarshalJSON encodes the verbosity as its snake_case name.
func (v Verbosity) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a verbosity from its snake_case name.
func (v *Verbosity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errs.Wrapf(errs.KindConfig, err, "decode verbosity")
	}
	parsed, err := ParseVerbosity(name)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
