package model

import (
	"encoding/json"

	"github.com/crimson-sun/quill/internal/errs"
)

// OnDropPolicy governs what a file stream does with pending buffered lines
// when it is closed while the advisory file lock is held.
type OnDropPolicy int

const (
	// DiscardLogBuffer drops pending lines instead of writing past the lock.
	// This is the default.
	DiscardLogBuffer OnDropPolicy = iota
	// IgnoreLogFileLock writes pending lines regardless of the lock.
	IgnoreLogFileLock
)

var policyNames = [...]string{"discard_log_buffer", "ignore_log_file_lock"}

func (p OnDropPolicy) String() string {
	if p < DiscardLogBuffer || p > IgnoreLogFileLock {
		return "unknown"
	}
	return policyNames[p]
}

// ParseOnDropPolicy converts a policy name to its OnDropPolicy value.
func ParseOnDropPolicy(name string) (OnDropPolicy, error) {
	for i, n := range policyNames {
		if n == name {
			return OnDropPolicy(i), nil
		}
	}
	return 0, errs.Newf(errs.KindConfig, "unknown on-drop policy %q", name)
}

// MarshalJSON encodes the policy as its snake_case name.
func (p OnDropPolicy) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a policy from its snake_case name.
func (p *OnDropPolicy) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return errs.Wrapf(errs.KindConfig, err, "decode on-drop policy")
	}
	parsed, err := ParseOnDropPolicy(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
