// Package template serializes a full logger configuration to and from the
// JSON template document. Field names and nesting are a compatibility
// surface: every field round-trips losslessly through Marshal and Parse.
package template

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/crimson-sun/quill/internal/ansi"
	"github.com/crimson-sun/quill/internal/errs"
	"github.com/crimson-sun/quill/internal/model"
)

// Template is the on-disk representation of a logger configuration.
type Template struct {
	Formatter        Formatter       `json:"formatter"`
	Output           Output          `json:"output"`
	Verbosity        model.Verbosity `json:"verbosity"`
	FilteringEnabled bool            `json:"filtering_enabled"`
}

// Formatter mirrors the formatter configuration. Headers and Colors are
// keyed by severity name ("debug" through "fatal").
type Formatter struct {
	HeaderColorEnabled bool                  `json:"header_color_enabled"`
	Headers            map[string]string     `json:"headers"`
	Colors             map[string]ansi.Color `json:"colors"`
	LogFormat          string                `json:"log_format"`
	DatetimeFormat     string                `json:"datetime_format"`
}

// Output mirrors the router state: the master gate plus per-stream flags.
type Output struct {
	Enabled bool         `json:"enabled"`
	Stderr  StreamConfig `json:"stderr"`
	Buffer  StreamConfig `json:"buffer"`
	File    FileConfig   `json:"file"`
}

// StreamConfig is the serialized state of a stream without extra knobs.
type StreamConfig struct {
	Enabled bool `json:"enabled"`
}

// FileConfig is the serialized state of the file stream.
type FileConfig struct {
	Enabled       bool               `json:"enabled"`
	Path          string             `json:"path,omitempty"`
	MaxBufferSize int                `json:"max_buffer_size"`
	OnDropPolicy  model.OnDropPolicy `json:"on_drop_policy"`
}

// Validate checks the invariants a logger enforces at construction time.
// Enum values are already validated during JSON decoding.
func (t *Template) Validate() error {
	if !strings.Contains(t.Formatter.LogFormat, "%m") {
		return errs.New(errs.KindConfig, "log format must contain the %m message placeholder")
	}
	for name := range t.Formatter.Headers {
		if _, err := model.ParseSeverity(name); err != nil {
			return err
		}
	}
	for name, c := range t.Formatter.Colors {
		if _, err := model.ParseSeverity(name); err != nil {
			return err
		}
		if !ansi.Valid(c) {
			return errs.Newf(errs.KindConfig, "unknown color %q for %s header", c, name)
		}
	}
	if t.Output.File.Enabled && t.Output.File.Path == "" {
		return errs.New(errs.KindConfig, "file output enabled without a log file path")
	}
	return nil
}

// Parse decodes and validates a JSON template document.
func Parse(data []byte) (*Template, error) {
	var t Template
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, errs.Wrapf(errs.KindConfig, err, "parse template")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Marshal encodes t as an indented JSON document with a trailing newline.
func Marshal(t *Template) ([]byte, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, errs.Wrapf(errs.KindConfig, err, "encode template")
	}
	return append(data, '\n'), nil
}

// Load reads and parses a template file.
func Load(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errs.Wrapf(errs.KindIO, err, "read template %s", path)
	}
	return Parse(data)
}

// Save writes t to path, replacing any previous content.
func Save(t *Template, path string) error {
	data, err := Marshal(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errs.Wrapf(errs.KindIO, err, "write template %s", path)
	}
	return nil
}
