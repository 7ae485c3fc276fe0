package quill

import (
	"github.com/crimson-sun/quill/internal/ansi"
	"github.com/crimson-sun/quill/internal/errs"
	"github.com/crimson-sun/quill/internal/model"
	"github.com/crimson-sun/quill/internal/template"
)

// FromTemplate creates a Logger from a JSON template file. The template's
// invariants are re-validated on load; violations fail with a config
// error, the same class direct construction would return.
func FromTemplate(path string) (*Logger, error) {
	t, err := template.Load(path)
	if err != nil {
		return nil, err
	}
	return fromTemplate(t)
}

// FromTemplateString creates a Logger from a JSON template document.
func FromTemplateString(doc string) (*Logger, error) {
	t, err := template.Parse([]byte(doc))
	if err != nil {
		return nil, err
	}
	return fromTemplate(t)
}

// SaveTemplate writes the logger's current configuration to a JSON
// template file.
func (l *Logger) SaveTemplate(path string) error {
	return template.Save(l.template(), path)
}

// TemplateString returns the logger's current configuration as a JSON
// template document.
func (l *Logger) TemplateString() (string, error) {
	data, err := template.Marshal(l.template())
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func fromTemplate(t *template.Template) (*Logger, error) {
	l, err := New()
	if err != nil {
		return nil, err
	}
	l.verbosity = t.Verbosity
	l.filtering = t.FilteringEnabled

	f := l.formatter
	f.SetColorEnabled(t.Formatter.HeaderColorEnabled)
	for name, header := range t.Formatter.Headers {
		sev, err := model.ParseSeverity(name)
		if err != nil {
			return nil, err
		}
		f.SetHeader(sev, header)
	}
	for name, color := range t.Formatter.Colors {
		sev, err := model.ParseSeverity(name)
		if err != nil {
			return nil, err
		}
		f.SetColor(sev, color)
	}
	if err := f.SetLogFormat(t.Formatter.LogFormat); err != nil {
		return nil, err
	}
	f.SetDatetimeFormat(t.Formatter.DatetimeFormat)

	out := l.output
	if t.Output.Enabled {
		out.Enable()
	} else {
		out.Disable()
	}
	if t.Output.Stderr.Enabled {
		out.Stderr().Enable()
	} else {
		out.Stderr().Disable()
	}
	if t.Output.Buffer.Enabled {
		out.Buffer().Enable()
	} else {
		out.Buffer().Disable()
	}

	fs := out.File()
	fs.SetMaxBufferSize(t.Output.File.MaxBufferSize)
	fs.SetOnDropPolicy(t.Output.File.OnDropPolicy)
	if t.Output.File.Path != "" {
		if err := fs.SetPath(t.Output.File.Path); err != nil {
			return nil, errs.Wrapf(errs.KindConfig, err, "template file output")
		}
	}
	if t.Output.File.Enabled {
		if err := fs.Enable(); err != nil {
			return nil, errs.Wrapf(errs.KindConfig, err, "template file output")
		}
	}
	return l, nil
}

// template captures the logger's current configuration as a serializable
// document.
func (l *Logger) template() *template.Template {
	f := l.formatter
	headers := make(map[string]string, len(model.Severities()))
	colors := make(map[string]ansi.Color, len(model.Severities()))
	for _, sev := range model.Severities() {
		headers[sev.String()] = f.Header(sev)
		colors[sev.String()] = f.Color(sev)
	}

	out := l.output
	return &template.Template{
		Formatter: template.Formatter{
			HeaderColorEnabled: f.ColorEnabled(),
			Headers:            headers,
			Colors:             colors,
			LogFormat:          f.LogFormat(),
			DatetimeFormat:     f.DatetimeFormat(),
		},
		Output: template.Output{
			Enabled: out.Enabled(),
			Stderr:  template.StreamConfig{Enabled: out.Stderr().Enabled()},
			Buffer:  template.StreamConfig{Enabled: out.Buffer().Enabled()},
			File: template.FileConfig{
				Enabled:       out.File().Enabled(),
				Path:          out.File().Path(),
				MaxBufferSize: out.File().MaxBufferSize(),
				OnDropPolicy:  out.File().OnDropPolicy(),
			},
		},
		Verbosity:        l.verbosity,
		FilteringEnabled: l.filtering,
	}
}
