// Package format renders log events into display strings using a
// placeholder template and per-severity headers and colors.
package format

import (
	"strings"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/crimson-sun/quill/internal/ansi"
	"github.com/crimson-sun/quill/internal/errs"
	"github.com/crimson-sun/quill/internal/model"
)

// Default templates applied by New.
const (
	DefaultLogFormat      = "[%h] %m"
	DefaultDatetimeFormat = "%Y-%m-%d %H:%M:%S"
)

// fallbackLayout is used when the configured datetime format fails to
// compile. It is the Go rendering of DefaultDatetimeFormat.
const fallbackLayout = "2006-01-02 15:04:05"

// Formatter renders events according to its current configuration.
// Render is deterministic for a given event and configuration; the
// timestamp comes from the event, not from render time.
//
// The log format template substitutes three placeholders:
//
//	%h  the severity header, colored when header colors are enabled
//	%d  the event time, formatted per the strftime-style datetime format
//	%m  the message (mandatory; SetLogFormat rejects templates without it)
//
// Any other character following '%' is emitted literally.
type Formatter struct {
	colorEnabled   bool
	headers        map[model.Severity]string
	colors         map[model.Severity]ansi.Color
	logFormat      string
	datetimeFormat string
	showDatetime   bool

	// Lazily compiled datetime pattern. Invalid patterns are not rejected
	// at set time; renderTime falls back to fallbackLayout instead.
	strf     *strftime.Strftime
	strfErr  error
	compiled bool
}

// New returns a Formatter with the default configuration: colored headers
// DBG/INF/WAR/ERR/FATAL in blue/green/yellow/red/magenta, log format
// "[%h] %m" and datetime format "%Y-%m-%d %H:%M:%S".
func New() *Formatter {
	return &Formatter{
		colorEnabled: true,
		headers: map[model.Severity]string{
			model.Debug:   "DBG",
			model.Info:    "INF",
			model.Warning: "WAR",
			model.Error:   "ERR",
			model.Fatal:   "FATAL",
		},
		colors: map[model.Severity]ansi.Color{
			model.Debug:   ansi.Blue,
			model.Info:    ansi.Green,
			model.Warning: ansi.Yellow,
			model.Error:   ansi.Red,
			model.Fatal:   ansi.Magenta,
		},
		logFormat:      DefaultLogFormat,
		datetimeFormat: DefaultDatetimeFormat,
	}
}

// Render returns the display string for e. The result carries no trailing
// newline; streams append one when writing.
func (f *Formatter) Render(e model.Event) string {
	header := f.header(e.Severity)
	var datetime string
	if f.showDatetime {
		datetime = f.renderTime(e.Time)
	}

	var b strings.Builder
	b.Grow(len(f.logFormat) + len(header) + len(datetime) + len(e.Message))
	tpl := f.logFormat
	for i := 0; i < len(tpl); i++ {
		c := tpl[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(tpl) {
			break
		}
		switch tpl[i] {
		case 'h':
			b.WriteString(header)
		case 'd':
			b.WriteString(datetime)
		case 'm':
			b.WriteString(e.Message)
		default:
			b.WriteByte(tpl[i])
		}
	}
	return b.String()
}

// SetLogFormat replaces the log format template. It fails with a config
// error when the mandatory %m placeholder is missing, leaving the previous
// template in place.
func (f *Formatter) SetLogFormat(tpl string) error {
	if !strings.Contains(tpl, "%m") {
		return errs.New(errs.KindConfig, "log format must contain the %m message placeholder")
	}
	f.logFormat = tpl
	f.showDatetime = strings.Contains(tpl, "%d")
	return nil
}

// SetDatetimeFormat replaces the strftime-style datetime format. The
// pattern is not validated here; rendering falls back to a fixed layout
// when it does not compile.
func (f *Formatter) SetDatetimeFormat(tpl string) {
	f.datetimeFormat = tpl
	f.strf = nil
	f.strfErr = nil
	f.compiled = false
}

// SetHeader replaces the header label for the given severity.
func (f *Formatter) SetHeader(s model.Severity, header string) {
	f.headers[s] = header
}

// SetColor replaces the header color for the given severity.
func (f *Formatter) SetColor(s model.Severity, c ansi.Color) {
	f.colors[s] = c
}

// SetColorEnabled toggles colored headers. When disabled, headers render
// as plain text.
func (f *Formatter) SetColorEnabled(enabled bool) {
	f.colorEnabled = enabled
}

// LogFormat returns the current log format template.
func (f *Formatter) LogFormat() string { return f.logFormat }

// DatetimeFormat returns the current datetime format.
func (f *Formatter) DatetimeFormat() string { return f.datetimeFormat }

// Header returns the header label for the given severity.
func (f *Formatter) Header(s model.Severity) string { return f.headers[s] }

// Color returns the header color for the given severity.
func (f *Formatter) Color(s model.Severity) ansi.Color { return f.colors[s] }

// ColorEnabled reports whether headers are colored.
func (f *Formatter) ColorEnabled() bool { return f.colorEnabled }

func (f *Formatter) header(s model.Severity) string {
	h := f.headers[s]
	if !f.colorEnabled {
		return h
	}
	return ansi.Colorize(h, f.colors[s])
}

func (f *Formatter) renderTime(t time.Time) string {
	if !f.compiled {
		f.strf, f.strfErr = strftime.New(f.datetimeFormat)
		f.compiled = true
	}
	if f.strfErr != nil {
		return t.Format(fallbackLayout)
	}
	return f.strf.FormatString(t)
}
