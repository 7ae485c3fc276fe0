package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/quill/internal/ansi"
	"github.com/crimson-sun/quill/internal/errs"
	"github.com/crimson-sun/quill/internal/model"
)

func defaultTemplate() *Template {
	return &Template{
		Formatter: Formatter{
			HeaderColorEnabled: true,
			Headers: map[string]string{
				"debug":   "DBG",
				"info":    "INF",
				"warning": "WAR",
				"error":   "ERR",
				"fatal":   "FATAL",
			},
			Colors: map[string]ansi.Color{
				"debug":   ansi.Blue,
				"info":    ansi.Green,
				"warning": ansi.Yellow,
				"error":   ansi.Red,
				"fatal":   ansi.Magenta,
			},
			LogFormat:      "[%h] %m",
			DatetimeFormat: "%Y-%m-%d %H:%M:%S",
		},
		Output: Output{
			Enabled: true,
			Stderr:  StreamConfig{Enabled: true},
			Buffer:  StreamConfig{Enabled: false},
			File:    FileConfig{Enabled: false, MaxBufferSize: 128},
		},
		Verbosity:        model.Standard,
		FilteringEnabled: true,
	}
}

func TestMarshalParseRoundTrip(t *testing.T) {
	want := defaultTemplate()

	data, err := Marshal(want)
	require.NoError(t, err)
	assert.True(t, data[len(data)-1] == '\n', "document should end with a newline")

	got, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestMarshalUsesSnakeCaseEnumNames(t *testing.T) {
	tpl := defaultTemplate()
	tpl.Verbosity = model.ErrorsOnly
	tpl.Output.File.OnDropPolicy = model.IgnoreLogFileLock

	data, err := Marshal(tpl)
	require.NoError(t, err)

	doc := string(data)
	assert.Contains(t, doc, `"verbosity": "errors_only"`)
	assert.Contains(t, doc, `"on_drop_policy": "ignore_log_file_lock"`)
	assert.Contains(t, doc, `"filtering_enabled": true`)
	assert.NotContains(t, doc, `"path"`, "empty path should be omitted")
}

func TestMarshalIncludesPathWhenSet(t *testing.T) {
	tpl := defaultTemplate()
	tpl.Output.File.Enabled = true
	tpl.Output.File.Path = "/var/log/app.log"

	data, err := Marshal(tpl)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"path": "/var/log/app.log"`)
}

func TestParseRejectsUnknownVerbosity(t *testing.T) {
	tpl := defaultTemplate()
	data, err := Marshal(tpl)
	require.NoError(t, err)

	doc := string(data)
	require.Contains(t, doc, `"verbosity": "standard"`)
	doc = strings.Replace(doc, `"verbosity": "standard"`, `"verbosity": "loudest"`, 1)

	_, err = Parse([]byte(doc))
	require.Error(t, err)
	assert.True(t, errs.IsConfig(err), "expected a config error, got %v", err)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte("{not json"))
	require.Error(t, err)
	assert.True(t, errs.IsConfig(err))
}

func TestValidateRejectsFormatWithoutMessagePlaceholder(t *testing.T) {
	tpl := defaultTemplate()
	tpl.Formatter.LogFormat = "[%h] %d"

	err := tpl.Validate()
	require.Error(t, err)
	assert.True(t, errs.IsConfig(err))
}

func TestValidateRejectsUnknownSeverityKey(t *testing.T) {
	tpl := defaultTemplate()
	tpl.Formatter.Headers["trace"] = "TRC"

	err := tpl.Validate()
	require.Error(t, err)
	assert.True(t, errs.IsConfig(err))
}

func TestValidateRejectsUnknownColor(t *testing.T) {
	tpl := defaultTemplate()
	tpl.Formatter.Colors["info"] = ansi.Color("chartreuse")

	err := tpl.Validate()
	require.Error(t, err)
	assert.True(t, errs.IsConfig(err))
}

func TestValidateRejectsEnabledFileWithoutPath(t *testing.T) {
	tpl := defaultTemplate()
	tpl.Output.File.Enabled = true
	tpl.Output.File.Path = ""

	err := tpl.Validate()
	require.Error(t, err)
	assert.True(t, errs.IsConfig(err))
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.json")
	want := defaultTemplate()

	require.NoError(t, Save(want, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.True(t, errs.IsIO(err), "expected an io error, got %v", err)
}

func TestSaveReplacesPreviousContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "template.json")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, Save(defaultTemplate(), path))

	_, err := Load(path)
	require.NoError(t, err)
}
