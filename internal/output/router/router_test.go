package router

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/crimson-sun/quill/internal/errs"
	"github.com/crimson-sun/quill/internal/format"
	"github.com/crimson-sun/quill/internal/model"
)

// errWriter always fails, simulating a broken stderr.
type errWriter struct{}

func (errWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func plainFormatter() *format.Formatter {
	f := format.New()
	f.SetColorEnabled(false)
	return f
}

func testEvent(msg string) model.Event {
	return model.Event{Severity: model.Info, Message: msg, Time: time.Now()}
}

func TestDefaultConfiguration(t *testing.T) {
	r := New()
	if !r.Enabled() {
		t.Error("router gate should be enabled by default")
	}
	if !r.Stderr().Enabled() {
		t.Error("stderr stream should be enabled by default")
	}
	if r.Buffer().Enabled() {
		t.Error("buffer stream should be disabled by default")
	}
	if r.File().Enabled() {
		t.Error("file stream should be disabled by default")
	}
}

func TestDisabledGateDropsEvents(t *testing.T) {
	r := New()
	r.Stderr().Disable()
	r.Buffer().Enable()
	r.Disable()

	if err := r.Dispatch(testEvent("dropped"), plainFormatter()); err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if r.Buffer().Len() != 0 {
		t.Error("disabled gate still dispatched to an enabled child")
	}
}

func TestDispatchReachesOnlyEnabledStreams(t *testing.T) {
	var out bytes.Buffer
	r := New()
	r.Stderr().SetWriter(&out)
	r.Buffer().Enable()

	if err := r.Dispatch(testEvent("fan out"), plainFormatter()); err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}

	if out.String() != "[INF] fan out\n" {
		t.Errorf("stderr got %q", out.String())
	}
	if r.Buffer().Len() != 1 {
		t.Errorf("buffer got %d events, want 1", r.Buffer().Len())
	}
	if r.File().BufferedLines() != 0 {
		t.Error("disabled file stream received the event")
	}
}

func TestPartialFailureDoesNotShortCircuit(t *testing.T) {
	r := New()
	r.Stderr().SetWriter(errWriter{})
	r.Buffer().Enable()

	err := r.Dispatch(testEvent("still delivered"), plainFormatter())
	if err == nil {
		t.Fatal("expected the stderr failure to surface")
	}
	if !errs.IsIO(err) {
		t.Errorf("expected an io error, got %v", err)
	}
	if r.Buffer().Len() != 1 {
		t.Fatalf("buffer got %d events despite sibling failure, want 1", r.Buffer().Len())
	}
}

func TestDispatchOrderMatchesCallOrder(t *testing.T) {
	r := New()
	r.Stderr().Disable()
	r.Buffer().Enable()

	f := plainFormatter()
	for _, m := range []string{"a", "b", "c"} {
		if err := r.Dispatch(testEvent(m), f); err != nil {
			t.Fatalf("Dispatch error: %v", err)
		}
	}

	events := r.Buffer().Events()
	for i, want := range []string{"a", "b", "c"} {
		if events[i].Message != want {
			t.Errorf("event %d = %q, want %q", i, events[i].Message, want)
		}
	}
}

func TestCloseFlushesFileStream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	r := New()
	r.Stderr().Disable()
	if err := r.File().SetPath(path); err != nil {
		t.Fatal(err)
	}
	if err := r.File().Enable(); err != nil {
		t.Fatal(err)
	}

	if err := r.Dispatch(testEvent("pending"), plainFormatter()); err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[INF] pending\n" {
		t.Errorf("file contains %q", data)
	}
}
