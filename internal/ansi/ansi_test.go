package ansi

import "testing"

func TestColorizeWrapsTextInEscapes(t *testing.T) {
	got := Colorize("a", Red)
	want := "\x1b[31ma\x1b[0m"
	if got != want {
		t.Errorf("Colorize = %q, want %q", got, want)
	}
}

func TestColorizeNoneIsPassthrough(t *testing.T) {
	if got := Colorize("plain", None); got != "plain" {
		t.Errorf("Colorize(None) = %q, want unchanged text", got)
	}
}

func TestCodeUnknownColorResets(t *testing.T) {
	if got := Code(Color("chartreuse")); got != Reset {
		t.Errorf("Code(unknown) = %q, want Reset", got)
	}
}

func TestValid(t *testing.T) {
	for _, c := range []Color{None, Black, Blue, Cyan, Green, Gray, Magenta, Red, White, Yellow} {
		if !Valid(c) {
			t.Errorf("Valid(%q) = false, want true", c)
		}
	}
	if Valid(Color("chartreuse")) {
		t.Error("Valid(unknown) = true, want false")
	}
}
