// Package ansi maps symbolic colors to terminal escape sequences.
package ansi

// Color names a terminal color. The zero value is the empty string;
// None is an explicit plain-text passthrough.
type Color string

const (
	None    Color = "none"
	Black   Color = "black"
	Blue    Color = "blue"
	Cyan    Color = "cyan"
	Green   Color = "green"
	Gray    Color = "gray"
	Magenta Color = "magenta"
	Red     Color = "red"
	White   Color = "white"
	Yellow  Color = "yellow"
)

// Reset returns the terminal to its default colors.
const Reset = "\x1b[0m"

var codes = map[Color]string{
	None:    "",
	Black:   "\x1b[30m",
	Blue:    "\x1b[34m",
	Cyan:    "\x1b[36m",
	Green:   "\x1b[32m",
	Gray:    "\x1b[90m",
	Magenta: "\x1b[35m",
	Red:     "\x1b[31m",
	White:   "\x1b[37m",
	Yellow:  "\x1b[33m",
}

// Code returns the escape sequence for c. Unknown colors map to Reset.
func Code(c Color) string {
	if code, ok := codes[c]; ok {
		return code
	}
	return Reset
}

// Colorize wraps text in the escape sequence for c, terminated by Reset.
// None returns the text unchanged.
func Colorize(text string, c Color) string {
	if c == None {
		return text
	}
	return Code(c) + text + Reset
}

// Valid reports whether c names a known color.
func Valid(c Color) bool {
	_, ok := codes[c]
	return ok
}
