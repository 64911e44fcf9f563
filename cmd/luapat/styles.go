package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
	"luapat"
)

// styles holds the color formatters for match output.
type styles struct {
	name    *color.Color
	lineNo  *color.Color
	match   *color.Color
	capture *color.Color
	sep     *color.Color
}

// newStyles creates color formatters; enabled=false disables all of them.
func newStyles(enabled bool) *styles {
	s := &styles{
		name:    color.New(color.FgMagenta),
		lineNo:  color.New(color.FgGreen),
		match:   color.New(color.Bold, color.FgRed),
		capture: color.New(color.FgYellow),
		sep:     color.New(color.FgCyan),
	}

	if !enabled {
		s.name.DisableColor()
		s.lineNo.DisableColor()
		s.match.DisableColor()
		s.capture.DisableColor()
		s.sep.DisableColor()
	}

	return s
}

// resolveStyles applies the --color flag. It must run before any output
// goroutine starts because color.NoColor is package state.
func resolveStyles() *styles {
	switch colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default: // "auto"
		if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		} else {
			color.NoColor = false
		}
	}
	return newStyles(!color.NoColor)
}

// prefix renders the "name:line:" lead of an output line. The name is
// omitted when only one input is processed; the line number when lineNo is 0.
func (s *styles) prefix(name string, showName bool, lineNo int) string {
	var b strings.Builder
	if showName {
		b.WriteString(s.name.Sprint(name))
		b.WriteString(s.sep.Sprint(":"))
	}
	if lineNo > 0 {
		b.WriteString(s.lineNo.Sprint(strconv.Itoa(lineNo)))
		b.WriteString(s.sep.Sprint(":"))
	}
	return b.String()
}

// highlight returns line with the match r emphasized.
func (s *styles) highlight(line []byte, r luapat.Result[byte]) string {
	start, end := r.Span()
	return string(line[:start]) + s.match.Sprint(string(line[start:end])) + string(line[end:])
}

// captures renders the captures of r separated by tabs, or the whole match
// when the pattern has none. Position captures print as 1-based offsets.
func (s *styles) captures(r luapat.Result[byte]) string {
	if r.NumCaptures() == 0 {
		return s.capture.Sprint(string(r.Text()))
	}
	parts := make([]string, 0, r.NumCaptures())
	for i, c := range r.Spans() {
		if c.Position {
			parts = append(parts, s.capture.Sprint(strconv.Itoa(c.Start+1)))
			continue
		}
		text, _ := r.Capture(i)
		parts = append(parts, s.capture.Sprint(string(text)))
	}
	return strings.Join(parts, "\t")
}
