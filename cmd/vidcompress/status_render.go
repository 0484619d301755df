package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusWarn
	statusError
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiBlue   = "\x1b[34m"
)

var statusStyles = map[statusKind]struct {
	label string
	color string
}{
	statusInfo:  {"INFO", ansiBlue},
	statusOK:    {"OK", ansiGreen},
	statusWarn:  {"WARN", ansiYellow},
	statusError: {"ERROR", ansiRed},
}

// reportWriter prints the aligned label/value block shared by the summary and
// check output.
type reportWriter struct {
	w        io.Writer
	colorize bool
	width    int
}

func newReportWriter(w io.Writer, colorize bool) *reportWriter {
	return &reportWriter{w: w, colorize: colorize, width: 12}
}

func (r *reportWriter) header(title string) {
	line := fmt.Sprintf("== %s ==", strings.TrimSpace(title))
	rule := strings.Repeat("-", len(line))
	fmt.Fprintln(r.w, r.paint(ansiBlue, line))
	fmt.Fprintln(r.w, r.paint(ansiBlue, rule))
}

func (r *reportWriter) field(label, value string) {
	fmt.Fprintln(r.w, r.pad(label)+" "+value)
}

func (r *reportWriter) status(label string, kind statusKind, message string) {
	fmt.Fprintln(r.w, renderStatusLine(label, kind, message, r.colorize))
}

func (r *reportWriter) block(text string) {
	fmt.Fprintln(r.w, text)
}

func (r *reportWriter) pad(label string) string {
	return fmt.Sprintf("  %-*s", r.width, label+":")
}

func (r *reportWriter) paint(color, s string) string {
	if !r.colorize || color == "" {
		return s
	}
	return color + s + ansiReset
}

func renderStatusLine(label string, kind statusKind, message string, colorize bool) string {
	style, ok := statusStyles[kind]
	if !ok {
		style = statusStyles[statusInfo]
	}
	text := "[" + style.label + "]"
	if message != "" {
		text += " " + message
	}
	r := reportWriter{colorize: colorize, width: 12}
	return r.paint(style.color, r.pad(label)+" "+text)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
