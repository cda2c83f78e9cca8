// Package display provides formatted terminal output for the CLI.
package display

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	Bold   = color.New(color.Bold).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()

	// Out is where messages go; stderr keeps stdout clean for the
	// proposed command so it can be piped into a shell.
	Out io.Writer = os.Stderr
)

// Info prints an informational message with a cyan arrow.
func Info(format string, args ...interface{}) {
	fmt.Fprintf(Out, "%s %s\n", Cyan("→"), fmt.Sprintf(format, args...))
}

// Success prints a success message with a green checkmark.
func Success(format string, args ...interface{}) {
	fmt.Fprintf(Out, "%s %s\n", Green("✔"), fmt.Sprintf(format, args...))
}

// Fail prints an error message with a red cross.
func Fail(format string, args ...interface{}) {
	fmt.Fprintf(Out, "%s %s\n", Red("✘"), fmt.Sprintf(format, args...))
}

// Hash styles a commit hash or hash prefix.
func Hash(s string) string {
	return Yellow(s)
}

const barWidth = 40

// ProgressLine renders an in-place progress bar on one terminal line.
// Updates with an unchanged percentage are dropped, so it can be fed
// straight from a search progress callback.
type ProgressLine struct {
	w    io.Writer
	last int
}

func NewProgressLine(w io.Writer) *ProgressLine {
	if w == nil {
		w = Out
	}
	return &ProgressLine{w: w, last: -1}
}

func (p *ProgressLine) Update(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	if percent == p.last {
		return
	}
	p.last = percent

	filled := percent * barWidth / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	fmt.Fprintf(p.w, "\r%s %3d%%", Green(bar), percent)
}

// Done terminates the progress line. Safe to call when no update was
// ever rendered.
func (p *ProgressLine) Done() {
	if p.last < 0 {
		return
	}
	fmt.Fprintln(p.w)
	p.last = -1
}
