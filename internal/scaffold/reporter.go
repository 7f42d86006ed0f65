package scaffold

import (
	"fmt"
	"io"
)

// Reporter receives progress notifications during a pipeline run. Reporting
// is a side effect only; it never alters control flow.
type Reporter interface {
	Step(msg string)
	FileWritten(relPath string)
	FileSkipped(relPath string)
}

// consoleReporter prints plain progress lines to a writer.
type consoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a Reporter that writes progress to out.
func NewConsoleReporter(out io.Writer) Reporter {
	return &consoleReporter{out: out}
}

func (r *consoleReporter) Step(msg string) {
	_, _ = fmt.Fprintf(r.out, "=> %s\n", msg)
}

func (r *consoleReporter) FileWritten(relPath string) {
	_, _ = fmt.Fprintf(r.out, "   wrote   %s\n", relPath)
}

func (r *consoleReporter) FileSkipped(relPath string) {
	_, _ = fmt.Fprintf(r.out, "   skipped %s (exists)\n", relPath)
}

// nopReporter discards all notifications. Used when no reporter is set.
type nopReporter struct{}

func (nopReporter) Step(string)        {}
func (nopReporter) FileWritten(string) {}
func (nopReporter) FileSkipped(string) {}
