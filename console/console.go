// Package console provides progress and summary output with injectable
// writers for testing.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Console writes per-item progress lines and summaries. Commands share one
// instance per run.
type Console struct {
	Out io.Writer
	Err io.Writer

	green  func(a ...interface{}) string
	yellow func(a ...interface{}) string
	red    func(a ...interface{}) string
}

// New creates a Console writing to stdout/stderr with colors enabled.
func New() *Console {
	return &Console{
		Out:    os.Stdout,
		Err:    os.Stderr,
		green:  color.New(color.FgGreen).SprintFunc(),
		yellow: color.New(color.FgYellow).SprintFunc(),
		red:    color.New(color.FgRed, color.Bold).SprintFunc(),
	}
}

// NewForTesting creates a Console with colors disabled and output captured.
func NewForTesting(out, errOut io.Writer) *Console {
	noColor := func(a ...interface{}) string { return fmt.Sprint(a...) }
	return &Console{
		Out:    out,
		Err:    errOut,
		green:  noColor,
		yellow: noColor,
		red:    noColor,
	}
}

// Infof prints a plain progress line.
func (c *Console) Infof(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format+"\n", args...)
}

// Okf prints a line with a green status word, e.g. "  Created: name".
func (c *Console) Okf(status, format string, args ...interface{}) {
	fmt.Fprintf(c.Out, "  %s %s\n", c.green(status+":"), fmt.Sprintf(format, args...))
}

// Skipf prints a yellow skip line.
func (c *Console) Skipf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, "  %s %s\n", c.yellow("SKIP:"), fmt.Sprintf(format, args...))
}

// Errorf prints a red error line to Err.
func (c *Console) Errorf(format string, args ...interface{}) {
	fmt.Fprintf(c.Err, "%s %s\n", c.red("Error:"), fmt.Sprintf(format, args...))
}
