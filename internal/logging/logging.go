// Package logging builds the process logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"golang.org/x/term"
)

// ParseLevel maps a configured log_level to a charm log level.
func ParseLevel(level string) (charmlog.Level, error) {
	switch level {
	case "debug":
		return charmlog.DebugLevel, nil
	case "info", "":
		return charmlog.InfoLevel, nil
	case "warning", "warn":
		return charmlog.WarnLevel, nil
	case "error":
		return charmlog.ErrorLevel, nil
	}
	return 0, fmt.Errorf("unknown log level %q", level)
}

// New returns a slog logger backed by charm log. Output is styled text on a
// terminal and logfmt otherwise.
func New(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	formatter := charmlog.LogfmtFormatter
	if isTerminal(w) {
		formatter = charmlog.TextFormatter
	}

	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           lvl,
		Prefix:          "termwin",
		ReportTimestamp: true,
		Formatter:       formatter,
	})
	return slog.New(handler), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
