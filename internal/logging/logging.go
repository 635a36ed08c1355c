package logging

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"golang.org/x/term"
)

// New returns a charmbracelet logger writing to stderr. Output is colored
// text on a terminal and JSON otherwise.
func New(verbose bool) *charmlog.Logger {
	return newLogger(os.Stderr, verbose, isTerminal())
}

func newLogger(w io.Writer, verbose, tty bool) *charmlog.Logger {
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		ReportTimestamp: true,
	})

	if verbose {
		logger.SetLevel(charmlog.DebugLevel)
	} else {
		logger.SetLevel(charmlog.InfoLevel)
	}

	if !tty {
		logger.SetFormatter(charmlog.JSONFormatter)
	}

	return logger
}

// Setup installs New(verbose) as the slog default and returns it.
func Setup(verbose bool) *charmlog.Logger {
	logger := New(verbose)
	slog.SetDefault(slog.New(logger))
	return logger
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stderr.Fd()))
}
