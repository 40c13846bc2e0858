package errors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// CLIErrorAdapter turns the error that ended a command into a message on
// stderr, a log record and a process exit code.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
	out     io.Writer
	exit    func(int)
}

// NewCLIErrorAdapter creates an adapter writing to stderr. A nil logger
// means slog.Default().
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{verbose: verbose, logger: logger, out: os.Stderr, exit: os.Exit}
}

// Exit codes by category. Unclassified errors exit with 1.
var exitCodes = map[ErrorCategory]int{
	CategoryValidation: 2,
	CategoryConfig:     7,
	CategoryInternal:   10,
	CategoryRender:     11,
	CategoryFileSystem: 11,
	CategoryIndex:      13,
}

// ExitCodeFor determines the process exit code for err.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if classified, ok := AsClassified(err); ok {
		if code, ok := exitCodes[classified.Category()]; ok {
			return code
		}
	}
	return 1
}

// FormatError renders err for the terminal. Internal errors are summarised
// unless the adapter is verbose.
func (a *CLIErrorAdapter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	classified, ok := AsClassified(err)
	if !ok {
		return fmt.Sprintf("Error: %v", err)
	}

	var b strings.Builder
	switch {
	case a.verbose:
		b.WriteString(classified.Error())
	case classified.Category() == CategoryInternal:
		b.WriteString("Internal error occurred (use -v for details)")
	case classified.Cause() != nil:
		fmt.Fprintf(&b, "Error: %s: %v", classified.Message(), classified.Cause())
	default:
		b.WriteString("Error: " + classified.Message())
	}
	if hint := classified.Hint(); hint != "" {
		b.WriteString("\nHint: " + hint)
	}
	return b.String()
}

// HandleError reports err and exits with its exit code. It does nothing
// for a nil error.
func (a *CLIErrorAdapter) HandleError(err error) {
	if err == nil {
		return
	}
	if a.shouldLog(err) {
		a.logError(err)
	}
	_, _ = fmt.Fprintln(a.out, a.FormatError(err))
	a.exit(a.ExitCodeFor(err))
}

func (a *CLIErrorAdapter) shouldLog(err error) bool {
	if a.verbose {
		return true
	}
	if classified, ok := AsClassified(err); ok {
		return classified.IsFatal()
	}
	return true
}

// logError logs the error with its category and context as attributes.
func (a *CLIErrorAdapter) logError(err error) {
	classified, ok := AsClassified(err)
	if !ok {
		a.logger.Error("Unclassified error", slog.String("error", err.Error()))
		return
	}

	attrs := []slog.Attr{slog.String("category", string(classified.Category()))}
	ctx := classified.Context()
	for _, k := range ctx.Keys() {
		attrs = append(attrs, slog.Any(k, ctx[k]))
	}
	if cause := classified.Cause(); cause != nil {
		attrs = append(attrs, slog.String("error", cause.Error()))
	}
	a.logger.LogAttrs(context.Background(), levelFor(classified.Severity()), classified.Message(), attrs...)
}

func levelFor(severity ErrorSeverity) slog.Level {
	if severity == SeverityWarning {
		return slog.LevelWarn
	}
	return slog.LevelError
}
