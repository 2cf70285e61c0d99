package cli

import (
	"errors"
	"fmt"
	"io"

	courier "github.com/reoring/courier"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Payload failed to coerce
	ExitCommandError = 2 // Command error (unknown type, unreadable file, etc.)
)

// Error codes reported in JSON output.
const (
	ErrCodeGeneric     = "E001"
	ErrCodeUnknownType = "E002"
	ErrCodeLoad        = "E003"
	ErrCodeInvalid     = "E004"
	ErrCodeEncode      = "E005"
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// IssueView is the JSON rendering of a courier.Issue.
type IssueView struct {
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

func issueViews(iss courier.Issues) []IssueView {
	out := make([]IssueView, 0, len(iss))
	for _, it := range iss {
		out = append(out, IssueView{Path: it.Path, Code: it.Code, Message: it.Message, Hint: it.Hint})
	}
	return out
}

func (f *OutputFormatter) writeJSON(resp CLIResponse) error {
	b, err := courier.Marshal(resp)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(f.Writer, string(b))
	return err
}

// Success outputs a successful result. text is printed in text mode, data
// is wrapped in a CLIResponse in JSON mode.
func (f *OutputFormatter) Success(text string, data any) error {
	if f.Format == "json" {
		return f.writeJSON(CLIResponse{Status: "ok", Data: data})
	}
	_, err := fmt.Fprintln(f.Writer, text)
	return err
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string, details any) error {
	if f.Format == "json" {
		return f.writeJSON(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message, Details: details},
		})
	}
	fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	if f.Verbose && details != nil {
		fmt.Fprintf(f.Writer, "Details: %v\n", details)
	}
	return nil
}

// Issues prints one line per issue in text mode, or a single error
// response carrying every issue in JSON mode.
func (f *OutputFormatter) Issues(message string, iss courier.Issues) error {
	if f.Format == "json" {
		return f.Error(ErrCodeInvalid, message, issueViews(iss))
	}
	for _, it := range iss {
		line := fmt.Sprintf("%s: %s", it.Path, it.Code)
		if it.Message != "" {
			line += ": " + it.Message
		}
		if it.Hint != "" {
			line += " (" + it.Hint + ")"
		}
		fmt.Fprintln(f.Writer, line)
	}
	return nil
}

// VerboseLog outputs a message only if verbose mode is enabled.
func (f *OutputFormatter) VerboseLog(format string, args ...any) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}

func newFormatter(opts *RootOptions, out, errOut io.Writer) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: out, ErrWriter: errOut, Verbose: opts.Verbose}
}

// fail reports err through f and converts it into an ExitError.
func fail(f *OutputFormatter, exitCode int, code, message string, err error) error {
	var details any
	if iss, ok := courier.AsIssues(err); ok {
		details = issueViews(iss)
	} else if err != nil {
		message = fmt.Sprintf("%s: %v", message, err)
	}
	_ = f.Error(code, message, details)
	return WrapExitError(exitCode, message, err)
}
