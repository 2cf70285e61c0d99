package cli

import (
	"github.com/spf13/cobra"

	courier "github.com/reoring/courier"
)

// NewDupesCommand creates the dupes command.
func NewDupesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dupes <file|->",
		Short: "List repeated object keys in a JSON document",
		Long: `Dupes scans a JSON document and reports every object key that appears more
than once, with its JSON Pointer. The exit code is 1 when any are found.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDupes(opts, args[0], cmd)
		},
	}
}

func runDupes(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	data, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return fail(f, ExitCommandError, ErrCodeLoad, "load "+path, err)
	}
	iss, err := courier.DuplicateKeys(data)
	if err != nil {
		if perr, ok := courier.AsIssues(err); ok {
			_ = f.Issues("malformed input "+path, perr)
			return WrapExitError(ExitFailure, "malformed input "+path, err)
		}
		return fail(f, ExitCommandError, ErrCodeLoad, "load "+path, err)
	}
	if len(iss) == 0 {
		return f.Success("no duplicate keys", []IssueView{})
	}
	_ = f.Issues("duplicate keys in "+path, iss)
	return NewExitError(ExitFailure, "duplicate keys in "+path)
}
