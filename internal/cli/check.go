package cli

import (
	"context"

	"github.com/spf13/cobra"

	courier "github.com/reoring/courier"
)

type checkOptions struct {
	input string
}

// NewCheckCommand creates the check command.
func NewCheckCommand(opts *RootOptions) *cobra.Command {
	co := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check <type> <file|->",
		Short: "Coerce a payload and report every issue",
		Long: `Check reads a JSON, JSONC or YAML payload and coerces it with the schema
registered under <type>. The exit code is 1 when the payload does not fit.`,
		Example: `  courier check SendMessageRequest message.json
  cat token.yaml | courier check IssueTokenRequest - --input yaml`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(opts, co, args, cmd)
		},
	}
	cmd.Flags().StringVar(&co.input, "input", "", "input format (json|jsonc|yaml|cbor); default from the file extension")
	return cmd
}

func runCheck(opts *RootOptions, co *checkOptions, args []string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	ad, err := lookupType(f, args[0])
	if err != nil {
		return err
	}
	raw, warnings, err := loadArg(opts, f, args[1], co.input, cmd)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		f.VerboseLog("warning: %s: %s", w.Path, w.Code)
	}

	ctx := courier.WithFailFast(context.Background(), false)
	if _, err := ad.Coerce(ctx, raw); err != nil {
		iss, ok := courier.AsIssues(err)
		if !ok {
			return fail(f, ExitCommandError, ErrCodeGeneric, "check", err)
		}
		courier.Logger().Debug("check failed", "type", ad.TypeName(), "issues", len(iss))
		_ = f.Issues("payload does not match "+args[0], iss)
		return WrapExitError(ExitFailure, "payload does not match "+args[0], err)
	}
	return f.Success("ok", map[string]any{"type": args[0], "warnings": issueViews(warnings)})
}

// loadArg reads and decodes the payload named by path. Unreadable files
// exit 2 with E003; malformed payloads exit 1 like coercion failures.
func loadArg(opts *RootOptions, f *OutputFormatter, path, explicit string, cmd *cobra.Command) (any, courier.Issues, error) {
	format, err := inputFormat(path, explicit)
	if err != nil {
		return nil, nil, fail(f, ExitCommandError, ErrCodeLoad, "load "+path, err)
	}
	data, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return nil, nil, fail(f, ExitCommandError, ErrCodeLoad, "load "+path, err)
	}
	var warnings courier.Issues
	opt := opts.DecodeOpt()
	opt.OnWarn = func(it courier.Issue) { warnings = append(warnings, it) }
	raw, err := LoadPayload(data, format, opt)
	if iss, ok := courier.AsIssues(err); ok {
		_ = f.Issues("malformed input "+path, iss)
		return nil, nil, WrapExitError(ExitFailure, "malformed input "+path, err)
	}
	if err != nil {
		return nil, nil, fail(f, ExitCommandError, ErrCodeLoad, "load "+path, err)
	}
	return raw, warnings, nil
}
