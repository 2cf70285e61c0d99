package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	courier "github.com/reoring/courier"
	"github.com/reoring/courier/dsl"
	"github.com/reoring/courier/model"
)

// NewSchemaCommand creates the schema command.
func NewSchemaCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema <type>",
		Short: "Print the JSON Schema of a payload type",
		Example: `  courier schema SendMessageRequest
  courier schema Expiry --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchema(opts, args[0], cmd)
		},
	}
}

func runSchema(opts *RootOptions, name string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	ad, err := lookupType(f, name)
	if err != nil {
		return err
	}
	js, err := ad.JSONSchema()
	if err != nil {
		return fail(f, ExitCommandError, ErrCodeGeneric, "build schema", err)
	}
	b, err := courier.MarshalIndent(js, "", "  ")
	if err != nil {
		return fail(f, ExitCommandError, ErrCodeEncode, "encode schema", err)
	}
	return f.Success(string(b), js)
}

// lookupType resolves a registry name or reports E002.
func lookupType(f *OutputFormatter, name string) (dsl.AnyAdapter, error) {
	ad, ok := model.Lookup(name)
	if !ok {
		msg := fmt.Sprintf("unknown type %q (see 'courier types')", name)
		_ = f.Error(ErrCodeUnknownType, msg, nil)
		return ad, NewExitError(ExitCommandError, msg)
	}
	return ad, nil
}
