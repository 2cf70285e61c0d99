package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/reoring/courier/model"
)

// NewTypesCommand creates the types command.
func NewTypesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "types",
		Short:         "List the registered payload types",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
			names := model.Names()
			return f.Success(strings.Join(names, "\n"), names)
		},
	}
}
