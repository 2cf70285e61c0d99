// Package cli implements the courier command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	courier "github.com/reoring/courier"
	"github.com/reoring/courier/i18n"
	"github.com/reoring/courier/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose       bool
	Format        string // "json" | "text"
	LogFormat     string // "json" | "text"
	LogLevel      string
	Lang          string
	DuplicateKeys string // "ignore" | "warn" | "error"
	MaxDepth      int
	MaxBytes      int64
	JSONDriver    string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// DecodeOpt returns the decode limits selected by the flags.
func (o *RootOptions) DecodeOpt() courier.DecodeOpt {
	sev, _ := config.ParseSeverity(o.DuplicateKeys)
	return courier.DecodeOpt{
		Strictness: courier.Strictness{OnDuplicateKey: sev},
		MaxDepth:   o.MaxDepth,
		MaxBytes:   o.MaxBytes,
	}
}

// NewRootCommand creates the root command. cfg supplies flag defaults.
func NewRootCommand(cfg config.Config) *cobra.Command {
	opts := &RootOptions{LogLevel: cfg.LogLevel, MaxBytes: cfg.MaxBytes}

	cmd := &cobra.Command{
		Use:   "courier",
		Short: "courier - typed Courier API payloads",
		Long:  "Inspect, check and convert Courier API payloads against the typed schemas of the client library.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.apply(cmd.ErrOrStderr())
		},
		SilenceUsage: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", cfg.Format, "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", cfg.LogFormat, "log format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", cfg.Lang, "issue message language (en|ja)")
	cmd.PersistentFlags().StringVar(&opts.DuplicateKeys, "duplicate-keys", cfg.DuplicateKeys, "duplicate JSON key policy (ignore|warn|error)")
	cmd.PersistentFlags().IntVar(&opts.MaxDepth, "max-depth", cfg.MaxDepth, "maximum JSON nesting depth (0 disables)")
	cmd.PersistentFlags().StringVar(&opts.JSONDriver, "json-driver", cfg.JSONDriver, "JSON implementation (go-json|encoding/json)")

	// Add subcommands
	cmd.AddCommand(NewTypesCommand(opts))
	cmd.AddCommand(NewSchemaCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewDupesCommand(opts))

	return cmd
}

// apply validates the global flags and installs process-wide settings.
func (o *RootOptions) apply(logOut io.Writer) error {
	if !slices.Contains(ValidFormats, o.Format) {
		return fmt.Errorf("invalid format %q: must be one of %v", o.Format, ValidFormats)
	}
	if !slices.Contains(ValidFormats, o.LogFormat) {
		return fmt.Errorf("invalid log format %q: must be one of %v", o.LogFormat, ValidFormats)
	}
	if !slices.Contains(i18n.Languages(), o.Lang) {
		return fmt.Errorf("invalid lang %q: must be one of %v", o.Lang, i18n.Languages())
	}
	if _, err := config.ParseSeverity(o.DuplicateKeys); err != nil {
		return fmt.Errorf("invalid duplicate-keys: %w", err)
	}
	if o.MaxDepth < 0 {
		return errors.New("max-depth must not be negative")
	}
	driver, err := courier.ParseJSONDriver(o.JSONDriver)
	if err != nil {
		return err
	}

	courier.SetJSONDriver(driver)
	i18n.SetLanguage(o.Lang)
	courier.SetLogger(NewLogger(logOut, o.LogFormat, o.LogLevel, o.Verbose))
	return nil
}

// Execute runs the command tree and returns the process exit code.
func Execute(cfg config.Config, args []string) int {
	cmd := NewRootCommand(cfg)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return ExitCommandError
}
