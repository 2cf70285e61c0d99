package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fxamacker/cbor/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	courier "github.com/reoring/courier"
)

// Output encodings for convert.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
	OutputCBOR = "cbor"
)

type convertOptions struct {
	input  string
	to     string
	output string
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(opts *RootOptions) *cobra.Command {
	co := &convertOptions{}
	cmd := &cobra.Command{
		Use:   "convert <type> <file|->",
		Short: "Coerce a payload and write its canonical wire form",
		Long: `Convert coerces a payload with the schema registered under <type> and dumps
the typed value again. Unknown keys are dropped, timestamps are normalized and
union variants are emitted in their declared shape.`,
		Example: `  courier convert Message message.yaml
  courier convert SendMessageRequest req.json --to cbor -o req.cbor`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, co, args, cmd)
		},
	}
	cmd.Flags().StringVar(&co.input, "input", "", "input format (json|jsonc|yaml|cbor); default from the file extension")
	cmd.Flags().StringVar(&co.to, "to", OutputJSON, "output encoding (json|yaml|cbor)")
	cmd.Flags().StringVarP(&co.output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func runConvert(opts *RootOptions, co *convertOptions, args []string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if co.to != OutputJSON && co.to != OutputYAML && co.to != OutputCBOR {
		return fail(f, ExitCommandError, ErrCodeGeneric, fmt.Sprintf("unknown output encoding %q", co.to), nil)
	}
	ad, err := lookupType(f, args[0])
	if err != nil {
		return err
	}
	raw, _, err := loadArg(opts, f, args[1], co.input, cmd)
	if err != nil {
		return err
	}

	out, err := ad.RoundTrip(context.Background(), raw)
	if err != nil {
		iss, ok := courier.AsIssues(err)
		if !ok {
			return fail(f, ExitCommandError, ErrCodeGeneric, "convert", err)
		}
		_ = f.Issues("payload does not match "+args[0], iss)
		return WrapExitError(ExitFailure, "payload does not match "+args[0], err)
	}

	b, err := Encode(out, co.to)
	if err != nil {
		return fail(f, ExitCommandError, ErrCodeEncode, "encode "+co.to, err)
	}
	if co.output != "" {
		if err := os.WriteFile(co.output, b, 0o644); err != nil {
			return fail(f, ExitCommandError, ErrCodeEncode, "write "+co.output, err)
		}
		f.VerboseLog("wrote %d bytes to %s", len(b), co.output)
		return f.Success("wrote "+co.output, map[string]any{"type": args[0], "output": co.output, "bytes": len(b)})
	}
	// JSON mode wraps the converted value regardless of --to.
	if opts.Format == "json" {
		return f.Success("", plain(out))
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}

// Encode renders a dumped wire value in the given encoding. JSON and YAML
// end with a newline; CBOR uses the deterministic core encoding.
func Encode(v any, to string) ([]byte, error) {
	switch to {
	case OutputJSON:
		b, err := courier.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case OutputYAML:
		return yaml.Marshal(plain(v))
	case OutputCBOR:
		em, err := cbor.CoreDetEncOptions().EncMode()
		if err != nil {
			return nil, err
		}
		return em.Marshal(plain(v))
	}
	return nil, fmt.Errorf("unknown output encoding %q", to)
}
