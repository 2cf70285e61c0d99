// Command courier inspects, checks and converts Courier API payloads.
package main

import (
	"fmt"
	"os"

	"github.com/reoring/courier/internal/cli"
	"github.com/reoring/courier/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.ExitCommandError)
	}
	os.Exit(cli.Execute(cfg, os.Args[1:]))
}
