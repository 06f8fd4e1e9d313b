package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the salina-hive entry point. Every subcommand loads its
// configuration from environment variables; see internal/config.
var rootCmd = &cobra.Command{
	Use:           "salina-hive",
	Short:         "Crowdfunding ledger service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a process exit code out of a subcommand.
type exitError struct {
	code int
}

func (e exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		var ee exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
