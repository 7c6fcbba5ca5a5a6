// Package commands wires the projector CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/helalifaker/Project-2052-sub001/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "projector",
		Short:   "Long-horizon financial statement projection",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newSensitivityCommand())

	return rootCmd
}
