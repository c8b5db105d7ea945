package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osa911/lifecycle/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "LifeCycle version: %s\n", version.Info())
	},
}
