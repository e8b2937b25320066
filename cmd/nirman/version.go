package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of nirman",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "nirman %s\n", version)
		fmt.Fprintln(cmd.OutOrStdout(), "RC design to IS 456:2000 and BOQ estimation")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
