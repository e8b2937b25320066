package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

const rule = "───────────────────────────────────────────────────────────────"

var rootCmd = &cobra.Command{
	Use:   "nirman",
	Short: "IS 456 member design and building estimates",
	Long: `nirman - RC member design and bill of quantities

Designs reinforced concrete beams and columns to IS 456:2000 and prices
a building's bill of quantities with GST.

Use 'nirman <command> --help' for the flags of each command.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func header(out io.Writer, title string) {
	bar := strings.Repeat("═", 63)
	fmt.Fprintln(out)
	fmt.Fprintln(out, bar)
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, bar)
	fmt.Fprintln(out)
}

// section prints a titled block; fill writes tab-separated rows.
func section(out io.Writer, title string, fill func(w io.Writer)) {
	fmt.Fprintf(out, "%s:\n", title)
	fmt.Fprintln(out, rule)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fill(w)
	w.Flush()
	fmt.Fprintln(out)
}

func notes(out io.Writer, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(out, "NOTES:")
	fmt.Fprintln(out, rule)
	for _, n := range lines {
		fmt.Fprintf(out, "  • %s\n", n)
	}
	fmt.Fprintln(out)
}
