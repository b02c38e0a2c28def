package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌┐┌┌─┐┌┬┐┬┌─┐┬ ┬
  ││││ │ │ │├┤ └┬┘
  ┘└┘└─┘ ┴ ┴└   ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "notify-demo",
		Short: "Demo for the notify notification library",
		Long: `notify-demo exercises the notify library from the terminal.

It feeds synthetic leveled messages through a notification region and
prints the stacked banners as they appear, fade, and expire. Optionally
it serves Prometheus metrics describing the queue.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		runCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}
