// Wikied is a terminal client for revision-tracked wiki servers.
//
// It opens an article in a read view, flips into an in-place editor, and
// saves through the server's optimistic-concurrency protocol: every save
// carries the revision it was based on, and the server decides whether it
// applies cleanly or conflicts.
//
// Usage:
//
//	wikied [slug] [flags]
//
// Running without a slug opens the last article edited on the selected
// server, or the front page. See 'wikied --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wikied/wikied/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wikied [slug]",
	Short: "Terminal editor for wiki articles",
	Long: `A terminal client for revision-tracked wiki servers.

Opens an article in a read view and edits it in place. Saves go through
the server's revision protocol, so concurrent edits are detected instead
of silently overwritten.

If no slug is given, the last article edited on the selected server is
opened, falling back to the front page.`,
	Version: version.Version,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runEdit,
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wikied %s\n", version.Full())
	},
}
