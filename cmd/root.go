package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vanitygit/vanitygit/display"
)

var rootCmd = &cobra.Command{
	Use:   "vanitygit",
	Short: "Find vanity prefixes for git commit hashes",
	Long: `vanitygit searches for an alternative encoding of an existing commit
whose hash starts with a chosen hex prefix, by nudging the author and
committer dates within a bounded time window and rehashing.`,
	Version: "1.0.0",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", display.Red("Error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
