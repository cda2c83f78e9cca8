package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vanitygit/vanitygit/internal/ui"
	"github.com/vanitygit/vanitygit/repository"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive vanity hash search",
	Long:  "Run the search behind a full-screen form with live progress.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		repo, err := repository.Open(workDir)
		if err != nil {
			return err
		}

		return ui.NewApp(repo).Run()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
