package cmd

import (
	stderrors "errors"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/vanitygit/vanitygit/display"
	"github.com/vanitygit/vanitygit/errors"
	"github.com/vanitygit/vanitygit/hash"
	"github.com/vanitygit/vanitygit/repository"
	"github.com/vanitygit/vanitygit/search"
)

var (
	findPrefix  string
	findMinutes int
	findDigits  int
)

var findCmd = &cobra.Command{
	Use:   "find [revision]",
	Short: "Search for a vanity hash for a commit",
	Long: `Search for author/committer dates within the time budget that give the
commit a hash starting with the requested prefix. Without --prefix, the
next prefix is proposed from the parent commit's hash. On success the
matching git amend command is printed on stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		repo, err := repository.Open(workDir)
		if err != nil {
			return err
		}

		rev := "HEAD"
		if len(args) == 1 {
			rev = args[0]
		}

		prefix := findPrefix
		if prefix == "" {
			prefix = repo.ProposedPrefix(rev+"^", findDigits)
			display.Info("no prefix given, proposing %s", display.Hash(prefix))
		}

		raw, err := repo.RawCommit(rev)
		if err != nil {
			return err
		}

		display.Info("searching for a hash starting with %s (1:%.0f) in %d candidates (probability %.2f%%)",
			display.Hash(prefix),
			math.Pow(16, float64(len(prefix))),
			search.Possibilities(findMinutes),
			100*search.Probability(prefix, findMinutes))

		progress := display.NewProgressLine(nil)
		result, err := search.Run(cmd.Context(), raw, search.Options{
			Prefix:     prefix,
			MaxMinutes: findMinutes,
			Progress:   progress.Update,
		})
		progress.Done()
		if err != nil {
			if stderrors.Is(err, errors.ErrSearchExhausted) {
				display.Fail("no match within %d minutes; retry with a larger budget or a shorter prefix", findMinutes)
			}
			return err
		}

		if result.AlreadyMatches {
			display.Success("commit %s already starts with %s, nothing to do",
				display.Hash(hash.ShortHash(result.Hash, 12)), display.Hash(prefix))
			return nil
		}

		display.Success("found %s after %d candidates", display.Hash(result.Hash), result.Examined)
		fmt.Println(repository.AmendCommand(result.CommitterDate, result.AuthorDate))

		return nil
	},
}

func init() {
	findCmd.Flags().StringVarP(&findPrefix, "prefix", "p", "", "hex prefix to search for")
	findCmd.Flags().IntVarP(&findMinutes, "max", "M", 300, "maximum number of minutes to add to the commit dates")
	findCmd.Flags().IntVar(&findDigits, "digits", 4, "digits used when proposing a prefix")

	rootCmd.AddCommand(findCmd)
}
