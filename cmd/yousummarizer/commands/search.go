package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	searchLimit int
	searchPick  int
)

// searchCmd searches for videos and optionally summarizes one.
var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search YouTube videos",
	Long: `Search YouTube for videos matching the query. With --pick N the N-th
result is summarized straight away using the summarize defaults.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0,
		"Maximum number of results (default youtube.max_results)")
	searchCmd.Flags().IntVarP(&searchPick, "pick", "p", 0,
		"Summarize the N-th result (1-based)")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	query := strings.Join(args, " ")

	a, err := loadApp(ctx)
	if err != nil {
		return err
	}

	videos, err := a.videos.Search(ctx, query, searchLimit)
	if err != nil {
		return err
	}
	if len(videos) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	if searchPick > 0 {
		if searchPick > len(videos) {
			return fmt.Errorf("--pick %d out of range: %d results", searchPick, len(videos))
		}
		v := videos[searchPick-1]
		fmt.Printf("Summarizing %q\n\n", v.Title)
		return summarizeReference(ctx, v.URL)
	}

	for i, v := range videos {
		fmt.Printf("%d. %s\n   %s\n   %s\n", i+1, v.Title, v.Channel, v.URL)
	}
	return nil
}
