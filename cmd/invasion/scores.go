package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/platform/tui"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

var (
	flagClear bool
	flagLimit int
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the best recorded games.

In a terminal the table is interactive; when output is piped, or with
--plain, the top scores are printed as text.

Examples:
  invasion scores
  invasion scores --plain --limit 5
  invasion scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to print in plain mode")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print text instead of the interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(invasion.GameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, invasion.GameID, "Alien Invasion", width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) error {
	scores, err := store.TopScores(invasion.GameID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Alien Invasion")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invasion play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %10s  %5s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-16s  %10s  %5s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-16s  %10s  %5d  %s\n",
			i+1, entry.Player, humanize.Comma(int64(entry.Score)), entry.Level,
			entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(invasion.GameID); err == nil {
		fmt.Println()
		fmt.Printf("Games: %s  Best: %s  Average: %s\n",
			humanize.Comma(int64(stats.GamesCount)),
			humanize.Comma(int64(stats.HighScore)),
			humanize.Comma(int64(stats.AvgScore)))
	}
	if best, err := store.PlayerBest(invasion.GameID, flagPlayer); err == nil && best != nil {
		fmt.Printf("Your best (%s): %s, level %d\n", flagPlayer, humanize.Comma(int64(best.Score)), best.Level)
	}
	return nil
}
