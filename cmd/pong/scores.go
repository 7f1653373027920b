package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/antonvlasov/tui-pong/internal/config"
	"github.com/antonvlasov/tui-pong/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show past sessions",
	Long: `Display recent play sessions and the best score per difficulty.

Examples:
  pong scores
  pong scores --limit 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of sessions to show")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening sessions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	sessions, err := store.RecentSessions(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'pong' to play the first one!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-9s  %s\n", "Rank", "Difficulty", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %-9s  %s\n", "----", "----------", "-----", "----")

	for i, entry := range sessions {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		score := fmt.Sprintf("%d : %d", entry.PlayerScore, entry.CPUScore)
		fmt.Printf("  %-4d  %-10s  %-9s  %s\n", i+1, config.Difficulty(entry.Difficulty).Title(), score, dateStr)
	}

	fmt.Println()
	for _, d := range config.Difficulties() {
		best, err := store.HighScore(string(d))
		if err != nil || best == 0 {
			continue
		}
		fmt.Printf("Best on %s: %d\n", d.Title(), best)
	}
}
