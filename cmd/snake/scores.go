package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-snake/internal/platform/tui"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

var (
	flagScoresPlayers int
	flagPlain         bool
	flagClear         bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 scores and the best one.

Scores are kept per player count. Without --players, an interactive
scoreboard opens when stdout is a terminal; otherwise every mode is listed.
--clear deletes the selected mode's history (every mode without --players).

Examples:
  snake scores
  snake scores --players 2
  snake scores --plain
  snake scores --clear --players 3`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresPlayers, "players", "n", storage.AllModes, "Player count 1-4 (0 = all modes)")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete stored scores for --players (all modes if unset)")
}

func runScores(cmd *cobra.Command, _ []string) {
	if flagScoresPlayers < 0 || flagScoresPlayers > 4 {
		fmt.Fprintf(os.Stderr, "Error: --players must be between 1 and 4, got %d\n", flagScoresPlayers)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := clearScores(os.Stdout, store, flagScoresPlayers); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	interactive := !flagPlain && !cmd.Flags().Changed("players") && term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if _, err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(os.Stdout, store, flagScoresPlayers); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func modeTitle(players int) string {
	switch players {
	case storage.AllModes:
		return "All modes"
	case 1:
		return "Solo"
	default:
		return fmt.Sprintf("%d Players", players)
	}
}

func printScores(w io.Writer, store *storage.Store, players int) error {
	scores, err := store.TopScores(players, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", modeTitle(players))
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'snake play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-8s  %-7s  %-7s  %s\n", "Rank", "Score", "Players", "Level", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-7s  %-7s  %s\n", "----", "-----", "-------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(w, "  %-4d  %-8d  %-7d  %-7s  %s\n", i+1, entry.Score, entry.Players, entry.Preset, dateStr)
	}

	fmt.Fprintln(w)
	if best, err := store.HighScore(players); err == nil {
		fmt.Fprintf(w, "Best: %d\n", best)
	}

	if players != storage.AllModes {
		return nil
	}
	stats, err := store.ModeStats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-10s  %-6s  %-6s  %-8s  %s\n", "Mode", "Games", "Best", "Average", "Last played")
	for _, st := range stats {
		fmt.Fprintf(w, "  %-10s  %-6d  %-6d  %-8.1f  %s\n",
			modeTitle(st.Players), st.GamesCount, st.HighScore, st.AvgScore,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func clearScores(w io.Writer, store *storage.Store, players int) error {
	n, err := store.ClearScores(players)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Cleared %d scores (%s)\n", n, modeTitle(players))
	return nil
}
