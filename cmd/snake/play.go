package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/platform/tui"
	"github.com/vovakirdan/neon-snake/internal/storage"
)

var (
	flagPlayers    int
	flagDifficulty string
	flagBell       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Start a local game. Up to four players share the keyboard.

Controls:
  Player 1   - Arrow keys
  Player 2   - W/A/S/D
  Player 3   - I/J/K/L
  Player 4   - 8/4/5/6
  Enter      - Start / restart
  H          - How to play
  P          - Pause
  Tab        - High scores (from the menu)
  Esc        - Back to menu
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower start and a longer grace delay
  normal - Rules as loaded from config
  hard   - Faster start, faster ramp, more obstacles
  fixed  - No progression: constant speed, no moving food, no obstacles

Examples:
  snake play
  snake play --players 3
  snake play --difficulty fixed
  snake play --config ./my-snake.yaml --bell`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVarP(&flagPlayers, "players", "n", 0, "Number of players 1-4 (0 = from config)")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell when food is eaten and on game over")
}

// loadRules loads the rules file and applies the difficulty preset.
func loadRules() (config.SnakeConfig, error) {
	rules, err := config.Load(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, err
	}
	if flagDifficulty != "" {
		preset, presetErr := config.ParsePreset(flagDifficulty)
		if presetErr != nil {
			return config.SnakeConfig{}, presetErr
		}
		config.ApplyPreset(&rules, preset)
	}
	if err := rules.Validate(); err != nil {
		return config.SnakeConfig{}, err
	}
	return rules, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagPlayers < 0 || flagPlayers > 4 {
		fmt.Fprintf(os.Stderr, "Error: --players must be between 1 and 4, got %d\n", flagPlayers)
		os.Exit(1)
	}

	rules, err := loadRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns the terminal, so logs go nowhere unless --log-file is set.
	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		FrameHz:  flagFPS,
		Seed:     flagSeed,
		Players:  flagPlayers,
		BellCues: flagBell,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Rules:   rules,
		Runtime: rt,
		Store:   store,
		Logger:  logger,
		BellOut: os.Stdout,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
