// snake is a terminal multiplayer snake game.
//
// Usage:
//
//	snake play               - Play locally (1-4 players on one keyboard)
//	snake serve              - Start SSH server for remote play
//	snake scores             - Show high scores
//	snake config             - Print the effective rules as YAML
//
// Global flags:
//
//	--fps <rate>         - Effects redraw rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.snake/scores.db)
//	--config <path>      - Load rules from a YAML file
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	// A missing .env is fine; flags and real env vars still apply.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Neon Snake - multiplayer snake in your terminal",
	Long: `Neon Snake is a grid snake game for up to four players sharing
one keyboard, playable locally or over SSH.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the effective rules

Environment:
  SNAKE_DB       - default for --db
  SNAKE_CONFIG   - default for --config
  (both may be set in a .env file in the working directory)

Examples:
  snake play
  snake play --players 2 --difficulty hard
  snake serve --ssh :2222
  snake scores --players 2`,
	PersistentPreRun: applyEnvDefaults,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Effects redraw rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnvDefaults lets SNAKE_DB and SNAKE_CONFIG replace flag defaults.
// Flags given on the command line always win.
func applyEnvDefaults(cmd *cobra.Command, _ []string) {
	if v := os.Getenv("SNAKE_DB"); v != "" && !cmd.Flags().Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv("SNAKE_CONFIG"); v != "" && !cmd.Flags().Changed("config") {
		flagConfig = v
	}
}

// newLogger builds the process logger. fallback is used when no --log-file
// is given; the returned closer releases the log file, if any.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
