// bouncer is a terminal bouncing-ball game: four pads guard the edges of
// the screen and follow the mouse while balls ricochet around the field.
//
// Usage:
//
//	bouncer list              - List available variants
//	bouncer play [variant]    - Play a variant (default: bouncer)
//	bouncer menu              - Pick a variant interactively
//	bouncer serve             - Start SSH server for remote play
//	bouncer scores [variant]  - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.bouncer/scores.db)
//	--log-file <path>  - Write logs to a file
//	--debug            - Log every frame at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bouncer/internal/games/bouncer"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bouncer",
	Short: "Bouncer - keep the balls in play with four pads",
	Long: `Bouncer is a terminal game where four pads guard the edges of the
screen. Move the mouse to steer the pads and keep the balls bouncing.

Available commands:
  list     - Show all available variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  bouncer play
  bouncer play bouncer_survival --difficulty hard
  bouncer menu
  bouncer serve --ssh :2222
  bouncer scores bouncer`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bouncer/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (disabled when empty)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// newLogger builds the logger shared by the game and the TUI. The alt
// screen owns the terminal, so logs go to --log-file or nowhere.
func newLogger() (*log.Logger, func(), error) {
	var out io.Writer = io.Discard
	cleanup := func() {}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		cleanup = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "bouncer",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	bouncer.SetLogger(logger)
	return logger, cleanup, nil
}
