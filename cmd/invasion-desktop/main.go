// invasion-desktop plays Alien Invasion in a window, with sound.
//
// It is a separate binary from invasion because the window and audio
// backends need cgo on most platforms.
//
// Usage:
//
//	invasion-desktop [--cols 80] [--rows 24] [--mute] [--volume 0.5]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/alien-invasion/internal/audio"
	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
	"github.com/vovakirdan/alien-invasion/internal/games/invasion"
	"github.com/vovakirdan/alien-invasion/internal/platform/desktop"
	"github.com/vovakirdan/alien-invasion/internal/storage"
)

var (
	flagFPS        int
	flagCols       int
	flagRows       int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagPlayer     string
	flagMute       bool
	flagVolume     float64
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invasion-desktop",
	Short: "Alien Invasion in a window",
	Long: `Play Alien Invasion in a desktop window with sound effects.

Controls:
  Left/Right, A/D   - Move the ship
  Space             - Fire
  Enter or click    - Press Play
  P/Esc             - Pause
  Q                 - Quit

Scores are shared with the terminal version through the same database.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().IntVar(&flagCols, "cols", 80, "Playfield width in cells")
	rootCmd.Flags().IntVar(&flagRows, "rows", 24, "Playfield height in cells")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.invasion/scores.db", "Path to scores database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.Flags().StringVar(&flagPlayer, "player", config.GetEnv("USER", "player"), "Name recorded with your scores")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Sound volume from 0 to 1")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every ship lost")
}

func run(_ *cobra.Command, _ []string) error {
	gameCfg, err := config.Resolve(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "invasion",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	var sound *audio.Player
	if !flagMute {
		sound = audio.NewPlayer(flagVolume)
		if err := sound.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
			sound = nil
		} else {
			defer sound.Close()
		}
	}

	cfg := core.RuntimeConfig{
		ScreenW:  flagCols,
		ScreenH:  flagRows,
		TickRate: flagFPS,
	}
	return desktop.Run(invasion.New(gameCfg), cfg, desktop.Options{
		Store:  store,
		Logger: logger,
		Sound:  sound,
		Player: flagPlayer,
	})
}
