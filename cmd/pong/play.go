package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/antonvlasov/tui-pong/internal/audio"
	"github.com/antonvlasov/tui-pong/internal/config"
	"github.com/antonvlasov/tui-pong/internal/core"
	"github.com/antonvlasov/tui-pong/internal/game"
	"github.com/antonvlasov/tui-pong/internal/platform/tui"
	"github.com/antonvlasov/tui-pong/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Skip the menu and start at: easy, medium, hard")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "pong"})

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var startAt config.Difficulty
	if flagDifficulty != "" {
		startAt, err = config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Valid difficulties: easy, medium, hard")
			os.Exit(1)
		}
	}

	// Get terminal size for the initial court
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Sound: a failed speaker init degrades to silence, it never blocks play
	var sounds audio.Player = audio.Muted{}
	if !flagMute {
		manager := audio.NewManager()
		if initErr := manager.Initialize(); initErr != nil {
			logger.Warn("audio unavailable, continuing muted", "error", initErr)
		} else {
			sounds = manager
			defer manager.Cleanup()
		}
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open sessions database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	g := game.New(gameCfg, sounds)
	runErr := tui.Run(g, store, rt, startAt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
