package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/borker-run/internal/core"
	"github.com/vovakirdan/borker-run/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Borker Run in the terminal.

Controls:
  A/Left, D/Right  - Change lane
  Space/W/Up       - Jump
  Enter            - Continue dialogue, select menu entry
  Mouse drag       - Swipe to change lane or jump, click to continue
  P/Esc            - Pause
  R                - Restart (after the game is won)
  Ctrl+S           - Screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Shorter run and battle, fewer boulders
  normal - The default tuning
  hard   - Longer run and battle, more boulders, faster boss
  fixed  - No difficulty ramp during the run

Examples:
  borker play
  borker play --difficulty easy
  borker play --mute
  borker play --config ./my-borker.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Music volume (0-1)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger("borker")
	if err != nil {
		return err
	}
	defer closer.Close()

	session, err := openLocalSession(logger)
	if err != nil {
		return err
	}
	defer session.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting", "frontend", "terminal", "width", width, "height", height)
	if err := tui.Run(session.game, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
