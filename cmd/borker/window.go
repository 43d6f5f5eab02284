package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/borker-run/internal/core"
	"github.com/vovakirdan/borker-run/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Borker Run in a desktop window.

Keyboard controls match 'borker play'. Mouse drags and touch swipes change
lane (sideways) or jump (upwards); a tap continues dialogue.

Examples:
  borker window
  borker window --width 1280 --height 720`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 960, "Window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 540, "Window height in pixels")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable music")
	windowCmd.Flags().Float64Var(&flagVolume, "volume", 0.5, "Music volume (0-1)")
}

func runWindow(_ *cobra.Command, _ []string) error {
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

	cfg := core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if err := window.Run(session.game, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
