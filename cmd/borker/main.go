// borker is the Borker Run endless runner and boss fight.
//
// Usage:
//
//	borker play              - Play in the terminal
//	borker window            - Play in a desktop window
//	borker serve             - Start SSH server for remote play
//	borker runs              - Show recorded runs
//	borker progress show     - Show saved progress
//	borker progress reset    - Forget the intro and the checkpoint
//	borker list              - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.borker/borker.db)
//	--config <path>       - Custom borker.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination (default: ~/.borker/borker.log)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/borker-run/internal/config"
	"github.com/vovakirdan/borker-run/internal/games/borker"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "borker",
	Short: "Borker Run - help Mr Borker outrun the SandWitch",
	Long: `Borker Run is an endless runner with a boss fight at the end.
Dodge cacti and boulders across three lanes until the progress bar fills,
then survive the SandWitch's attacks until her timer runs out.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  runs      - View recorded runs
  progress  - Show or reset saved progress
  list      - Show registered games

Examples:
  borker play
  borker play --difficulty easy
  borker window --seed 42
  borker serve --ssh :2222
  borker progress reset`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.borker/borker.db", "Path to runs database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom borker.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file (default ~/.borker/borker.log, - for stderr)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(progressCmd)
}

// preset validates --difficulty.
func preset() (config.DifficultyPreset, error) {
	if flagDifficulty == "" {
		return "", nil
	}
	p := config.ParsePreset(flagDifficulty)
	if p == "" {
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}
	return p, nil
}

// newLogger opens the log destination. The terminal front end owns the
// screen, so logs go to a file unless "-" is given.
func newLogger(prefix string) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var (
		w      io.Writer = os.Stderr
		closer io.Closer = io.NopCloser(nil)
	)
	if flagLogFile != "-" {
		path := flagLogFile
		if path == "" {
			path = filepath.Join(config.UserDir(), "borker.log")
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          prefix,
	})
	return logger, closer, nil
}

// gameOptions builds the options shared by the local front ends.
func gameOptions(logger *log.Logger) (borker.Options, error) {
	p, err := preset()
	if err != nil {
		return borker.Options{}, err
	}
	return borker.Options{
		ConfigPath: flagConfig,
		Preset:     p,
		Logger:     logger,
	}, nil
}
