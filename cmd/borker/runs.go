package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/borker-run/internal/platform/tui"
	"github.com/vovakirdan/borker-run/internal/storage"
)

var (
	flagProfile string
	flagPlain   bool
	flagClear   bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show recorded runs",
	Long: `Display the runs recorded when the SandWitch was defeated.

Local games are recorded under the "local" profile; SSH sessions use the
SSH user name.

Examples:
  borker runs
  borker runs --profile alice
  borker runs --plain
  borker runs --clear --profile alice`,
	Args: cobra.NoArgs,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagProfile, "profile", storage.DefaultProfile, "Profile (SSH user name or local)")
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the interactive view")
	runsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run of the profile")
}

func runRuns(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening runs database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(flagProfile); err != nil {
			return err
		}
		fmt.Printf("Runs of %s cleared.\n", flagProfile)
		return nil
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunRuns(store, flagProfile, width, height)
	}

	runs, err := store.RecentRuns(flagProfile, 10)
	if err != nil {
		return fmt.Errorf("error retrieving runs: %w", err)
	}

	fmt.Printf("Runs - %s\n", flagProfile)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'borker play' and beat the SandWitch to record one!")
		return nil
	}

	fmt.Printf("  %-16s  %-6s  %-6s  %-8s  %s\n", "Date", "Result", "Deaths", "Distance", "Time")
	fmt.Printf("  %-16s  %-6s  %-6s  %-8s  %s\n", "----", "------", "------", "--------", "----")
	for _, r := range runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		fmt.Printf("  %-16s  %-6s  %-6d  %-8d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), result, r.Deaths, r.Distance, r.Duration.Round(time.Second))
	}

	if best, err := store.BestRun(flagProfile); err == nil && best != nil {
		fmt.Println()
		fmt.Printf("Best: %d deaths in %s\n", best.Deaths, best.Duration.Round(time.Second))
	}
	return nil
}
