package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/borker-run/internal/progress"
	"github.com/vovakirdan/borker-run/internal/storage"
)

var flagProgressProfile string

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show or reset saved progress",
	Long: `Saved progress records whether the intro was shown and whether the
runner checkpoint was reached. Local progress lives in the user data
directory; --profile selects an SSH user's progress in the database.

Examples:
  borker progress show
  borker progress reset
  borker progress reset --profile alice
  borker progress profiles`,
}

var progressShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print saved progress",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withProgress(func(st progress.Store) error {
			p, err := st.Load()
			if err != nil {
				return err
			}
			fmt.Printf("Intro shown:        %v\n", p.IntroShown)
			fmt.Printf("Checkpoint reached: %v\n", p.CheckpointReached)
			return nil
		})
	},
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the intro and the checkpoint",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return withProgress(func(st progress.Store) error {
			if err := st.Clear(); err != nil {
				return err
			}
			fmt.Println("Progress reset.")
			return nil
		})
	},
}

var progressProfilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List profiles with progress in the database",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return fmt.Errorf("error opening database: %w", err)
		}
		defer store.Close()

		profiles, err := store.Profiles()
		if err != nil {
			return err
		}
		if len(profiles) == 0 {
			fmt.Println("No profiles stored yet.")
			return nil
		}
		for _, p := range profiles {
			fmt.Println(p)
		}
		return nil
	},
}

func init() {
	progressCmd.PersistentFlags().StringVar(&flagProgressProfile, "profile", "", "SSH user profile in the database (default: local data directory)")
	progressCmd.AddCommand(progressShowCmd)
	progressCmd.AddCommand(progressResetCmd)
	progressCmd.AddCommand(progressProfilesCmd)
}

// withProgress opens the selected progress store for fn.
func withProgress(fn func(progress.Store) error) error {
	if flagProgressProfile == "" {
		gd, err := progress.OpenGdata(appName)
		if err != nil {
			return err
		}
		return fn(gd)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening database: %w", err)
	}
	defer store.Close()
	return fn(store.Progress(flagProgressProfile))
}
