package main

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/borker-run/internal/audio"
	"github.com/vovakirdan/borker-run/internal/games/borker"
	"github.com/vovakirdan/borker-run/internal/progress"
	"github.com/vovakirdan/borker-run/internal/storage"
)

const appName = "borker"

var (
	flagMute   bool
	flagVolume float64
)

// localSession owns the resources of a single-player game.
type localSession struct {
	game    *borker.Game
	store   *storage.Store
	speaker *audio.Speaker
}

// openLocalSession wires storage, progress and audio into a game. Missing
// devices and unreadable files degrade to in-memory or silent variants.
func openLocalSession(logger *log.Logger) (*localSession, error) {
	opts, err := gameOptions(logger)
	if err != nil {
		return nil, err
	}
	s := &localSession{}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open runs database", "err", err)
	} else {
		s.store = store
		opts.Runs = store
	}

	if gd, err := progress.OpenGdata(appName); err != nil {
		logger.Warn("could not open progress data, progress will not persist", "err", err)
		opts.Progress = progress.NewMemory(progress.Progress{})
	} else {
		opts.Progress = gd
	}

	opts.Audio = audio.Nop{}
	if !flagMute {
		sp, err := audio.NewSpeaker(flagVolume, logger)
		if err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			s.speaker = sp
			opts.Audio = sp
		}
	}

	s.game = borker.New(opts)
	return s, nil
}

func (s *localSession) Close() {
	if s.speaker != nil {
		s.speaker.Close()
	}
	if s.store != nil {
		s.store.Close()
	}
}
