package config

import (
	"math"
	"time"
)

// DifficultyManager ramps obstacle parameters with elapsed run time.
// The spawn gap ceiling shrinks towards its floor and the boulder probability
// grows towards its cap.
type DifficultyManager struct {
	cfg     ObstacleConfig
	maxGap  float64
	boulder float64
}

// NewDifficultyManager creates a new difficulty manager at the starting values.
func NewDifficultyManager(cfg ObstacleConfig) *DifficultyManager {
	d := &DifficultyManager{cfg: cfg}
	d.Reset()
	return d
}

// Reset restores the starting values.
func (d *DifficultyManager) Reset() {
	d.maxGap = d.cfg.MaxGap
	d.boulder = d.cfg.BoulderRate
}

// IsEnabled returns whether any ramp is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.GapShrinkPerSec != 0 || d.cfg.BoulderRateGrowth != 0
}

// Advance moves both ramps forward by delta.
func (d *DifficultyManager) Advance(delta time.Duration) {
	secs := delta.Seconds()
	d.boulder = math.Min(d.cfg.BoulderRateMax, d.boulder+d.cfg.BoulderRateGrowth*secs)
	d.maxGap = math.Max(d.cfg.MaxGapFloor, d.maxGap-d.cfg.GapShrinkPerSec*secs)
}

// MaxGap returns the current largest distance between two obstacles.
func (d *DifficultyManager) MaxGap() float64 {
	return d.maxGap
}

// MinGap returns the smallest distance between two obstacles.
func (d *DifficultyManager) MinGap() float64 {
	return d.cfg.MinGap
}

// BoulderRate returns the probability that a spawn is a boulder.
func (d *DifficultyManager) BoulderRate() float64 {
	return d.boulder
}

// Level returns how far the ramps have progressed, from 0 to 1.
func (d *DifficultyManager) Level() float64 {
	span := d.cfg.MaxGap - d.cfg.MaxGapFloor
	if span <= 0 {
		return 0
	}
	return clampF((d.cfg.MaxGap-d.maxGap)/span, 0, 1)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
