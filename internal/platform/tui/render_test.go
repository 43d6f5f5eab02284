package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/borker-run/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.Fill(' ')
	s.SetColored(0, 0, 'a', core.ColorRed)
	s.SetColored(1, 0, 'b', core.ColorRed)
	s.SetColored(0, 1, 'c', core.ColorSand)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() has %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") {
		t.Errorf("row 0 = %q, expected a run containing \"ab\"", lines[0])
	}
	if !strings.Contains(lines[1], "c") {
		t.Errorf("row 1 = %q, expected to contain \"c\"", lines[1])
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorSand; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("colorStyles missing color %d", c)
		}
	}
}

func TestFrameDelta(t *testing.T) {
	base := time.Unix(100, 0)
	nominal := time.Second / 30

	tests := []struct {
		name     string
		last     time.Time
		now      time.Time
		expected time.Duration
	}{
		{"first tick", time.Time{}, base, nominal},
		{"normal", base, base.Add(20 * time.Millisecond), 20 * time.Millisecond},
		{"stall capped", base, base.Add(2 * time.Second), maxFrameDelta},
		{"clock went back", base, base.Add(-time.Second), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := frameDelta(tt.last, tt.now, nominal); got != tt.expected {
				t.Errorf("frameDelta() = %v, expected %v", got, tt.expected)
			}
		})
	}
}
