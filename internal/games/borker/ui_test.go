package borker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/borker-run/internal/flow"
)

func TestConverseWaitsForEachLine(t *testing.T) {
	h := newHUD()
	var r flow.Runner
	var src flow.Source
	c := r.Go(src.Token(), Converse(h, []Line{{"a", "one"}, {"b", "two"}})...)

	assert.Equal(t, "one", h.snapshot().Dialogue)
	assert.True(t, h.DialogueOpen())

	r.Advance()
	assert.Equal(t, "one", h.snapshot().Dialogue, "stays until dismissed")

	h.Dismiss()
	r.Advance()
	assert.Equal(t, "two", h.snapshot().Dialogue)
	assert.Equal(t, "b", h.snapshot().Speaker)

	h.Dismiss()
	r.Advance()
	assert.True(t, c.Done().Fired())
	assert.False(t, h.DialogueOpen())
}

func TestHUDMenuSnapshot(t *testing.T) {
	h := newHUD()
	h.ShowProgress(Banner{Text: "Progress"})
	h.ShowHome(HomeMenu{Title: "t", Items: []string{"x", "y"}, Selected: 1})

	snap := h.snapshot()
	assert.Equal(t, "t", snap.Title)
	assert.False(t, snap.Menu[0].Selected)
	assert.True(t, snap.Menu[1].Selected)
	assert.Empty(t, snap.Banner)
}

func TestHUDProgressClamped(t *testing.T) {
	h := newHUD()
	h.ShowProgress(Banner{Text: "Progress"})

	h.SetProgress(1.5)
	assert.Equal(t, 1.0, h.snapshot().Progress)
	h.SetProgress(-1)
	assert.Equal(t, 0.0, h.snapshot().Progress)

	h.Clear()
	assert.Empty(t, h.snapshot().Banner)
}
