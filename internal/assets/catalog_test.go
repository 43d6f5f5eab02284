package assets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/borker-run/internal/core"
)

func TestDefaultCatalogHasGameAssets(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	for _, name := range []string{"mrborker", "sandwitch", "cactus", "boulder", "licorice", "cloud", "floorTile", "battleFloor"} {
		_, err := c.CloneModel(name)
		assert.NoError(t, err, name)
	}
	for _, name := range []string{
		"playerRunAnim", "playerIdleAnim", "playerAirborneAnim", "playerHappyAnim",
		"playerMoveRightAnim", "playerMoveLeftAnim", "playerDeathAnim",
		"sandwitchIdleAnim", "sandwitchJumpAttackAnim", "sandwitchLaughAnim", "sandwitchThrowAnim",
	} {
		clip, err := c.CloneAnimation(name)
		assert.NoError(t, err, name)
		assert.Positive(t, clip.Duration, name)
	}
	for _, name := range []string{"dance", "whatIsLove", "bossTheme", "dialogueTheme", "death"} {
		_, ok := c.Audio(name)
		assert.True(t, ok, name)
	}

	alert, err := c.CloneTexture("alert")
	require.NoError(t, err)
	assert.Equal(t, '!', alert.Glyph)
	assert.Equal(t, core.ColorBrightRed, alert.Color)
}

func TestUnknownAssetsReturnNamedError(t *testing.T) {
	c := MustDefault()

	_, err := c.CloneModel("dragon")
	assert.ErrorIs(t, err, ErrUnknownAsset)
	assert.Contains(t, err.Error(), `model "dragon"`)

	_, err = c.CloneAnimation("dragonAnim")
	assert.ErrorIs(t, err, ErrUnknownAsset)

	_, err = c.CloneTexture("dragonSkin")
	assert.ErrorIs(t, err, ErrUnknownAsset)

	_, ok := c.Audio("dragonRoar")
	assert.False(t, ok)
}

func TestCloneModelCopiesSprite(t *testing.T) {
	c := MustDefault()
	a, err := c.CloneModel("cactus")
	require.NoError(t, err)
	a.Sprite[0] = "xxx"

	b, err := c.CloneModel("cactus")
	require.NoError(t, err)
	assert.NotEqual(t, "xxx", b.Sprite[0])
}

func TestParse(t *testing.T) {
	c, err := Parse([]byte(`
models:
  box: {color: Orange, width: 2, height: 2, sprite: ["[]"]}
animations:
  spin: {duration: 250ms, frames: 2}
audio: [beep]
`))
	require.NoError(t, err)

	box, err := c.CloneModel("box")
	require.NoError(t, err)
	assert.Equal(t, core.ColorOrange, box.Color)

	spin, err := c.CloneAnimation("spin")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, spin.Duration)

	assert.Equal(t, []string{"beep"}, c.Names(KindAudio))
}

func TestParseRejectsBadCatalog(t *testing.T) {
	_, err := Parse([]byte("models:\n  box: {color: ultraviolet}\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("animations:\n  spin: {frames: 2}\n"))
	assert.Error(t, err)
}
