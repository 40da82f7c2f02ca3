package study

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFlipCard(t *testing.T) {
	var c FlipCard
	assert.Equal(t, Front, c.Side())

	assert.Equal(t, Back, c.Flip())
	assert.Equal(t, Front, c.Flip())

	c.Flip()
	c.Reset()
	assert.Equal(t, Front, c.Side())
}

func TestParseSide(t *testing.T) {
	assert.Equal(t, Back, ParseSide("back"))
	assert.Equal(t, Front, ParseSide("front"))
	assert.Equal(t, Front, ParseSide(""))
	assert.Equal(t, "back", Back.String())
	assert.Equal(t, "front", Front.String())
}

func TestAutoFlipper(t *testing.T) {
	a := NewAutoFlipper(4 * time.Second)
	assert.True(t, a.Enabled())
	assert.Equal(t, 4*time.Second, a.Interval())

	assert.False(t, NewAutoFlipper(0).Enabled())
	assert.False(t, NewAutoFlipper(-time.Second).Enabled())
}
