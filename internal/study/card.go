package study

import "time"

type Side int

const (
	Front Side = iota
	Back
)

func (s Side) String() string {
	if s == Back {
		return "back"
	}
	return "front"
}

// ParseSide maps "back" to Back and anything else to Front.
func ParseSide(s string) Side {
	if s == "back" {
		return Back
	}
	return Front
}

// FlipCard is a two-sided card. The zero value shows the front.
type FlipCard struct {
	side Side
}

func (c *FlipCard) Side() Side {
	return c.side
}

// Flip toggles the visible side and returns the new one.
func (c *FlipCard) Flip() Side {
	if c.side == Front {
		c.side = Back
	} else {
		c.side = Front
	}
	return c.side
}

func (c *FlipCard) Reset() {
	c.side = Front
}

// AutoFlipper describes a card the browser flips every interval.
// A non-positive interval disables flipping.
type AutoFlipper struct {
	interval time.Duration
}

func NewAutoFlipper(interval time.Duration) AutoFlipper {
	return AutoFlipper{interval: interval}
}

func (a AutoFlipper) Interval() time.Duration {
	return a.interval
}

// Enabled reports whether the card flips at all.
func (a AutoFlipper) Enabled() bool {
	return a.interval > 0
}
