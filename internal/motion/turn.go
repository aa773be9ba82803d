// Package motion spreads discrete turn commands over several frames.
package motion

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Turner eases a turn in over a fixed duration. Each Update returns the part
// of the turn to apply during that frame; the parts add up to the whole turn.
//
// A turn started while another is running is added to what is left of it, so
// held keys keep the agent turning without losing any angle.
type Turner struct {
	duration float32 // seconds
	fn       ease.TweenFunc

	tween   *gween.Tween
	target  float64
	applied float64
}

// NewTurner returns a Turner that completes each turn in d. A zero d applies
// every turn whole on the next Update.
func NewTurner(d time.Duration, fn ease.TweenFunc) *Turner {
	if fn == nil {
		fn = ease.OutQuad
	}
	return &Turner{duration: float32(d.Seconds()), fn: fn}
}

// Start queues a turn of deg degrees.
func (t *Turner) Start(deg float64) {
	t.target = t.Remaining() + deg
	t.applied = 0
	t.tween = nil
	if t.duration > 0 && t.target != 0 {
		t.tween = gween.New(0, float32(t.target), t.duration, t.fn)
	}
}

// Update advances the turn by dt and returns the degrees to turn now.
func (t *Turner) Update(dt time.Duration) float64 {
	if t.tween == nil {
		delta := t.Remaining()
		t.target, t.applied = 0, 0
		return delta
	}
	val, done := t.tween.Update(float32(dt.Seconds()))
	if done {
		delta := t.Remaining()
		t.tween = nil
		t.target, t.applied = 0, 0
		return delta
	}
	delta := float64(val) - t.applied
	t.applied = float64(val)
	return delta
}

// Active reports whether part of a turn is still to be applied.
func (t *Turner) Active() bool {
	return t.Remaining() != 0
}

// Remaining is the part of the current turn not yet returned by Update.
func (t *Turner) Remaining() float64 {
	return t.target - t.applied
}
