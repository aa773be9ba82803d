package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

func TestTurnerSpreadsTurn(t *testing.T) {
	tr := NewTurner(time.Second, ease.Linear)
	assert.False(t, tr.Active())

	tr.Start(10)
	assert.True(t, tr.Active())

	first := tr.Update(500 * time.Millisecond)
	assert.InDelta(t, 5, first, 1e-4)
	assert.True(t, tr.Active())

	second := tr.Update(500 * time.Millisecond)
	assert.Equal(t, 10.0, first+second)
	assert.False(t, tr.Active())
	assert.Zero(t, tr.Update(time.Second))
}

func TestTurnerAddsToRunningTurn(t *testing.T) {
	tr := NewTurner(time.Second, ease.Linear)
	tr.Start(-10)
	total := tr.Update(500 * time.Millisecond)

	tr.Start(-10)
	assert.InDelta(t, -15, tr.Remaining(), 1e-4)
	for tr.Active() {
		total += tr.Update(250 * time.Millisecond)
	}
	assert.InDelta(t, -20, total, 1e-9)
}

func TestTurnerWithoutDuration(t *testing.T) {
	tr := NewTurner(0, nil)
	tr.Start(5)
	tr.Start(5)
	assert.Equal(t, 10.0, tr.Update(time.Millisecond))
	assert.False(t, tr.Active())

	tr.Start(0)
	assert.False(t, tr.Active())
	assert.Zero(t, tr.Update(time.Millisecond))
}

func TestTurnerEasesOut(t *testing.T) {
	tr := NewTurner(time.Second, ease.OutQuad)
	tr.Start(90)
	first := tr.Update(250 * time.Millisecond)
	second := tr.Update(250 * time.Millisecond)
	assert.Greater(t, first, second)
}
