package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/monster-codex/internal/pkg/clock"
)

func TestFixedClock(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewFixed(start)

	assert.Equal(t, start, c.Now())

	c.Advance(10 * time.Minute)
	assert.Equal(t, start.Add(10*time.Minute), c.Now())
}

func TestRealClockMovesForward(t *testing.T) {
	c := clock.New()
	before := time.Now()
	assert.False(t, c.Now().Before(before))
}
