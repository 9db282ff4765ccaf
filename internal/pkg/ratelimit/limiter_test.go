//go:build unit

package ratelimit_test

import (
	"testing"
	"time"

	"course-cart/internal/pkg/clock"
	"course-cart/internal/pkg/ratelimit"

	"github.com/stretchr/testify/assert"
)

func TestLimiter(t *testing.T) {
	interval := 10 * time.Millisecond
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	l := ratelimit.New(ratelimit.Every(interval), 1, time.Minute, clk)

	tooshort := time.Millisecond
	expected := []bool{true, false, true, true, false, false}
	waits := []time.Duration{tooshort, interval, interval, tooshort, tooshort, tooshort}
	for i, exp := range expected {
		assert.Equal(t, exp, l.Allow("default"), "iteration %d", i)
		clk.Add(waits[i])
	}
}

func TestLimiterWithBurst(t *testing.T) {
	interval := 100 * time.Millisecond
	clk := clock.NewMockClock(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	l := ratelimit.New(ratelimit.Every(interval), 3, time.Minute, clk)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("default"), "burst %d", i)
	}
	assert.False(t, l.Allow("default"))

	clk.Add(interval)
	assert.True(t, l.Allow("default"))
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	clk := clock.NewMockClock(time.Unix(0, 0))
	l := ratelimit.New(1, 1, time.Minute, clk)

	assert.True(t, l.Allow("alice"))
	assert.False(t, l.Allow("alice"))
	assert.True(t, l.Allow("bob"))
}

func TestLimiter_Sweep(t *testing.T) {
	clk := clock.NewMockClock(time.Unix(0, 0))
	l := ratelimit.New(1, 1, time.Minute, clk)

	l.Allow("alice")
	clk.Add(30 * time.Second)
	l.Allow("bob")
	clk.Add(45 * time.Second)

	assert.Equal(t, 1, l.Sweep())
	assert.Equal(t, 1, l.Len())
}

func TestLimiter_StopEndsRun(t *testing.T) {
	l := ratelimit.New(1, 1, time.Minute, clock.NewRealClock())
	done := make(chan struct{})
	go func() {
		l.Run(time.Hour)
		close(done)
	}()

	l.Stop()
	l.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
