package cooldown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimer_StopOnIdleStaysIdle(t *testing.T) {
	var tm Timer
	tm.Stop()
	tm.Stop()

	assert.False(t, tm.Running())
	assert.Zero(t, tm.Remaining())
	assert.Zero(t, tm.Total())
	assert.Zero(t, tm.Progress())
}

func TestTimer_StartIgnoresNonPositive(t *testing.T) {
	var tm Timer
	tm.Start(0)
	tm.Start(-time.Second)
	assert.False(t, tm.Running())
	assert.Zero(t, tm.Total())
}

func TestTimer_StartThenProgressZero(t *testing.T) {
	var tm Timer
	tm.Start(3 * time.Second)

	require.True(t, tm.Running())
	assert.Equal(t, 3*time.Second, tm.Remaining())
	assert.Equal(t, 3*time.Second, tm.Total())
	assert.Zero(t, tm.Progress())

	assert.False(t, tm.Tick(time.Second))
	assert.InDelta(t, 33.33, tm.Progress(), 0.01)
}

func TestTimer_TicksToExpiryFireOnce(t *testing.T) {
	var tm Timer
	tm.Start(10 * time.Second)

	expired := 0
	for i := 0; i < 100; i++ {
		if tm.Tick(100 * time.Millisecond) {
			expired++
		}
	}

	assert.Equal(t, 1, expired)
	assert.False(t, tm.Running())
	assert.Zero(t, tm.Remaining())
	assert.Equal(t, 100.0, tm.Progress())

	// further ticks on an idle timer never fire again
	assert.False(t, tm.Tick(100*time.Millisecond))
	assert.Equal(t, 1, expired)
}

func TestTimer_ReduceClampsAtZero(t *testing.T) {
	var tm Timer
	tm.Start(20 * time.Second)

	assert.True(t, tm.Reduce(25*time.Second))
	assert.False(t, tm.Running())
	assert.Zero(t, tm.Remaining())
	assert.Equal(t, 20*time.Second, tm.Total())
}

func TestTimer_ReduceKeepsTotal(t *testing.T) {
	var tm Timer
	tm.Start(30 * time.Second)

	assert.False(t, tm.Reduce(10*time.Second))
	assert.Equal(t, 20*time.Second, tm.Remaining())
	assert.Equal(t, 30*time.Second, tm.Total())
	assert.InDelta(t, 33.33, tm.Progress(), 0.01)

	assert.False(t, tm.Reduce(-5*time.Second))
	assert.Equal(t, 20*time.Second, tm.Remaining())
}

func TestTimer_ReduceOnIdleIsNoop(t *testing.T) {
	var tm Timer
	assert.False(t, tm.Reduce(10*time.Second))
	assert.Zero(t, tm.Remaining())
	assert.False(t, tm.Running())
}

func TestTimer_StopBeforeExpiryNoNotification(t *testing.T) {
	var tm Timer
	tm.Start(5 * time.Second)
	tm.Stop()

	assert.False(t, tm.Running())
	assert.Zero(t, tm.Remaining())
	assert.Zero(t, tm.Total())

	// a tick that was already scheduled must not move anything
	assert.False(t, tm.Tick(100*time.Millisecond))
	assert.Zero(t, tm.Remaining())
}

func TestTimer_RestartWhileRunningOverwrites(t *testing.T) {
	var tm Timer
	tm.Start(10 * time.Second)
	tm.Tick(4 * time.Second)

	tm.Start(8 * time.Second)
	assert.Equal(t, 8*time.Second, tm.Remaining())
	assert.Equal(t, 8*time.Second, tm.Total())
	assert.Zero(t, tm.Progress())
}

func TestTimer_RemainingNeverExceedsTotal(t *testing.T) {
	var tm Timer
	tm.Start(time.Second)
	tm.Tick(-time.Hour)
	assert.LessOrEqual(t, tm.Remaining(), tm.Total())
}
