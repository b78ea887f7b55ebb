package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFake_TickDeliversAndAdvances(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	f := NewFake(start)
	tk := f.NewTicker(100 * time.Millisecond)

	got := make(chan time.Time, 1)
	go func() { got <- <-tk.C() }()

	f.Tick()

	select {
	case at := <-got:
		assert.Equal(t, start.Add(100*time.Millisecond), at)
	case <-time.After(time.Second):
		t.Fatalf("tick was not delivered")
	}
	assert.Equal(t, start.Add(100*time.Millisecond), f.Now())
}

func TestFake_StoppedTickerDoesNotBlock(t *testing.T) {
	f := NewFake(time.Now())
	tk := f.NewTicker(time.Second)
	require.Equal(t, 1, f.Tickers())

	tk.Stop()
	tk.Stop()
	assert.Equal(t, 0, f.Tickers())

	done := make(chan struct{})
	go func() {
		f.Tick()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Tick blocked on a stopped ticker")
	}
}

func TestReal_TickerFires(t *testing.T) {
	tk := Real{}.NewTicker(5 * time.Millisecond)
	defer tk.Stop()

	select {
	case <-tk.C():
	case <-time.After(time.Second):
		t.Fatalf("real ticker never fired")
	}
}
