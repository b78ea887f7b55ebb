package cooldown

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveCooldown(t *testing.T) {
	cases := []struct {
		name  string
		base  float64
		haste float64
		want  float64
	}{
		{name: "no haste", base: 100, haste: 0, want: 100},
		{name: "hundred haste halves", base: 100, haste: 100, want: 50},
		{name: "flash with fifty haste", base: 300, haste: 50, want: 200},
		{name: "zero base", base: 0, haste: 40, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, EffectiveCooldown(tc.base, tc.haste), 1e-9)
		})
	}
}

func TestEffectiveCooldown_NeverExceedsBase(t *testing.T) {
	for _, base := range []float64{0, 1, 7.5, 90, 300} {
		for _, haste := range []float64{0, 1, 10, 45.5, 100, 500} {
			got := EffectiveCooldown(base, haste)
			assert.LessOrEqual(t, got, base)
			if haste == 0 || base == 0 {
				assert.Equal(t, base, got)
			} else {
				assert.Less(t, got, base, "base=%v haste=%v", base, haste)
			}
		}
	}
}

func TestAbilityCooldown(t *testing.T) {
	cds := []float64{10, 9, 8, 7, 6}

	base, actual := AbilityCooldown(cds, 3, 100)
	assert.Equal(t, 8.0, base)
	assert.InDelta(t, 4.0, actual, 1e-9)

	cases := []struct {
		name  string
		cds   []float64
		level int
	}{
		{name: "no data", cds: nil, level: 1},
		{name: "level zero", cds: cds, level: 0},
		{name: "level past data", cds: []float64{120, 100, 80}, level: 4},
		{name: "zero cooldown", cds: []float64{0}, level: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base, actual := AbilityCooldown(tc.cds, tc.level, 20)
			assert.Zero(t, base)
			assert.Zero(t, actual)
		})
	}
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 200*time.Second, Duration(EffectiveCooldown(300, 50)))
	assert.Equal(t, 1500*time.Millisecond, Duration(1.5))
	assert.Zero(t, Duration(0))
	assert.Zero(t, Duration(-3))
	assert.Zero(t, Duration(math.NaN()))

	assert.Equal(t, time.Duration(math.MaxInt64), Duration(1e10))
	assert.Equal(t, time.Duration(math.MaxInt64), Duration(math.Inf(1)))
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "12.3s", FormatTime(12.34))
	assert.Equal(t, "0.0s", FormatTime(0))
	assert.Equal(t, "1m 23s", FormatTime(83.9))
	assert.Equal(t, "5m 0s", FormatTime(300))
}

func TestSummonerTable(t *testing.T) {
	want := map[string]float64{
		"Flash": 300, "Ignite": 180, "Teleport": 360, "Heal": 240, "Barrier": 180,
		"Exhaust": 210, "Cleanse": 210, "Ghost": 210, "Smite": 90, "Clarity": 240,
	}
	for name, cd := range want {
		s, ok := LookupSummoner(name)
		if assert.True(t, ok, name) {
			assert.Equal(t, cd, s.Cooldown, name)
		}
	}

	_, ok := LookupSummoner("Mark")
	assert.False(t, ok)

	all := SummonerSpells()
	assert.Len(t, all, len(want))
	assert.Equal(t, "Barrier", all[0].Name)
}
