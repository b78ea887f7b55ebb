package cooldown

import (
	"fmt"
	"math"
	"time"
)

const (
	MaxBasicLevel    = 5
	MaxUltimateLevel = 3

	// HasteIncrement is the step used by the "+10" haste controls.
	HasteIncrement = 10
)

// EffectiveCooldown applies haste to a base cooldown: base * 100 / (100 + haste).
// haste must be greater than -100; the value is not checked.
func EffectiveCooldown(base, haste float64) float64 {
	return base * (100 / (100 + haste))
}

// AbilityCooldown returns the base and haste-adjusted cooldown for the given
// 1-based level. Missing data yields (0, 0) so callers can skip starting a timer.
func AbilityCooldown(cooldowns []float64, level int, haste float64) (base, actual float64) {
	if level < 1 || level > len(cooldowns) {
		return 0, 0
	}
	base = cooldowns[level-1]
	if base <= 0 {
		return 0, 0
	}
	return base, EffectiveCooldown(base, haste)
}

// Duration converts seconds to a time.Duration, rounded to the nanosecond.
// Values past the int64 range saturate at the largest Duration.
func Duration(seconds float64) time.Duration {
	if seconds <= 0 || math.IsNaN(seconds) {
		return 0
	}
	ns := math.Round(seconds * float64(time.Second))
	if ns >= math.MaxInt64 {
		return time.Duration(math.MaxInt64)
	}
	return time.Duration(ns)
}

// FormatTime renders "12.3s" below a minute and "1m 23s" otherwise.
func FormatTime(seconds float64) string {
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}
	minutes := int(seconds / 60)
	rest := int(math.Mod(seconds, 60))
	return fmt.Sprintf("%dm %ds", minutes, rest)
}
