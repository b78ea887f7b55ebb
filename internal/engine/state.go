package engine

import (
	"fmt"

	"github.com/DoyleJ11/lol-cooldown-tracker/internal/champion"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/cooldown"
)

func NewState() State {
	return State{
		Levels:    [4]int{1, 1, 1, 1},
		Summoners: cooldown.DefaultSummoners,
		Sound:     true,
	}
}

func ContainsEvent(events []Event, eventType EventType) bool {
	for _, event := range events {
		if event.Type == eventType {
			return true
		}
	}
	return false
}

// Expired lists the slots whose cooldown expired in events.
func Expired(events []Event) []Slot {
	var out []Slot
	for _, event := range events {
		if event.Type == EvtCooldownExpired {
			out = append(out, event.Slot)
		}
	}
	return out
}

// Active reports whether any slot is counting down.
func (s State) Active() bool {
	for _, t := range s.Timers {
		if t.Running() {
			return true
		}
	}
	return false
}

func (s State) Timer(slot Slot) cooldown.Timer {
	i, ok := slot.Index()
	if !ok {
		return cooldown.Timer{}
	}
	return s.Timers[i]
}

// Cooldown returns the base and haste-adjusted cooldown a start would use
// right now. (0, 0) means there is nothing to start.
func (s State) Cooldown(slot Slot) (base, actual float64) {
	if slot.IsAbility() {
		i, _ := slot.Index()
		return cooldown.AbilityCooldown(s.Abilities[i].Cooldowns, s.Levels[i], s.AbilityHaste)
	}
	if i, ok := slot.SummonerIndex(); ok {
		spell, ok := cooldown.LookupSummoner(s.Summoners[i])
		if !ok {
			return 0, 0
		}
		return spell.Cooldown, cooldown.EffectiveCooldown(spell.Cooldown, s.SummonerHaste)
	}
	return 0, 0
}

func MaxLevel(slot Slot) int {
	if slot == SlotR {
		return cooldown.MaxUltimateLevel
	}
	return cooldown.MaxBasicLevel
}

func abilitiesFrom(c *champion.Champion) [4]Ability {
	var out [4]Ability
	for i, spell := range c.Spells {
		if i >= len(out) {
			break
		}
		out[i] = Ability{Name: spell.Name, Cooldowns: spell.Cooldowns}
	}
	return out
}

func slotErr(slot Slot, wrongKind error) error {
	if _, ok := slot.Index(); !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSlot, slot)
	}
	return fmt.Errorf("%w: %s", wrongKind, slot)
}
