package engine

import (
	"errors"
	"time"

	"github.com/DoyleJ11/lol-cooldown-tracker/internal/champion"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/cooldown"
)

var ErrUnknownSlot = errors.New("unknown slot")
var ErrNotAbilitySlot = errors.New("not an ability slot")
var ErrNotSummonerSlot = errors.New("not a summoner slot")
var ErrUnknownSummoner = errors.New("unknown summoner spell")
var ErrInvalidHaste = errors.New("haste must not be negative")
var ErrNoChampion = errors.New("no champion data")
var ErrUnsupportedCommand = errors.New("unsupported command")

type HasteKind string

const (
	HasteAbility  HasteKind = "ability"
	HasteSummoner HasteKind = "summoner"
)

type Ability struct {
	Name      string
	Cooldowns []float64
}

// State is a value: Apply never mutates its input. Ability cooldown slices
// are shared between copies and treated as read-only.
type State struct {
	ChampionID    string
	ChampionName  string
	Abilities     [4]Ability
	Levels        [4]int
	Summoners     [2]string
	AbilityHaste  float64
	SummonerHaste float64
	Sound         bool
	Timers        [NumSlots]cooldown.Timer
}

type CommandType string

const (
	CmdSelectChampion CommandType = "SelectChampion"
	CmdSetSummoner    CommandType = "SetSummoner"
	CmdAdjustLevel    CommandType = "AdjustLevel"
	CmdAddHaste       CommandType = "AddHaste"
	CmdSetHaste       CommandType = "SetHaste"
	CmdResetHaste     CommandType = "ResetHaste"
	CmdToggleCooldown CommandType = "ToggleCooldown"
	CmdStartCooldown  CommandType = "StartCooldown"
	CmdStopCooldown   CommandType = "StopCooldown"
	CmdReduceCooldown CommandType = "ReduceCooldown"
	CmdResetAll       CommandType = "ResetAll"
	CmdSetSound       CommandType = "SetSound"
	CmdTick           CommandType = "Tick"
)

/*
	CmdSelectChampion -> EvtChampionSelected -> EvtCooldownsReset
	CmdSetSummoner    -> EvtSummonerChanged (+ EvtCooldownStopped if it was running)
	CmdToggleCooldown -> EvtCooldownStarted | EvtCooldownStopped
	CmdStopCooldown   -> EvtCooldownStopped | EvtCooldownCleared (expired timer)
	CmdReduceCooldown -> EvtCooldownReduced (+ EvtCooldownExpired)
	CmdTick           -> EvtCooldownExpired per slot that hit zero
	Level and haste changes only apply at the next start.
*/

type Command struct {
	Type     CommandType
	Slot     Slot
	Spell    string
	Delta    int
	Haste    HasteKind
	Amount   float64 // haste points or seconds, depending on Type
	Elapsed  time.Duration
	Enabled  bool
	Champion *champion.Champion
}

type EventType string

const (
	EvtChampionSelected EventType = "ChampionSelected"
	EvtSummonerChanged  EventType = "SummonerChanged"
	EvtLevelChanged     EventType = "LevelChanged"
	EvtHasteChanged     EventType = "HasteChanged"
	EvtCooldownStarted  EventType = "CooldownStarted"
	EvtCooldownStopped  EventType = "CooldownStopped"
	EvtCooldownReduced  EventType = "CooldownReduced"
	EvtCooldownExpired  EventType = "CooldownExpired"
	EvtCooldownCleared  EventType = "CooldownCleared"
	EvtCooldownsReset   EventType = "CooldownsReset"
	EvtSoundChanged     EventType = "SoundChanged"
)

type Event struct {
	Type  EventType
	Slot  Slot
	Value float64
}

func Apply(s State, cmd Command) ([]Event, State, error) {
	newState := s

	switch cmd.Type {
	case CmdSelectChampion:
		if cmd.Champion == nil || cmd.Champion.ID == "" {
			return nil, s, ErrNoChampion
		}
		newState.ChampionID = cmd.Champion.ID
		newState.ChampionName = cmd.Champion.Name
		newState.Abilities = abilitiesFrom(cmd.Champion)
		newState.Levels = [4]int{1, 1, 1, 1}
		newState.AbilityHaste = 0
		newState.SummonerHaste = 0
		resetAll(&newState)

		return []Event{
			{Type: EvtChampionSelected},
			{Type: EvtCooldownsReset},
		}, newState, nil

	case CmdSetSummoner:
		i, ok := cmd.Slot.SummonerIndex()
		if !ok {
			return nil, s, slotErr(cmd.Slot, ErrNotSummonerSlot)
		}
		if _, ok := cooldown.LookupSummoner(cmd.Spell); !ok {
			return nil, s, ErrUnknownSummoner
		}

		events := []Event{{Type: EvtSummonerChanged, Slot: cmd.Slot}}
		if newState.Timers[4+i].Running() {
			events = append(events, Event{Type: EvtCooldownStopped, Slot: cmd.Slot})
		}
		newState.Summoners[i] = cmd.Spell
		newState.Timers[4+i].Reset()
		return events, newState, nil

	case CmdAdjustLevel:
		if !cmd.Slot.IsAbility() {
			return nil, s, slotErr(cmd.Slot, ErrNotAbilitySlot)
		}
		i, _ := cmd.Slot.Index()
		level := min(MaxLevel(cmd.Slot), max(1, s.Levels[i]+cmd.Delta))
		if level == s.Levels[i] {
			return nil, s, nil
		}
		newState.Levels[i] = level
		return []Event{{Type: EvtLevelChanged, Slot: cmd.Slot, Value: float64(level)}}, newState, nil

	case CmdAddHaste, CmdSetHaste:
		current, ok := haste(&newState, cmd.Haste)
		if !ok {
			return nil, s, ErrUnsupportedCommand
		}
		next := cmd.Amount
		if cmd.Type == CmdAddHaste {
			next = *current + cmd.Amount
		}
		if next < 0 {
			return nil, s, ErrInvalidHaste
		}
		*current = next
		return []Event{{Type: EvtHasteChanged, Value: next}}, newState, nil

	case CmdResetHaste:
		switch cmd.Haste {
		case HasteAbility:
			newState.AbilityHaste = 0
		case HasteSummoner:
			newState.SummonerHaste = 0
		default:
			newState.AbilityHaste = 0
			newState.SummonerHaste = 0
		}
		return []Event{{Type: EvtHasteChanged}}, newState, nil

	case CmdToggleCooldown, CmdStartCooldown, CmdStopCooldown:
		i, ok := cmd.Slot.Index()
		if !ok {
			return nil, s, slotErr(cmd.Slot, ErrUnknownSlot)
		}
		timer := &newState.Timers[i]

		stop := cmd.Type == CmdStopCooldown || (cmd.Type == CmdToggleCooldown && timer.Running())
		if stop {
			switch {
			case timer.Running():
				timer.Stop()
				return []Event{{Type: EvtCooldownStopped, Slot: cmd.Slot}}, newState, nil
			case timer.Total() > 0:
				// Expired timers keep their total until cleared.
				timer.Stop()
				return []Event{{Type: EvtCooldownCleared, Slot: cmd.Slot}}, newState, nil
			default:
				return nil, s, nil
			}
		}

		// No data means no timer; not an error.
		_, actual := s.Cooldown(cmd.Slot)
		d := cooldown.Duration(actual)
		if d <= 0 {
			return nil, s, nil
		}
		timer.Start(d)
		return []Event{{Type: EvtCooldownStarted, Slot: cmd.Slot, Value: actual}}, newState, nil

	case CmdReduceCooldown:
		i, ok := cmd.Slot.Index()
		if !ok {
			return nil, s, slotErr(cmd.Slot, ErrUnknownSlot)
		}
		timer := &newState.Timers[i]
		if !timer.Running() || cmd.Amount <= 0 {
			return nil, s, nil
		}

		events := []Event{{Type: EvtCooldownReduced, Slot: cmd.Slot, Value: cmd.Amount}}
		if timer.Reduce(cooldown.Duration(cmd.Amount)) {
			events = append(events, Event{Type: EvtCooldownExpired, Slot: cmd.Slot})
		}
		return events, newState, nil

	case CmdResetAll:
		resetAll(&newState)
		return []Event{{Type: EvtCooldownsReset}}, newState, nil

	case CmdSetSound:
		newState.Sound = cmd.Enabled
		return []Event{{Type: EvtSoundChanged}}, newState, nil

	case CmdTick:
		var events []Event
		for i := range newState.Timers {
			if newState.Timers[i].Tick(cmd.Elapsed) {
				events = append(events, Event{Type: EvtCooldownExpired, Slot: SlotOrder[i]})
			}
		}
		return events, newState, nil

	default:
		return nil, s, ErrUnsupportedCommand
	}
}

func resetAll(s *State) {
	for i := range s.Timers {
		s.Timers[i].Reset()
	}
}

func haste(s *State, kind HasteKind) (*float64, bool) {
	switch kind {
	case HasteAbility:
		return &s.AbilityHaste, true
	case HasteSummoner:
		return &s.SummonerHaste, true
	default:
		return nil, false
	}
}
