package types

import (
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/cooldown"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/engine"
)

type ClientMessage struct {
	Type       string  `json:"type"`
	Slot       string  `json:"slot,omitempty"`
	Spell      string  `json:"spell,omitempty"`
	ChampionID string  `json:"champion_id,omitempty"`
	Delta      int     `json:"delta,omitempty"`
	Haste      string  `json:"haste,omitempty"` // "ability" | "summoner"
	Amount     float64 `json:"amount,omitempty"`
	Enabled    *bool   `json:"enabled,omitempty"`
}

type ServerMessage struct {
	Type    string     `json:"type"` // "StateSnapshot" | "CooldownExpired" | "Error"
	Version int        `json:"version,omitempty"`
	State   *StateView `json:"state,omitempty"`
	Slots   []string   `json:"slots,omitempty"`
	Sound   bool       `json:"sound,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type StateView struct {
	ChampionID    string     `json:"champion_id,omitempty"`
	ChampionName  string     `json:"champion_name,omitempty"`
	AbilityHaste  float64    `json:"ability_haste"`
	SummonerHaste float64    `json:"summoner_haste"`
	Sound         bool       `json:"sound"`
	Slots         []SlotView `json:"slots"`
}

type SlotView struct {
	Slot      string  `json:"slot"`
	Name      string  `json:"name,omitempty"`
	Level     int     `json:"level,omitempty"`
	Key       string  `json:"key,omitempty"`
	Base      float64 `json:"base"`
	Actual    float64 `json:"actual"`
	Running   bool    `json:"running"`
	Remaining float64 `json:"remaining"`
	Total     float64 `json:"total"`
	Progress  float64 `json:"progress"`
	Display   string  `json:"display,omitempty"`
}

func NewStateView(s engine.State) *StateView {
	v := &StateView{
		ChampionID:    s.ChampionID,
		ChampionName:  s.ChampionName,
		AbilityHaste:  s.AbilityHaste,
		SummonerHaste: s.SummonerHaste,
		Sound:         s.Sound,
		Slots:         make([]SlotView, 0, engine.NumSlots),
	}

	for i, slot := range engine.SlotOrder {
		base, actual := s.Cooldown(slot)
		t := s.Timers[i]
		sv := SlotView{
			Slot:      string(slot),
			Base:      base,
			Actual:    actual,
			Running:   t.Running(),
			Remaining: t.Remaining().Seconds(),
			Total:     t.Total().Seconds(),
			Progress:  t.Progress(),
		}
		if t.Running() {
			sv.Display = cooldown.FormatTime(sv.Remaining)
		}

		if slot.IsAbility() {
			sv.Name = s.Abilities[i].Name
			sv.Level = s.Levels[i]
		} else if j, ok := slot.SummonerIndex(); ok {
			sv.Name = s.Summoners[j]
			if spell, ok := cooldown.LookupSummoner(s.Summoners[j]); ok {
				sv.Name = spell.DisplayName
				sv.Key = spell.Key
			}
		}
		v.Slots = append(v.Slots, sv)
	}
	return v
}
