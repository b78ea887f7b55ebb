package engine

import "strings"

type Slot string

const (
	SlotQ     Slot = "Q"
	SlotW     Slot = "W"
	SlotE     Slot = "E"
	SlotR     Slot = "R"
	SlotSumm1 Slot = "Summ1"
	SlotSumm2 Slot = "Summ2"
)

const NumSlots = 6

var SlotOrder = [NumSlots]Slot{
	// Abilities
	SlotQ,
	SlotW,
	SlotE,
	SlotR,
	// Summoner spells
	SlotSumm1,
	SlotSumm2,
}

func (s Slot) Index() (int, bool) {
	for i, slot := range SlotOrder {
		if slot == s {
			return i, true
		}
	}
	return 0, false
}

func (s Slot) IsAbility() bool {
	i, ok := s.Index()
	return ok && i < 4
}

// SummonerIndex maps Summ1/Summ2 to 0/1.
func (s Slot) SummonerIndex() (int, bool) {
	i, ok := s.Index()
	if !ok || i < 4 {
		return 0, false
	}
	return i - 4, true
}

// ParseSlot accepts slot names case-insensitively ("q", "summ1").
func ParseSlot(name string) (Slot, bool) {
	for _, slot := range SlotOrder {
		if strings.EqualFold(string(slot), name) {
			return slot, true
		}
	}
	return "", false
}
