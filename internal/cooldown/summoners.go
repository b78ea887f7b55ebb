package cooldown

import "sort"

type SummonerSpell struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Cooldown    float64 `json:"cooldown"`
	Key         string  `json:"key"`
}

var summonerSpells = map[string]SummonerSpell{
	"Flash":    {Name: "Flash", DisplayName: "Flash", Cooldown: 300, Key: "F"},
	"Ignite":   {Name: "Ignite", DisplayName: "Ignite", Cooldown: 180, Key: "D"},
	"Teleport": {Name: "Teleport", DisplayName: "Teleport", Cooldown: 360, Key: "F"},
	"Heal":     {Name: "Heal", DisplayName: "Heal", Cooldown: 240, Key: "D"},
	"Barrier":  {Name: "Barrier", DisplayName: "Barrier", Cooldown: 180, Key: "D"},
	"Exhaust":  {Name: "Exhaust", DisplayName: "Exhaust", Cooldown: 210, Key: "D"},
	"Cleanse":  {Name: "Cleanse", DisplayName: "Cleanse", Cooldown: 210, Key: "D"},
	"Ghost":    {Name: "Ghost", DisplayName: "Ghost", Cooldown: 210, Key: "D"},
	"Smite":    {Name: "Smite", DisplayName: "Smite", Cooldown: 90, Key: "D"},
	"Clarity":  {Name: "Clarity", DisplayName: "Clarity", Cooldown: 240, Key: "D"},
}

// Default spells for the two summoner slots.
var DefaultSummoners = [2]string{"Flash", "Ignite"}

func LookupSummoner(name string) (SummonerSpell, bool) {
	s, ok := summonerSpells[name]
	return s, ok
}

// SummonerSpells returns the table sorted by name.
func SummonerSpells() []SummonerSpell {
	out := make([]SummonerSpell, 0, len(summonerSpells))
	for _, s := range summonerSpells {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
