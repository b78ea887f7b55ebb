// Package champion reads champion rosters and ability cooldowns from static
// Data Dragon JSON files.
package champion

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("champion not found")

// Summary is one roster entry used for search and selection.
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

type Spell struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Cooldowns []float64 `json:"cooldown"`
}

type Passive struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Champion holds up to four spells in Q, W, E, R order.
type Champion struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Title   string  `json:"title"`
	Spells  []Spell `json:"spells"`
	Passive Passive `json:"passive"`
}

type Source interface {
	Roster(ctx context.Context) ([]Summary, error)
	Champion(ctx context.Context, id string) (*Champion, error)
}

// Search filters the roster by a case-insensitive substring of the name.
// limit <= 0 means no limit.
func Search(roster []Summary, term string, limit int) []Summary {
	term = strings.ToLower(strings.TrimSpace(term))
	out := []Summary{}
	for _, c := range roster {
		if limit > 0 && len(out) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(c.Name), term) {
			out = append(out, c)
		}
	}
	return out
}
