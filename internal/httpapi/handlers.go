package httpapi

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"math"
	"math/big"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/DoyleJ11/lol-cooldown-tracker/internal/champion"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/cooldown"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/engine"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/hub"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/session"
)

// Search results shown when the client does not ask for a limit.
const defaultSearchLimit = 8

func GenerateCode() (string, error) {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	code := make([]byte, 6)
	for i := 0; i < 6; i++ {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		code[i] = charset[num.Int64()]
	}
	return string(code), nil
}

func CreateSession(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var code string
		for {
			c, err := GenerateCode()
			if err != nil {
				writeError(w, http.StatusInternalServerError, "failed to generate code")
				return
			}
			if h.Get(r.Context(), c) == nil {
				code = c
				break
			}
			log.Debug("collision on code, regenerating", zap.String("code", c))
		}

		reply := make(chan *session.Session, 1)
		select {
		case h.Inbox() <- hub.EnsureSession{Code: code, State: engine.NewState(), Reply: reply}:
		case <-h.Done():
			writeError(w, http.StatusServiceUnavailable, "shutting down")
			return
		}
		if <-reply == nil {
			writeError(w, http.StatusInternalServerError, "failed to create session")
			return
		}

		writeJSON(w, http.StatusCreated, struct {
			Code string `json:"code"`
		}{Code: code})
	}
}

func Healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func Champions(src champion.Source, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultSearchLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "invalid limit")
				return
			}
			limit = n
		}

		roster, err := src.Roster(r.Context())
		if err != nil {
			log.Error("load roster", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "champion data unavailable")
			return
		}

		writeJSON(w, http.StatusOK, struct {
			Champions []champion.Summary `json:"champions"`
		}{Champions: champion.Search(roster, r.URL.Query().Get("q"), limit)})
	}
}

type abilityView struct {
	Slot      string    `json:"slot"`
	Name      string    `json:"name"`
	Cooldowns []float64 `json:"cooldowns"`
	Effective []float64 `json:"effective"`
}

func Champion(src champion.Source, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		haste, ok := hasteParam(w, r)
		if !ok {
			return
		}

		c, err := src.Champion(r.Context(), chi.URLParam(r, "id"))
		if errors.Is(err, champion.ErrNotFound) {
			writeError(w, http.StatusNotFound, "champion not found")
			return
		}
		if err != nil {
			log.Error("load champion", zap.String("id", chi.URLParam(r, "id")), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "champion data unavailable")
			return
		}

		abilities := make([]abilityView, 0, len(c.Spells))
		for i, sp := range c.Spells {
			if i >= 4 {
				break
			}
			eff := make([]float64, len(sp.Cooldowns))
			for j, base := range sp.Cooldowns {
				eff[j] = cooldown.EffectiveCooldown(base, haste)
			}
			abilities = append(abilities, abilityView{
				Slot:      string(engine.SlotOrder[i]),
				Name:      sp.Name,
				Cooldowns: sp.Cooldowns,
				Effective: eff,
			})
		}

		writeJSON(w, http.StatusOK, struct {
			ID        string           `json:"id"`
			Name      string           `json:"name"`
			Title     string           `json:"title,omitempty"`
			Passive   champion.Passive `json:"passive"`
			Haste     float64          `json:"haste"`
			Abilities []abilityView    `json:"abilities"`
		}{c.ID, c.Name, c.Title, c.Passive, haste, abilities})
	}
}

type summonerView struct {
	cooldown.SummonerSpell
	Effective float64 `json:"effective"`
}

func Summoners(w http.ResponseWriter, r *http.Request) {
	haste, ok := hasteParam(w, r)
	if !ok {
		return
	}
	spells := cooldown.SummonerSpells()
	out := make([]summonerView, 0, len(spells))
	for _, sp := range spells {
		out = append(out, summonerView{SummonerSpell: sp, Effective: cooldown.EffectiveCooldown(sp.Cooldown, haste)})
	}
	writeJSON(w, http.StatusOK, struct {
		Haste     float64        `json:"haste"`
		Summoners []summonerView `json:"summoners"`
	}{haste, out})
}

func Cooldown(w http.ResponseWriter, r *http.Request) {
	base, err := parseAmount(r.URL.Query().Get("base"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid base")
		return
	}
	haste, ok := hasteParam(w, r)
	if !ok {
		return
	}
	actual := cooldown.EffectiveCooldown(base, haste)
	writeJSON(w, http.StatusOK, struct {
		Base     float64 `json:"base"`
		Haste    float64 `json:"haste"`
		Cooldown float64 `json:"cooldown"`
		Display  string  `json:"display"`
	}{base, haste, actual, cooldown.FormatTime(actual)})
}

// hasteParam reads ?haste=, defaulting to 0. It writes a 400 and reports
// false for malformed, negative or non-finite values.
func hasteParam(w http.ResponseWriter, r *http.Request) (float64, bool) {
	raw := r.URL.Query().Get("haste")
	if raw == "" {
		return 0, true
	}
	haste, err := parseAmount(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, engine.ErrInvalidHaste.Error())
		return 0, false
	}
	return haste, true
}

var errBadAmount = errors.New("must be a finite number >= 0")

// parseAmount accepts finite, non-negative numbers. ParseFloat alone lets
// "NaN" and "Inf" through, which JSON cannot encode.
func parseAmount(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, errBadAmount
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, struct {
		Error string `json:"error"`
	}{msg})
}
