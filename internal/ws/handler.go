package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DoyleJ11/lol-cooldown-tracker/internal/champion"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/cooldown"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/engine"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/hub"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/session"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/types"
)

// Seconds taken off by a ReduceCooldown message without an amount.
const defaultReduceSeconds = 10

var errUnknownType = errors.New("unknown type")

type Options struct {
	// OriginPatterns loosens the same-origin check, e.g. "localhost:*".
	OriginPatterns []string
	// IdleTimeout closes a connection that sends nothing for this long.
	IdleTimeout time.Duration
}

func Handler(h *hub.Hub, src champion.Source, log *zap.Logger, opts Options) http.HandlerFunc {
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = 30 * time.Minute
	}

	return func(w http.ResponseWriter, r *http.Request) {
		code := r.URL.Query().Get("code")
		if code == "" {
			http.Error(w, "missing code", http.StatusBadRequest)
			return
		}

		s := h.Get(r.Context(), code)
		if s == nil {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}

		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: opts.OriginPatterns,
		})
		if err != nil {
			log.Debug("websocket accept failed", zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		out := make(chan session.Snapshot, 8)
		clientID := uuid.NewString()
		clog := log.With(zap.String("session", code), zap.String("client", clientID))

		if !s.Send(session.Join{ClientID: clientID, Outbox: out}) {
			conn.Close(websocket.StatusGoingAway, "session closed")
			return
		}
		defer s.Send(session.Leave{ClientID: clientID})
		clog.Info("client joined")

		// Writer goroutine
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for {
				select {
				case <-writeCtx.Done():
					return
				case snap, ok := <-out:
					if !ok {
						// Session closed or dropped us as a slow reader.
						conn.Close(websocket.StatusGoingAway, "session closed")
						return
					}
					for _, msg := range serverMessages(snap) {
						ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
						err := wsjson.Write(ctx, conn, msg)
						cancel()
						if err != nil {
							clog.Debug("write failed", zap.Error(err))
						}
					}
				}
			}
		}()

		// Reader loop
		for {
			ctx, cancel := context.WithTimeout(r.Context(), opts.IdleTimeout)
			_, data, err := conn.Read(ctx)
			cancel()
			if err != nil {
				// Treat clean close/going-away as normal:
				switch websocket.CloseStatus(err) {
				case websocket.StatusNormalClosure, websocket.StatusGoingAway:
					clog.Info("client left")
					return
				}
				// Otherwise, just exit (session.Leave in defer):
				clog.Debug("read failed", zap.Error(err))
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeError(r.Context(), conn, "bad json")
				continue
			}

			cmd, err := toEngineCommand(r.Context(), src, cm)
			if err != nil {
				writeError(r.Context(), conn, err.Error())
				continue
			}

			if !s.Send(session.FromClient{ClientID: clientID, Cmd: cmd}) {
				return
			}
		}
	}
}

func serverMessages(snap session.Snapshot) []types.ServerMessage {
	if snap.Err != nil {
		return []types.ServerMessage{{Type: "Error", Version: snap.Version, Error: snap.Err.Error()}}
	}

	msgs := []types.ServerMessage{{
		Type:    "StateSnapshot",
		Version: snap.Version,
		State:   types.NewStateView(snap.State),
	}}
	if len(snap.Expired) > 0 {
		slots := make([]string, 0, len(snap.Expired))
		for _, slot := range snap.Expired {
			slots = append(slots, string(slot))
		}
		msgs = append(msgs, types.ServerMessage{
			Type:    "CooldownExpired",
			Version: snap.Version,
			Slots:   slots,
			Sound:   snap.State.Sound,
		})
	}
	return msgs
}

func writeError(ctx context.Context, conn *websocket.Conn, msg string) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	_ = wsjson.Write(ctx, conn, types.ServerMessage{Type: "Error", Error: msg})
}

func toEngineCommand(ctx context.Context, src champion.Source, m types.ClientMessage) (engine.Command, error) {
	switch m.Type {
	case "SelectChampion":
		c, err := src.Champion(ctx, m.ChampionID)
		if err != nil {
			return engine.Command{}, err
		}
		return engine.Command{Type: engine.CmdSelectChampion, Champion: c}, nil

	case "SetSummoner":
		slot, err := parseSlot(m.Slot)
		if err != nil {
			return engine.Command{}, err
		}
		return engine.Command{Type: engine.CmdSetSummoner, Slot: slot, Spell: m.Spell}, nil

	case "AdjustLevel":
		slot, err := parseSlot(m.Slot)
		if err != nil {
			return engine.Command{}, err
		}
		return engine.Command{Type: engine.CmdAdjustLevel, Slot: slot, Delta: m.Delta}, nil

	case "AddHaste":
		amount := m.Amount
		if amount == 0 {
			amount = cooldown.HasteIncrement
		}
		return engine.Command{Type: engine.CmdAddHaste, Haste: engine.HasteKind(m.Haste), Amount: amount}, nil

	case "SetHaste":
		return engine.Command{Type: engine.CmdSetHaste, Haste: engine.HasteKind(m.Haste), Amount: m.Amount}, nil

	case "ResetHaste":
		return engine.Command{Type: engine.CmdResetHaste, Haste: engine.HasteKind(m.Haste)}, nil

	case "ToggleCooldown", "StartCooldown", "StopCooldown":
		slot, err := parseSlot(m.Slot)
		if err != nil {
			return engine.Command{}, err
		}
		return engine.Command{Type: engine.CommandType(m.Type), Slot: slot}, nil

	case "ReduceCooldown":
		slot, err := parseSlot(m.Slot)
		if err != nil {
			return engine.Command{}, err
		}
		amount := m.Amount
		if amount == 0 {
			amount = defaultReduceSeconds
		}
		return engine.Command{Type: engine.CmdReduceCooldown, Slot: slot, Amount: amount}, nil

	case "ResetAll":
		return engine.Command{Type: engine.CmdResetAll}, nil

	case "SetSound":
		if m.Enabled == nil {
			return engine.Command{}, errors.New("missing enabled")
		}
		return engine.Command{Type: engine.CmdSetSound, Enabled: *m.Enabled}, nil

	default:
		return engine.Command{}, errUnknownType
	}
}

func parseSlot(name string) (engine.Slot, error) {
	slot, ok := engine.ParseSlot(name)
	if !ok {
		return "", engine.ErrUnknownSlot
	}
	return slot, nil
}
