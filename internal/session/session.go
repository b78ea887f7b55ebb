package session

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/DoyleJ11/lol-cooldown-tracker/internal/clock"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/engine"
	"github.com/DoyleJ11/lol-cooldown-tracker/internal/notify"
)

const DefaultTickInterval = 100 * time.Millisecond

type Msg interface{ isSessionMsg() }

type FromClient struct {
	ClientID string // rejected commands are reported back to this client only
	Cmd      engine.Command
}

func (FromClient) isSessionMsg() {}

type Join struct {
	ClientID string
	Outbox   chan Snapshot // where this client wants to receive snapshots
}

func (Join) isSessionMsg() {}

type Leave struct{ ClientID string }

func (Leave) isSessionMsg() {}

type Shutdown struct{}

func (Shutdown) isSessionMsg() {}

type GetState struct {
	Reply chan View
}

func (GetState) isSessionMsg() {}

type Snapshot struct {
	Version int
	State   engine.State
	Expired []engine.Slot // slots that reached zero in this update
	Err     error         // set only on a reply to a rejected command
}

type View struct {
	Version    int
	NumClients int
	State      engine.State
}

type Options struct {
	Code     string
	Clock    clock.Clock
	Interval time.Duration
	Notifier notify.Notifier
	Log      *zap.Logger
}

// Session owns one tracker state. Every mutation, including ticks, happens
// on the loop goroutine, so a stop processed before a tick leaves nothing
// for that tick to advance.
type Session struct {
	code     string
	inbox    chan Msg
	state    engine.State
	version  int
	clients  map[string]chan Snapshot
	clock    clock.Clock
	interval time.Duration
	notifier notify.Notifier
	log      *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
}

func New(parent context.Context, initial engine.State, opts Options) *Session {
	ctx, cancel := context.WithCancel(parent)

	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultTickInterval
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}

	s := &Session{
		code:     opts.Code,
		inbox:    make(chan Msg, 64), // Small buffer
		state:    initial,
		version:  0,
		clients:  make(map[string]chan Snapshot),
		clock:    opts.Clock,
		interval: opts.Interval,
		notifier: opts.Notifier,
		log:      opts.Log.With(zap.String("session", opts.Code)),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	go s.loop()
	return s
}

func (s *Session) loop() {
	ticker := s.clock.NewTicker(s.interval)
	defer close(s.done)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			s.shutdown()
			return

		case <-ticker.C():
			s.tick()

		case m := <-s.inbox:
			switch msg := m.(type) {
			case Join:
				// Register client + send current snapshot immediately
				s.clients[msg.ClientID] = msg.Outbox
				msg.Outbox <- Snapshot{Version: s.version, State: s.state}

			case Leave:
				delete(s.clients, msg.ClientID)

			case FromClient:
				events, newState, err := engine.Apply(s.state, msg.Cmd)
				if err != nil {
					s.log.Debug("command rejected", zap.String("type", string(msg.Cmd.Type)), zap.Error(err))
					s.reply(msg.ClientID, Snapshot{Version: s.version, State: s.state, Err: err})
					break
				}
				if len(events) == 0 {
					break
				}
				s.commit(newState, events)

			case GetState:
				// test-only: reflect internal state without data races
				msg.Reply <- View{
					Version:    s.version,
					NumClients: len(s.clients),
					State:      s.state,
				}

			case Shutdown:
				s.shutdown()
				return
			}
		}
	}
}

func (s *Session) tick() {
	if !s.state.Active() {
		return
	}
	events, newState, err := engine.Apply(s.state, engine.Command{Type: engine.CmdTick, Elapsed: s.interval})
	if err != nil {
		s.log.Error("tick failed", zap.Error(err))
		return
	}
	s.commit(newState, events)
}

func (s *Session) commit(newState engine.State, events []engine.Event) {
	s.state = newState
	s.version++

	expired := engine.Expired(events)
	for _, slot := range expired {
		s.log.Debug("cooldown expired", zap.String("slot", string(slot)))
		if s.notifier != nil {
			s.notifier.CooldownExpired(notify.Expiry{
				Session:  s.code,
				Slot:     slot,
				Champion: s.state.ChampionName,
				Sound:    s.state.Sound,
			})
		}
	}

	s.broadcast(Snapshot{Version: s.version, State: s.state, Expired: expired})
}

func (s *Session) shutdown() {
	for id, ch := range s.clients {
		close(ch) // Tell client no more snapshots
		delete(s.clients, id)
	}
	s.cancel()
}

func (s *Session) broadcast(snap Snapshot) {
	for id, ch := range s.clients {
		select {
		case ch <- snap:
			//ok
		default:
			// Client is slow/full - drop them.
			s.log.Info("dropping slow client", zap.String("client", id))
			close(ch)
			delete(s.clients, id)
		}
	}
}

func (s *Session) reply(clientID string, snap Snapshot) {
	ch, ok := s.clients[clientID]
	if !ok {
		return
	}
	select {
	case ch <- snap:
	default:
	}
}

// Expose the inbox so tests or WS layer can send messages.
func (s *Session) Inbox() chan<- Msg { return s.inbox }

// Send delivers m unless the session has stopped. It reports whether the
// message was accepted.
func (s *Session) Send(m Msg) bool {
	select {
	case s.inbox <- m:
		return true
	case <-s.ctx.Done():
		return false
	}
}

func (s *Session) Code() string { return s.code }

// Done is closed once the loop has exited.
func (s *Session) Done() <-chan struct{} { return s.done }
