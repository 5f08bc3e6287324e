package session

import (
	"context"
	"sync"
	"unicode/utf8"

	"classy-weather/internal/domain/gateway/store"
	"classy-weather/internal/domain/usecase/weather"
	"classy-weather/pkg/log"
	"classy-weather/pkg/msg"

	"go.uber.org/zap"
)

// Session owns the current query and its lookup result. Every query change starts a new
// generation; lookups of older generations are cancelled and their results discarded.
type Session struct {
	useCase    weather.UseCase
	queryStore store.QueryStore

	// changeMu orders query changes so the stored query and the session query agree
	changeMu sync.Mutex

	mu         sync.Mutex
	state      State
	generation uint64
	cancel     context.CancelFunc

	// notifyMu is taken before mu is released so listeners see transitions in order
	notifyMu  sync.Mutex
	listeners []Listener
}

func NewSession(useCase weather.UseCase, queryStore store.QueryStore) *Session {
	return &Session{
		useCase:    useCase,
		queryStore: queryStore,
		state:      State{Status: StatusIdle},
	}
}

// Subscribe registers a listener for state transitions.
func (s *Session) Subscribe(listener Listener) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()
	s.listeners = append(s.listeners, listener)
}

// State returns a snapshot of the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Restore applies the last stored query. The returned channel closes when its lookup settles.
// On a load failure the session is left idle and the error is returned.
func (s *Session) Restore(ctx context.Context) (<-chan struct{}, error) {
	s.changeMu.Lock()
	defer s.changeMu.Unlock()

	query, err := s.queryStore.Load(ctx)
	if err != nil {
		log.Warn(msg.GetMessage("store.load-failed", err))
		return s.apply(ctx, fixedQuery("")), err
	}
	return s.apply(ctx, fixedQuery(query)), nil
}

// SetQuery persists query and restarts the lookup sequence for it. The returned channel
// closes when the lookup for this query settles or is superseded.
func (s *Session) SetQuery(ctx context.Context, query string) <-chan struct{} {
	s.changeMu.Lock()
	defer s.changeMu.Unlock()

	if err := s.queryStore.Save(ctx, query); err != nil {
		log.Warn(msg.GetMessage("store.save-failed", err))
	}
	return s.apply(ctx, fixedQuery(query))
}

// Refresh runs the lookup again for the query current at the time of the call.
func (s *Session) Refresh(ctx context.Context) <-chan struct{} {
	s.changeMu.Lock()
	defer s.changeMu.Unlock()

	return s.apply(ctx, func(current State) string { return current.Query })
}

func fixedQuery(query string) func(State) string {
	return func(State) string { return query }
}

// apply starts a new generation for the query chosen by pick, which sees the state under mu.
func (s *Session) apply(ctx context.Context, pick func(State) string) <-chan struct{} {
	done := make(chan struct{})

	s.mu.Lock()
	query := pick(s.state)
	s.generation++
	generation := s.generation
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	if utf8.RuneCountInString(query) < MinQueryLength {
		s.state = State{Status: StatusIdle, Query: query}
		s.publishLocked()
		close(done)
		return done
	}

	lookupCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.state = State{Status: StatusLoading, Query: query}
	s.publishLocked()

	go s.lookup(lookupCtx, cancel, generation, query, done)
	return done
}

func (s *Session) lookup(ctx context.Context, cancel context.CancelFunc, generation uint64, query string, done chan struct{}) {
	defer close(done)
	defer cancel()

	result, err := s.useCase.GetWeather(ctx, query)

	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		log.Debug(msg.GetMessage("weather.session.superseded", query), zap.Uint64("generation", generation))
		return
	}
	s.cancel = nil

	if err != nil {
		log.Warn(msg.GetMessage("weather.session.failed", query, err), zap.Uint64("generation", generation))
		s.state = State{Status: StatusError, Query: query, Error: err.Error()}
	} else {
		s.state = State{Status: StatusLoaded, Query: query, Weather: result}
	}
	s.publishLocked()
}

// publishLocked must be called with mu held and releases it.
func (s *Session) publishLocked() {
	snapshot := s.state
	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, listener := range s.listeners {
		listener(snapshot)
	}
}
