package session_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"classy-weather/internal/application/session"
	"classy-weather/internal/domain/entity"
	"classy-weather/internal/domain/gateway/store"
	"classy-weather/internal/domain/model"
	"classy-weather/internal/domain/usecase/weather"
)

// scriptedUseCase answers GetWeather from fixed tables. A query with a gate blocks until the gate
// is closed, ignoring cancellation, like a collaborator that does not honour the context.
type scriptedUseCase struct {
	mu         sync.Mutex
	calls      []string
	gates      map[string]chan struct{}
	errs       map[string]error
	contextErr map[string]error
}

func newScriptedUseCase() *scriptedUseCase {
	return &scriptedUseCase{
		gates:      map[string]chan struct{}{},
		errs:       map[string]error{},
		contextErr: map[string]error{},
	}
}

func (u *scriptedUseCase) ResolvePlace(context.Context, string) (*entity.Place, error) {
	panic("not used by the session")
}

func (u *scriptedUseCase) FetchForecast(context.Context, entity.Place) (*entity.ForecastSeries, error) {
	panic("not used by the session")
}

func (u *scriptedUseCase) GetWeather(ctx context.Context, query string) (*entity.Weather, error) {
	u.mu.Lock()
	u.calls = append(u.calls, query)
	gate := u.gates[query]
	err := u.errs[query]
	u.mu.Unlock()

	if gate != nil {
		<-gate
	}

	u.mu.Lock()
	u.contextErr[query] = ctx.Err()
	u.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return &entity.Weather{Place: entity.Place{Name: query, CountryCode: "DE"}}, nil
}

func (u *scriptedUseCase) callCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.calls)
}

func wait(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("lookup did not settle")
	}
}

func TestSetQuery_ShortQueryClearsWithoutLookup(t *testing.T) {
	uc := newScriptedUseCase()
	s := session.NewSession(uc, store.NewMemoryQueryStore(""))

	wait(t, s.SetQuery(context.Background(), "Berlin"))
	if s.State().Status != session.StatusLoaded {
		t.Fatalf("expected LOADED, got %+v", s.State())
	}

	for _, query := range []string{"B", ""} {
		wait(t, s.SetQuery(context.Background(), query))
		state := s.State()
		if state.Status != session.StatusIdle || state.Weather != nil || state.Error != "" || state.Query != query {
			t.Fatalf("query %q: expected cleared idle state, got %+v", query, state)
		}
	}

	if uc.callCount() != 1 {
		t.Fatalf("expected a single lookup, got %d", uc.callCount())
	}
}

func TestSetQuery_NotFound(t *testing.T) {
	uc := newScriptedUseCase()
	uc.errs["Atlantis"] = weather.ErrLocationNotFound
	s := session.NewSession(uc, store.NewMemoryQueryStore(""))

	wait(t, s.SetQuery(context.Background(), "Atlantis"))

	state := s.State()
	if state.Status != session.StatusError || state.Error != "Location not found" || state.Weather != nil {
		t.Fatalf("unexpected state %+v", state)
	}
}

func TestSetQuery_ListenerSeesLoadingThenLoaded(t *testing.T) {
	uc := newScriptedUseCase()
	s := session.NewSession(uc, store.NewMemoryQueryStore(""))

	var mu sync.Mutex
	var seen []session.Status
	s.Subscribe(func(state session.State) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, state.Status)
	})

	wait(t, s.SetQuery(context.Background(), "Berlin"))

	mu.Lock()
	defer mu.Unlock()
	if len(seen) != 2 || seen[0] != session.StatusLoading || seen[1] != session.StatusLoaded {
		t.Fatalf("unexpected transitions %v", seen)
	}
}

func TestSetQuery_StaleResultIsDiscarded(t *testing.T) {
	uc := newScriptedUseCase()
	slow := make(chan struct{})
	uc.gates["Berlin"] = slow
	s := session.NewSession(uc, store.NewMemoryQueryStore(""))

	first := s.SetQuery(context.Background(), "Berlin")
	second := s.SetQuery(context.Background(), "Paris")
	wait(t, second)

	if state := s.State(); state.Status != session.StatusLoaded || state.Weather.Place.Name != "Paris" {
		t.Fatalf("expected Paris loaded, got %+v", state)
	}

	close(slow)
	wait(t, first)

	if state := s.State(); state.Weather == nil || state.Weather.Place.Name != "Paris" || state.Query != "Paris" {
		t.Fatalf("stale lookup overwrote state: %+v", state)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.contextErr["Berlin"] == nil {
		t.Fatal("superseded lookup context was not cancelled")
	}
	if uc.contextErr["Paris"] != nil {
		t.Fatalf("current lookup context cancelled: %v", uc.contextErr["Paris"])
	}
}

func TestSetQuery_PersistsQuery(t *testing.T) {
	queryStore := store.NewMemoryQueryStore("")
	s := session.NewSession(newScriptedUseCase(), queryStore)

	wait(t, s.SetQuery(context.Background(), "B"))
	wait(t, s.SetQuery(context.Background(), "Berlin"))

	got, _ := queryStore.Load(context.Background())
	if got != "Berlin" {
		t.Fatalf("stored query %q", got)
	}
}

func TestRestore_AppliesStoredQuery(t *testing.T) {
	uc := newScriptedUseCase()
	s := session.NewSession(uc, store.NewMemoryQueryStore("Lisbon"))

	done, err := s.Restore(context.Background())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	wait(t, done)

	if state := s.State(); state.Status != session.StatusLoaded || state.Query != "Lisbon" {
		t.Fatalf("unexpected state %+v", state)
	}
}

func TestRestore_EmptyStoreStaysIdle(t *testing.T) {
	uc := newScriptedUseCase()
	s := session.NewSession(uc, store.NewMemoryQueryStore(""))

	done, err := s.Restore(context.Background())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	wait(t, done)

	if s.State().Status != session.StatusIdle || uc.callCount() != 0 {
		t.Fatalf("unexpected state %+v after %d calls", s.State(), uc.callCount())
	}
}

func TestRefresh_RerunsCurrentQuery(t *testing.T) {
	uc := newScriptedUseCase()
	s := session.NewSession(uc, store.NewMemoryQueryStore(""))

	wait(t, s.SetQuery(context.Background(), "Berlin"))
	wait(t, s.Refresh(context.Background()))

	if uc.callCount() != 2 {
		t.Fatalf("expected 2 lookups, got %d", uc.callCount())
	}
	if s.State().Status != session.StatusLoaded {
		t.Fatalf("unexpected state %+v", s.State())
	}
}

func TestRefresh_ConcurrentSetQueryKeepsNewestQuery(t *testing.T) {
	queryStore := store.NewMemoryQueryStore("")
	s := session.NewSession(newScriptedUseCase(), queryStore)

	for i := 0; i < 2000; i++ {
		wait(t, s.SetQuery(context.Background(), "Berlin"))

		start := make(chan struct{})
		dones := make(chan (<-chan struct{}), 2)
		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			<-start
			dones <- s.Refresh(context.Background())
		}()
		go func() {
			defer wg.Done()
			<-start
			dones <- s.SetQuery(context.Background(), fmt.Sprintf("Paris%d", i))
		}()
		close(start)
		wg.Wait()
		close(dones)
		for done := range dones {
			wait(t, done)
		}

		state := s.State()
		stored, _ := queryStore.Load(context.Background())
		if state.Query != stored || state.Status != session.StatusLoaded {
			t.Fatalf("iteration %d: session on %q (%s), store on %q", i, state.Query, state.Status, stored)
		}
	}
}

func TestSetQuery_ConcurrentCallsAgreeWithStore(t *testing.T) {
	queryStore := store.NewMemoryQueryStore("")
	s := session.NewSession(newScriptedUseCase(), queryStore)

	for i := 0; i < 500; i++ {
		var wg sync.WaitGroup
		dones := make(chan (<-chan struct{}), 4)
		for _, query := range []string{"Berlin", "Paris", "Lisbon", "Oslo"} {
			wg.Add(1)
			go func(query string) {
				defer wg.Done()
				dones <- s.SetQuery(context.Background(), query)
			}(query)
		}
		wg.Wait()
		close(dones)
		for done := range dones {
			wait(t, done)
		}

		stored, _ := queryStore.Load(context.Background())
		if state := s.State(); state.Query != stored {
			t.Fatalf("iteration %d: session on %q, store on %q", i, state.Query, stored)
		}
	}
}

type brokenStore struct{}

func (brokenStore) Load(context.Context) (string, error) { return "", errors.New("disk unavailable") }

func (brokenStore) Save(context.Context, string) error { return errors.New("disk unavailable") }

func (brokenStore) Health() model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusDown}
}

func TestRestore_LoadFailureLeavesSessionUsable(t *testing.T) {
	s := session.NewSession(newScriptedUseCase(), brokenStore{})

	done, err := s.Restore(context.Background())
	if err == nil {
		t.Fatal("expected load error")
	}
	wait(t, done)
	if s.State().Status != session.StatusIdle {
		t.Fatalf("unexpected state %+v", s.State())
	}

	wait(t, s.SetQuery(context.Background(), "Berlin"))
	if state := s.State(); state.Status != session.StatusLoaded || state.Query != "Berlin" {
		t.Fatalf("unexpected state %+v", state)
	}
}
