package schedule

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"classy-weather/internal/application/session"
	"classy-weather/internal/domain/entity"
	"classy-weather/internal/domain/gateway/store"
)

type countingUseCase struct {
	calls atomic.Int32
}

func (u *countingUseCase) ResolvePlace(context.Context, string) (*entity.Place, error) {
	return nil, errors.New("not used")
}

func (u *countingUseCase) FetchForecast(context.Context, entity.Place) (*entity.ForecastSeries, error) {
	return nil, errors.New("not used")
}

func (u *countingUseCase) GetWeather(_ context.Context, query string) (*entity.Weather, error) {
	u.calls.Add(1)
	return &entity.Weather{Place: entity.Place{Name: query, CountryCode: "PT"}}, nil
}

func TestRefreshForecast_SkipsShortQuery(t *testing.T) {
	uc := &countingUseCase{}
	s := session.NewSession(uc, store.NewMemoryQueryStore(""))

	NewForecastScheduler(s, "@every 1h").RefreshForecast()

	if got := uc.calls.Load(); got != 0 {
		t.Fatalf("expected no lookup, got %d", got)
	}
}

func TestRefreshForecast_RerunsCurrentQuery(t *testing.T) {
	uc := &countingUseCase{}
	s := session.NewSession(uc, store.NewMemoryQueryStore(""))

	select {
	case <-s.SetQuery(context.Background(), "Lisbon"):
	case <-time.After(2 * time.Second):
		t.Fatal("initial lookup did not settle")
	}

	NewForecastScheduler(s, "@every 1h").RefreshForecast()

	if got := uc.calls.Load(); got != 2 {
		t.Fatalf("expected 2 lookups, got %d", got)
	}
	if state := s.State(); state.Status != session.StatusLoaded || state.Query != "Lisbon" {
		t.Fatalf("unexpected state %+v", state)
	}
}

func TestInitForecastScheduleTasks_RejectsInvalidCron(t *testing.T) {
	s := session.NewSession(&countingUseCase{}, store.NewMemoryQueryStore(""))

	if err := NewForecastScheduler(s, "not a cron").InitForecastScheduleTasks(); err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
}

func TestStop_AfterStart(t *testing.T) {
	s := session.NewSession(&countingUseCase{}, store.NewMemoryQueryStore(""))
	scheduler := NewForecastScheduler(s, "@every 1h")

	if err := scheduler.InitForecastScheduleTasks(); err != nil {
		t.Fatalf("init: %v", err)
	}
	scheduler.Stop()
}
