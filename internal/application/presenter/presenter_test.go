package presenter_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"classy-weather/internal/application/presenter"
	"classy-weather/internal/application/session"
	"classy-weather/internal/domain/gateway/api"
	"classy-weather/internal/domain/gateway/store"
	"classy-weather/internal/domain/usecase/weather"
	pkghttp "classy-weather/pkg/http"
)

const berlinGeocoding = `{"results":[{"id":2950159,"name":"Berlin","latitude":52.52437,"longitude":13.41053,
"timezone":"Europe/Berlin","country_code":"DE","country":"Germany","admin1":"Land Berlin"}]}`

const berlinForecast = `{"latitude":52.52,"longitude":13.419998,"timezone":"Europe/Berlin","daily":{
"time":["2024-01-10","2024-01-11","2024-01-12","2024-01-13","2024-01-14","2024-01-15","2024-01-16"],
"weathercode":[0,2,3,61,71,95,59],
"temperature_2m_max":[1.2,3.0,-0.4,5.9,2.1,4.4,6.0],
"temperature_2m_min":[-4.7,-2.0,-3.1,0.2,-1.5,1.9,3.0]}}`

func fakeOpenMeteo(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/search":
			if r.URL.Query().Get("name") == "Berlin" {
				_, _ = w.Write([]byte(berlinGeocoding))
				return
			}
			_, _ = w.Write([]byte(`{"generationtime_ms":0.2}`))
		case "/v1/forecast":
			_, _ = w.Write([]byte(berlinForecast))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newSession(t *testing.T) *session.Session {
	srv := fakeOpenMeteo(t)
	gateway := api.NewWeatherGateway(srv.URL, srv.URL, pkghttp.ClientOptions{})
	return session.NewSession(weather.NewWeatherUseCase(7, gateway), store.NewMemoryQueryStore(""))
}

func fixedNow() time.Time {
	// Wednesday 2024-01-10, 12:00 in Berlin
	return time.Date(2024, 1, 10, 11, 0, 0, 0, time.UTC)
}

func TestEndToEnd_Berlin(t *testing.T) {
	s := newSession(t)
	p := presenter.NewPresenter(fixedNow)

	<-s.SetQuery(context.Background(), "Berlin")
	state := s.State()
	if state.Status != session.StatusLoaded {
		t.Fatalf("expected LOADED, got %+v", state)
	}
	if state.Weather.Place.CountryCode != "DE" {
		t.Fatalf("country code %q", state.Weather.Place.CountryCode)
	}

	view := p.FromState(state)
	if view.Header != "Weather for Berlin \U0001F1E9\U0001F1EA" {
		t.Fatalf("header %q", view.Header)
	}
	if len(view.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(view.Days))
	}

	wantLabels := []string{"Today", "Thu", "Fri", "Sat", "Sun", "Mon", "Tue"}
	wantMin := []string{"-5°", "-2°", "-4°", "0°", "-2°", "1°", "3°"}
	wantMax := []string{"2°", "3°", "0°", "6°", "3°", "5°", "6°"}
	wantIcons := []string{"☀️", "⛅️", "☁️", "🌦", "🌨", "🌩", "NOT FOUND"}
	for i, day := range view.Days {
		if day.Label != wantLabels[i] || day.Min != wantMin[i] || day.Max != wantMax[i] || day.Icon != wantIcons[i] {
			t.Errorf("day %d = %+v, want %s %s %s %s", i, day, wantLabels[i], wantIcons[i], wantMin[i], wantMax[i])
		}
	}

	var out bytes.Buffer
	if err := p.Render(&out, view); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("expected header and 7 lines, got %q", out.String())
	}
	if lines[0] != "Weather for Berlin 🇩🇪" {
		t.Fatalf("first line %q", lines[0])
	}
	if !strings.Contains(lines[1], "Today") || !strings.HasSuffix(lines[1], "-5° — 2°") {
		t.Fatalf("first day line %q", lines[1])
	}
}

func TestEndToEnd_NotFound(t *testing.T) {
	s := newSession(t)
	p := presenter.NewPresenter(fixedNow)

	<-s.SetQuery(context.Background(), "Atlantis")

	view := p.FromState(s.State())
	if view.Status != string(session.StatusError) || view.Header != "Location not found" || len(view.Days) != 0 {
		t.Fatalf("unexpected view %+v", view)
	}

	var out bytes.Buffer
	if err := p.Render(&out, view); err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.String() != "Location not found\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestFromState_LoadingAndIdle(t *testing.T) {
	p := presenter.NewPresenter(fixedNow)

	loading := p.FromState(session.State{Status: session.StatusLoading, Query: "Berlin"})
	if loading.Header != "Loading..." || len(loading.Days) != 0 {
		t.Fatalf("unexpected loading view %+v", loading)
	}

	idle := p.FromState(session.State{Status: session.StatusIdle, Query: "B"})
	if idle.Header != "" || idle.Place != nil {
		t.Fatalf("unexpected idle view %+v", idle)
	}

	var out bytes.Buffer
	if err := p.Render(&out, idle); err != nil || out.Len() != 0 {
		t.Fatalf("idle view must render nothing, got %q (%v)", out.String(), err)
	}
}
