package schedule

import (
	"context"

	"classy-weather/internal/application/session"
	"classy-weather/pkg/log"
	"classy-weather/pkg/msg"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ForecastScheduler refreshes the session forecast on a cron schedule
type ForecastScheduler struct {
	cron           *cron.Cron
	session        *session.Session
	cronExpression string
}

func NewForecastScheduler(session *session.Session, cronExpression string) *ForecastScheduler {
	return &ForecastScheduler{
		cron:           cron.New(),
		session:        session,
		cronExpression: cronExpression,
	}
}

// InitForecastScheduleTasks registers the refresh job and starts the scheduler
func (s *ForecastScheduler) InitForecastScheduleTasks() error {
	if _, err := s.cron.AddFunc(s.cronExpression, s.RefreshForecast); err != nil {
		return err
	}

	s.cron.Start()
	log.Infof("Forecast refresh scheduler started with cron expression: %s", s.cronExpression)
	return nil
}

// RefreshForecast re-runs the lookup of the current session query and waits for it to settle
func (s *ForecastScheduler) RefreshForecast() {
	runID := uuid.New().String()

	state := s.session.State()
	if len([]rune(state.Query)) < session.MinQueryLength {
		log.Debug(msg.GetMessage("weather.refresh.skipped"), zap.String("run_id", runID))
		return
	}

	log.Info(msg.GetMessage("weather.refresh.start"), zap.String("run_id", runID), zap.String("query", state.Query))
	<-s.session.Refresh(context.Background())
	log.Info(msg.GetMessage("weather.refresh.end"),
		zap.String("run_id", runID),
		zap.String("status", string(s.session.State().Status)))
}

// Stop gracefully stops the scheduler, waiting for a running refresh
func (s *ForecastScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
