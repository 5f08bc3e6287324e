package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"classy-weather/internal/application/controller"
	"classy-weather/internal/application/middleware"
	"classy-weather/internal/application/schedule"
	"classy-weather/internal/domain/usecase/health"
	"classy-weather/pkg/log"
	"classy-weather/pkg/msg"
	"classy-weather/pkg/resource"
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the forecast lookup over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Info(msg.GetMessage("app.start"))
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			e := echo.New()
			e.HideBanner = true
			e.HidePort = true
			middleware.SetupRequestLogger(e)
			middleware.SetupRateLimiter(e, resource.GetFloat64("app.server.rate-limit"))
			api := e.Group(resource.GetString("app.server.context-path"))

			// Init UseCase
			healthUseCase := health.NewHealthUseCase(appCtx.queryStore)

			// Init Controller
			healthController := controller.NewHealthController(api, healthUseCase)
			weatherController := controller.NewWeatherController(api, appCtx.useCase, appCtx.session, appCtx.presenter)

			// Init Routes
			healthController.InitHealthRoutes()
			weatherController.InitWeatherRoutes()

			if _, err := appCtx.session.Restore(ctx); err != nil {
				log.Warnf("starting with an empty query: %v", err)
			}

			// Init Schedule
			forecastScheduler := schedule.NewForecastScheduler(appCtx.session, resource.GetString("app.weather.refresh.cron"))
			if err := forecastScheduler.InitForecastScheduleTasks(); err != nil {
				return err
			}
			defer forecastScheduler.Stop()

			errCh := make(chan error, 1)
			go func() {
				log.Info(msg.GetMessage("app.started", port))
				if err := e.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := e.Shutdown(shutdownCtx); err != nil {
				return err
			}
			log.Info(msg.GetMessage("app.stopped"))
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", resource.GetString("app.server.port"), "HTTP port")
	return cmd
}
