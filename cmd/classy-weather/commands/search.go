package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"classy-weather/internal/application/session"
	"classy-weather/pkg/msg"
)

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [location...]",
		Short: "Print the forecast of a location, or of the last searched one",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var done <-chan struct{}
			if len(args) == 0 {
				// a load failure is already logged and leaves the session idle
				done, _ = appCtx.session.Restore(ctx)
			} else {
				done = appCtx.session.SetQuery(ctx, strings.Join(args, " "))
			}
			<-done

			state := appCtx.session.State()
			switch state.Status {
			case session.StatusIdle:
				return errors.New(msg.GetMessage("weather.query-too-short", session.MinQueryLength))
			case session.StatusError:
				return errors.New(state.Error)
			}
			return appCtx.presenter.Render(cmd.OutOrStdout(), appCtx.presenter.FromState(state))
		},
	}
}
