package commands

import (
	"bufio"

	"github.com/spf13/cobra"

	"classy-weather/internal/application/session"
	"classy-weather/pkg/log"
	"classy-weather/pkg/msg"
)

func watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Read locations from stdin, one per line, and print each forecast as it arrives",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			appCtx.session.Subscribe(func(state session.State) {
				if state.Status == session.StatusIdle {
					return
				}
				if err := appCtx.presenter.Render(out, appCtx.presenter.FromState(state)); err != nil {
					log.Warnf("failed to render state: %v", err)
				}
			})

			// a load failure is already logged and leaves the session idle
			done, _ := appCtx.session.Restore(ctx)
			if appCtx.session.State().Status == session.StatusIdle {
				cmd.Println(msg.GetMessage("weather.idle"))
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				done = appCtx.session.SetQuery(ctx, scanner.Text())
			}
			<-done
			return scanner.Err()
		},
	}
}
