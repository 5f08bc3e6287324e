package commands

import (
	"github.com/spf13/cobra"

	"classy-weather/pkg/log"
	"classy-weather/pkg/resource"
)

var (
	home      string
	storeType string
	verbose   bool
	appCtx    *app
)

func Execute() error {
	root := &cobra.Command{
		Use:           "classy-weather",
		Short:         "Look up a place and show its weekly forecast",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			resource.Set("app.home", home)
			resource.Set("app.store.type", storeType)
			if verbose {
				resource.Set("app.log.level", "debug")
			}
			if err := log.SetLevel(resource.GetString("app.log.level")); err != nil {
				return err
			}

			var err error
			appCtx, err = newApp()
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx != nil {
				return appCtx.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", resource.GetString("app.home"), "directory for the file query store")
	root.PersistentFlags().StringVar(&storeType, "store", resource.GetString("app.store.type"), "where the last query is kept: file, redis or memory")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(searchCmd(), watchCmd(), serveCmd())
	return root.Execute()
}
