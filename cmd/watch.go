package cmd

import (
	"fmt"
	"time"

	"github.com/bnema/cc-quota/internal/adapters/render/watch"
	"github.com/bnema/cc-quota/internal/domain"
	"github.com/spf13/cobra"
)

const (
	defaultWatchInterval = 60 * time.Second
	minWatchInterval     = time.Second
)

func newWatchCmd(app *app, flags *renderFlags) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep refreshing the status line until you press q",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if interval < minWatchInterval {
				return fmt.Errorf("--interval must be at least %s, got %s", minWatchInterval, interval)
			}

			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}

			render := func(snapshot *domain.Snapshot) (string, error) {
				return app.renderer(snapshot, opts)
			}

			return watch.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), interval, app.service.GetUsage, render)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", defaultWatchInterval, "Refresh interval")

	return cmd
}
