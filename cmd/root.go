package cmd

import (
	"fmt"

	"github.com/bnema/cc-quota/internal/adapters/render/statusline"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

type renderFlags struct {
	format   string
	noBar    bool
	barWidth float64
	hide     string
	color    bool
}

func (f renderFlags) options(cmd *cobra.Command) (statusline.RenderOptions, error) {
	format, err := statusline.ParseFormat(f.format)
	if err != nil {
		return statusline.RenderOptions{}, err
	}

	return statusline.RenderOptions{
		Format:   format,
		Bar:      !f.noBar,
		BarWidth: f.barWidth,
		Hide:     parseHideList(f.hide, cmd.ErrOrStderr()),
		Color:    f.color,
	}, nil
}

func newRootCmd() *cobra.Command {
	var flags renderFlags

	rootCmd := &cobra.Command{
		Use:           "ccquota",
		Short:         "Claude usage quota for your status line",
		Long:          "ccquota prints your Claude subscription plan and the 5-hour, 7-day and 7-day Sonnet usage windows as a single status line, caching results between invocations.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	pflags := rootCmd.PersistentFlags()
	pflags.StringVarP(&flags.format, "format", "f", string(statusline.FormatPlain), "Output format: plain or json")
	pflags.BoolVar(&flags.noBar, "no-bar", false, "Hide progress bars")
	pflags.Float64Var(&flags.barWidth, "bar-width", statusline.DefaultBarWidth, "Progress bar width in characters")
	pflags.StringVar(&flags.hide, "hide", "", "Comma-separated segments to hide (plan, 5h, 7d, 7d-sonnet)")
	pflags.BoolVar(&flags.color, "color", false, "Colorize plain output")

	app, err := wireApp()

	rootCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		return runStatusLine(cmd, app, flags)
	}
	rootCmd.AddCommand(
		newWatchCmd(app, &flags),
		newCacheCmd(app),
		newConfigCmd(app),
	)
	if err != nil {
		failWith(rootCmd, err)
	}

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// failWith makes every runnable command in the tree report err.
func failWith(cmd *cobra.Command, err error) {
	if cmd.Runnable() {
		cmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
	}
	for _, child := range cmd.Commands() {
		failWith(child, err)
	}
}

func runStatusLine(cmd *cobra.Command, app *app, flags renderFlags) error {
	opts, err := flags.options(cmd)
	if err != nil {
		return err
	}

	snapshot := app.service.GetUsage(cmd.Context())

	rendered, err := app.renderer(snapshot, opts)
	if err != nil {
		return fmt.Errorf("render status line: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
