package main

import (
	"log/slog"

	"github.com/Veraticus/icd-suggest/internal/config"
	"github.com/Veraticus/icd-suggest/internal/tui"
	"github.com/Veraticus/icd-suggest/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func formCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form",
		Short: "Open the interactive diagnosis form",
		Long: `Open a terminal form for entering a diagnosis and reviewing the suggested code.

The form waits for a short, configurable delay before answering to mimic a
remote prediction service. Set --latency 0 to answer immediately.`,
		RunE: runForm,
	}

	cmd.Flags().Duration("latency", 0, "simulated prediction delay (default from config, 1.5s)")
	cmd.Flags().String("theme", "", "color theme (default, mono)")
	cmd.Flags().String("debug-log", "", "write debug logs to this file while the form runs")

	_ = viper.BindPFlag("form.latency", cmd.Flags().Lookup("latency"))
	_ = viper.BindPFlag("form.theme", cmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("form.debug_log", cmd.Flags().Lookup("debug-log"))

	return cmd
}

func runForm(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	theme, err := themes.Lookup(settings.Form.Theme)
	if err != nil {
		return err
	}

	slog.Debug("Opening diagnosis form",
		"latency", settings.Form.Latency,
		"theme", settings.Form.Theme,
		"debug_log", settings.Form.DebugLog)

	return tui.Run(cmd.Context(),
		tui.WithTheme(theme),
		tui.WithLatency(settings.Form.Latency),
		tui.WithDebugLog(config.ExpandPath(settings.Form.DebugLog)),
	)
}
