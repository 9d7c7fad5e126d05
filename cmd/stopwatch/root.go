package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/stopwatch/internal/stopwatch"
	"github.com/alexisbeaulieu97/stopwatch/internal/tui"
)

type rootFlags struct {
	configPath string
	logLevel   string
	ephemeral  bool
}

var errNotATerminal = errors.New("stopwatch needs an interactive terminal")

// isTerminal reports whether stdout is attached to a terminal.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "stopwatch",
		Short:         "A terminal stopwatch with laps",
		Long:          "Start, stop, reset and lap a centisecond stopwatch.\n\nKeys: s start, t stop, r reset, l lap, d theme, q quit.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal() {
				return errNotATerminal
			}

			app, err := newAppContext(cmd.Context(), flags, "stopwatch")
			if err != nil {
				return err
			}
			defer app.Close()

			return runStopwatch(cmd.Context(), app)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file (default ~/.stopwatch/config.yaml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override the configured log level")
	cmd.PersistentFlags().BoolVar(&flags.ephemeral, "ephemeral", false, "Keep preferences in memory for this run only")

	cmd.AddCommand(newThemeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runStopwatch(ctx context.Context, app *AppContext) error {
	log := app.Logger
	cfg := app.Config

	m := tui.NewModel(tui.Options{
		Stopwatch: stopwatch.Options{
			Step:     cfg.Timer.TickInterval,
			LapLimit: cfg.Timer.LapLimit,
		},
		ResetNotice: cfg.Timer.ResetNotice,
		Theme:       app.Theme,
		Logger:      log,
	})

	log.With("theme", app.Theme.Current().String()).Info("launching stopwatch")

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		log.Error(err, "stopwatch execution failed")
		return fmt.Errorf("failed to run stopwatch: %w", err)
	}

	if done, ok := final.(tui.Model); ok {
		watch := done.Stopwatch()
		log.WithFields(map[string]any{
			"elapsed": stopwatch.FormatTime(watch.Elapsed()),
			"laps":    watch.LapCount(),
		}).Info("stopwatch closed")
	}

	return nil
}
