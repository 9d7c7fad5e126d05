package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stopwatch/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the stored theme preference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd.Context(), flags, "theme")
			if err != nil {
				return err
			}
			defer app.Close()

			fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Current())
			return nil
		},
	}

	cmd.AddCommand(newThemeToggleCmd(flags))
	cmd.AddCommand(newThemeSetCmd(flags))

	return cmd
}

func newThemeToggleCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Switch between the dark and light theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd.Context(), flags, "theme.toggle")
			if err != nil {
				return err
			}
			defer app.Close()

			fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Toggle(cmd.Context()))
			return nil
		},
	}
}

func newThemeSetCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:       "set <dark|light>",
		Short:     "Store a specific theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Dark), string(theme.Light)},
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := theme.Parse(args[0])
			if err != nil {
				return err
			}

			app, err := newAppContext(cmd.Context(), flags, "theme.set")
			if err != nil {
				return err
			}
			defer app.Close()

			fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Set(cmd.Context(), selected))
			return nil
		},
	}
}
