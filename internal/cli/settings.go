package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planner/internal/settings"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change display preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			format, err := parseFormat()
			if err != nil {
				return err
			}
			return WriteSettings(os.Stdout, app.settings.Get(), format)
		},
	}

	cmd.AddCommand(newSettingsSetCmd())
	return cmd
}

func newSettingsSetCmd() *cobra.Command {
	var (
		theme         string
		weekStart     string
		notifications bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more preferences, leaving the rest untouched",
		RunE: func(cmd *cobra.Command, args []string) error {
			var patch settings.Patch

			if cmd.Flags().Changed("theme") {
				t, err := settings.ParseTheme(theme)
				if err != nil {
					return err
				}
				patch.Theme = &t
			}
			if cmd.Flags().Changed("week-start") {
				day, err := settings.ParseWeekStart(weekStart)
				if err != nil {
					return err
				}
				patch.FirstDayOfWeek = &day
			}
			if cmd.Flags().Changed("notifications") {
				patch.NotificationsEnabled = &notifications
			}

			if patch.Theme == nil && patch.FirstDayOfWeek == nil && patch.NotificationsEnabled == nil {
				return fmt.Errorf("nothing to change (use --theme, --week-start, or --notifications)")
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			if err := app.settings.Save(patch); err != nil {
				return fmt.Errorf("saving settings: %w", err)
			}

			format, err := parseFormat()
			if err != nil {
				return err
			}
			return WriteSettings(os.Stdout, app.settings.Get(), format)
		},
	}

	cmd.Flags().StringVar(&theme, "theme", "", "Theme: light, dark, or auto")
	cmd.Flags().StringVar(&weekStart, "week-start", "", "First day of week: sunday or monday")
	cmd.Flags().BoolVar(&notifications, "notifications", true, "Enable or disable notifications")

	return cmd
}
