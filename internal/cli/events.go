package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"planner/internal/event"
)

func newAddCmd() *cobra.Command {
	var (
		title       string
		description string
		startText   string
		endText     string
		location    string
		reminder    int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new event",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(title) == "" {
				return fmt.Errorf("--title is required")
			}

			start, err := parseDateTime(startText)
			if err != nil {
				return fmt.Errorf("invalid --start: %w", err)
			}

			// Default span is one hour, matching the add-event form.
			end := start.Add(time.Hour)
			if endText != "" {
				end, err = parseDateTime(endText)
				if err != nil {
					return fmt.Errorf("invalid --end: %w", err)
				}
			}
			if end.Before(start) {
				return fmt.Errorf("--end must not be before --start")
			}

			evt := event.New(strings.TrimSpace(title), description, start, end, location, event.ReminderTime(reminder))
			if err := evt.Validate(); err != nil {
				return err
			}

			app, err := newApp()
			if err != nil {
				return err
			}
			if err := app.events.Save(evt); err != nil {
				return fmt.Errorf("saving event: %w", err)
			}

			format, err := parseFormat()
			if err != nil {
				return err
			}
			return WriteEvent(os.Stdout, evt, format)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Event title (required)")
	cmd.Flags().StringVar(&description, "description", "", "Event description")
	cmd.Flags().StringVar(&startText, "start", "", "Start date/time, e.g. 2026-03-10T18:00 (required)")
	cmd.Flags().StringVar(&endText, "end", "", "End date/time (default: one hour after start)")
	cmd.Flags().StringVar(&location, "location", "", "Event location")
	cmd.Flags().IntVar(&reminder, "reminder", 0, "Reminder lead time in minutes: 0, 5, 15, 30, 60, or 1440")

	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("start")

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all events in stored order",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			format, err := parseFormat()
			if err != nil {
				return err
			}
			return WriteEvents(os.Stdout, app.events.ListAll(), format)
		},
	}
}

func newDayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day <date>",
		Short: "List events on a calendar day (local time)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateTime(args[0])
			if err != nil {
				return err
			}
			app, err := newApp()
			if err != nil {
				return err
			}
			format, err := parseFormat()
			if err != nil {
				return err
			}
			return WriteEvents(os.Stdout, app.events.GetByDate(date), format)
		},
	}
}

func newUpcomingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upcoming",
		Short: "List events from today onward, soonest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			format, err := parseFormat()
			if err != nil {
				return err
			}
			return WriteEvents(os.Stdout, app.events.Upcoming(), format)
		},
	}
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single event",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			evt, ok := app.events.GetByID(args[0])
			if !ok {
				fmt.Fprintf(os.Stderr, "Event not found: %s\n", args[0])
				os.Exit(ExitNotFound)
			}
			format, err := parseFormat()
			if err != nil {
				return err
			}
			return WriteEvent(os.Stdout, evt, format)
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an event (no-op if the id is unknown)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			if err := app.events.DeleteByID(args[0]); err != nil {
				return fmt.Errorf("deleting event: %w", err)
			}
			fmt.Printf("Deleted %s\n", args[0])
			return nil
		},
	}
}
