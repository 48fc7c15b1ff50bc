package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planner/internal/calendar"
	"planner/internal/event"
)

func newExportCmd() *cobra.Command {
	var (
		out string
		id  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export events as an iCalendar (.ics) file",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			var events []*event.Event
			if id != "" {
				evt, ok := app.events.GetByID(id)
				if !ok {
					fmt.Fprintf(os.Stderr, "Event not found: %s\n", id)
					os.Exit(ExitNotFound)
				}
				events = []*event.Event{evt}
			} else {
				events = app.events.ListAll()
			}

			ics := calendar.Generate(events)
			if out == "" {
				fmt.Print(ics)
				return nil
			}
			if err := os.WriteFile(out, []byte(ics), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}
			fmt.Printf("Wrote %d event(s) to %s\n", len(events), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&id, "id", "", "Export a single event by id")

	return cmd
}
