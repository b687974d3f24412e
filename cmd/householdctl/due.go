package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/SchwenderOne/roscher4gpt5/internal/models"
	"github.com/SchwenderOne/roscher4gpt5/internal/recurrence"
)

func dueCmd() *cobra.Command {
	var (
		kind   string
		window int
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "due",
		Short: "List chores and plants that are due or coming up",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var k models.TaskKind
			if kind != "" {
				var err error
				if k, err = models.ParseTaskKind(kind); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("window") {
				window = cfg.UpcomingWindowDays
			}
			if window < 0 {
				return fmt.Errorf("--window must not be negative, got %d", window)
			}

			h, err := openHousehold(cmd.Context())
			if err != nil {
				return err
			}
			defer h.Close()

			tasks, err := h.store.ListTasks(cmd.Context(), k)
			if err != nil {
				return err
			}
			plain := make([]models.RecurringTask, 0, len(tasks))
			for _, t := range tasks {
				plain = append(plain, *t)
			}

			b := recurrence.Schedule(plain, h.today, window)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Today is %s, looking %d days ahead.\n\n", h.today, window)
			if len(b.Due)+len(b.Upcoming) == 0 && !all {
				fmt.Fprintln(out, dimStyle.Render("Nothing due."))
				return nil
			}

			entries := make([]recurrence.Entry, 0, len(b.Due)+len(b.Upcoming)+len(b.Later))
			entries = append(entries, b.Due...)
			entries = append(entries, b.Upcoming...)
			if all {
				entries = append(entries, b.Later...)
			}
			printEntries(out, entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "only cleaning or plants")
	cmd.Flags().IntVar(&window, "window", 0, "upcoming window in days (default: $UPCOMING_WINDOW_DAYS)")
	cmd.Flags().BoolVar(&all, "all", false, "also list tasks beyond the window")
	return cmd
}

func printEntries(out io.Writer, entries []recurrence.Entry) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("Kind"),
		headerStyle.Render("Name"),
		headerStyle.Render("Next due"),
		headerStyle.Render("Status"),
		headerStyle.Render("Assignee"))

	for _, e := range entries {
		label := e.Label
		if e.Status == recurrence.StatusOverdue {
			label = alertStyle.Render(label)
		}
		assignee := e.Task.Assignee
		if assignee == "" {
			assignee = dimStyle.Render("-")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Task.Kind, e.Task.Name, e.NextDue, label, assignee)
	}
}
