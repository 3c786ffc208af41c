package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/limbo/focusflow/internal/ui"
	"github.com/limbo/focusflow/pkg/entity"
)

func optionalDate(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return ""
}

func newDayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day [date]",
		Short: "Show tasks, money and journal for a day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := current.app.Views.Day(cmd.Context(), optionalDate(args))
			if err != nil {
				return err
			}
			outln(ui.Heading(ui.IconCal, view.Date), ui.Muted.Render(fmt.Sprintf("%d done, %d open", view.Completed, view.Open)))
			if len(view.Tasks) == 0 {
				outln(ui.Muted.Render("No tasks for this day"))
			}
			for _, t := range view.Tasks {
				outln(ui.TaskLine(t))
			}
			if len(view.Transactions) > 0 {
				outln()
				outln(ui.H2.Render(ui.IconMoney + " money"))
				for _, txn := range view.Transactions {
					outln(ui.Money(txn.Signed()), txn.Description)
				}
				outln(ui.LabelValue("day", ui.Money(view.Balance)), ui.LabelValue("total", ui.Money(view.GlobalBalance)))
			}
			if hasJournal(view.Journal) {
				outln()
				outln(ui.H2.Render(ui.IconJournal + " journal"))
				for _, g := range view.Journal.Grateful {
					if g != "" {
						outln(" •", g)
					}
				}
				if view.Journal.Thoughts != "" {
					outln(ui.Muted.Render(view.Journal.Thoughts))
				}
			}
			outln()
			outln(ui.XPBar(view.Stats, 20))
			return nil
		},
	}
}

func hasJournal(e entity.JournalEntry) bool {
	return e.Thoughts != "" || e.Grateful != [3]string{}
}

func newWeekCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "week [date]",
		Short: "Summarize the seven days around a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := current.app.Views.Week(cmd.Context(), optionalDate(args))
			if err != nil {
				return err
			}
			for _, d := range days {
				journal := " "
				if d.HasJournal {
					journal = ui.IconJournal
				}
				bar := ui.Good.Render(strings.Repeat("●", d.Completed)) + ui.Muted.Render(strings.Repeat("○", d.Tasks-d.Completed))
				outf("%s %s %s %s\n", ui.Key.Render(d.Date), journal, ui.Money(d.Balance), bar)
			}
			return nil
		},
	}
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show level, xp and streak",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stats := current.app.Views.Stats(cmd.Context())
			outln(ui.Panel.Render(strings.Join([]string{
				ui.XPBar(stats, 20),
				ui.LabelValue("streak", fmt.Sprintf("%d day(s)", stats.Streak)),
				ui.LabelValue("last active", stats.LastActive),
			}, "\n")))
			return nil
		},
	}
}

func newResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every record and start over (needs --yes)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := current.app.Views.Reset(cmd.Context(), yes); err != nil {
				return err
			}
			outln(ui.Warn.Render("all records deleted"))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm reset")
	return cmd
}
