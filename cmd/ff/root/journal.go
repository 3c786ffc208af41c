package root

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/limbo/focusflow/internal/service"
	"github.com/limbo/focusflow/internal/ui"
)

func newJournalCmd() *cobra.Command {
	var grateful []string
	var thoughts string
	cmd := &cobra.Command{
		Use:   "journal [date]",
		Short: "Show a day's journal, or write it with --grateful/--thoughts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := optionalDate(args)
			if date == "" {
				date = current.app.Store.Today()
			}
			write := cmd.Flags().Changed("grateful") || cmd.Flags().Changed("thoughts")
			if len(grateful) > 3 {
				return errors.New("at most three grateful entries")
			}
			if write {
				var req service.SaveJournalRequest
				copy(req.Grateful[:], grateful)
				req.Thoughts = thoughts
				if _, err := current.app.Journal.SaveEntry(cmd.Context(), date, req); err != nil {
					return err
				}
			}
			entry, err := current.app.Journal.GetEntry(cmd.Context(), date)
			if err != nil {
				return err
			}
			outln(ui.Heading(ui.IconJournal, entry.Date))
			for i, g := range entry.Grateful {
				outf("%d. %s\n", i+1, g)
			}
			if entry.Thoughts != "" {
				outln(ui.Muted.Render(entry.Thoughts))
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&grateful, "grateful", "g", nil, "Something you're grateful for (up to 3)")
	cmd.Flags().StringVarP(&thoughts, "thoughts", "t", "", "Free-form thoughts")
	return cmd
}
