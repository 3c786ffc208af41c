package root

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/limbo/focusflow/internal/service"
	"github.com/limbo/focusflow/internal/ui"
)

func newAddCmd() *cobra.Command {
	var date, category, notes string
	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("task text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := current.app.Tasks.CreateTask(cmd.Context(), service.CreateTaskRequest{
				Text:     strings.Join(args, " "),
				Date:     date,
				Category: category,
				Notes:    notes,
			})
			if err != nil {
				return err
			}
			outln(ui.Good.Render(ui.IconPlus+" added"), ui.TaskLine(*t), ui.Muted.Render(t.Date))
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Day (YYYY-MM-DD), today by default")
	cmd.Flags().StringVarP(&category, "cat", "c", "General", "Category (General|Work|School)")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Free-form notes")
	return cmd
}

func newDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task between done and todo",
		Args:  exactArgs(1, "task id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(args[0])
			if err != nil {
				return err
			}
			res, err := current.app.Tasks.ToggleTask(cmd.Context(), id)
			if err != nil {
				return err
			}
			outln(ui.TaskLine(res.Task))
			if res.Award != nil {
				outf("%s +%d xp\n", ui.Gold.Render(ui.IconBolt), res.Award.Gained)
				if res.Award.LeveledUp {
					outln(ui.IconTrophy, ui.BadgeLevelUp)
				}
				outln(ui.XPBar(res.Award.Stats, 20))
			}
			return nil
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate <id> <date>",
		Short: "Move an open task to another day",
		Args:  exactArgs(2, "task id and date"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(args[0])
			if err != nil {
				return err
			}
			t, err := current.app.Tasks.MigrateTask(cmd.Context(), id, service.MigrateTaskRequest{Date: args[1]})
			if err != nil {
				return err
			}
			outln(ui.IconMoved, ui.TaskLine(*t), ui.Muted.Render(t.Date))
			return nil
		},
	}
}

func newRmCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task (needs --yes)",
		Args:  exactArgs(1, "task id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(args[0])
			if err != nil {
				return err
			}
			if err := current.app.Tasks.DeleteTask(cmd.Context(), id, yes); err != nil {
				return err
			}
			outln(ui.Warn.Render("deleted " + ui.ShortID(id)))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")
	return cmd
}

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <category>",
		Short: "List every task of a category",
		Args:  exactArgs(1, "category"),
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := current.app.Tasks.CategoryTasks(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			outln(ui.Heading("", args[0]))
			if len(tasks) == 0 {
				outln(ui.Muted.Render("nothing here"))
			}
			for _, t := range tasks {
				outln(ui.TaskLine(t), ui.Muted.Render(t.Date))
			}
			return nil
		},
	}
}
