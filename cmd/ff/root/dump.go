package root

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/limbo/focusflow/internal/service"
	"github.com/limbo/focusflow/internal/ui"
)

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <text>",
		Short: "Turn a brain dump into tasks for today",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("brain dump text is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			outln(ui.Muted.Render(ui.IconBrain + " organizing..."))
			res, err := current.app.BrainDumps.Organize(cmd.Context(), service.OrganizeRequest{
				Content: strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			if res.Summary != "" {
				outln(ui.H2.Render(res.Summary))
			}
			for _, t := range res.Tasks {
				outln(ui.TaskLine(t))
			}
			if len(res.Tasks) == 0 {
				outln(ui.Muted.Render("no tasks found"))
			}
			return nil
		},
	}
}
