package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/limbo/focusflow/internal/app"
	"github.com/limbo/focusflow/internal/ui"
	"github.com/limbo/focusflow/pkg/cleanup"
	"github.com/limbo/focusflow/pkg/config"
	"github.com/limbo/focusflow/pkg/entity"
	"github.com/limbo/focusflow/pkg/logger"
)

const Version = "0.1.0"

// env is built once per invocation before any subcommand runs.
type env struct {
	app *app.App
	out io.Writer
}

var current *env

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:           "ff",
		Short:         "FocusFlow: tasks, money, journal and brain dumps from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.LoadConfig(config.New())
			level := "ERROR"
			if verbose {
				level = cfg.LogLevel
			}
			logger.SetupWithWriter(os.Stderr, level)
			a, err := app.Build(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			current = &env{app: a, out: cmd.OutOrStdout()}
			return nil
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log at LOG_LEVEL to stderr")
	cmd.Version = Version
	cmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	cmd.AddCommand(
		newAddCmd(),
		newDoneCmd(),
		newMigrateCmd(),
		newRmCmd(),
		newDayCmd(),
		newWeekCmd(),
		newCatCmd(),
		newMoneyCmd("earn", entity.Income),
		newMoneyCmd("spend", entity.Expense),
		newBalanceCmd(),
		newJournalCmd(),
		newDumpCmd(),
		newStatsCmd(),
		newResetCmd(),
	)
	return cmd
}

func Execute() {
	err := newRootCmd().ExecuteContext(context.Background())
	cleanup.CleanUp()
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}

func outf(format string, a ...any) {
	fmt.Fprintf(current.out, format, a...)
}

func outln(a ...any) {
	fmt.Fprintln(current.out, a...)
}

// resolveTaskID accepts a full id or any unique prefix of one.
func resolveTaskID(prefix string) (string, error) {
	var match string
	for _, t := range current.app.Store.Tasks() {
		if t.ID == prefix {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, prefix) {
			if match != "" {
				return "", fmt.Errorf("id prefix %q is ambiguous", prefix)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", errors.New("no task matches " + prefix)
	}
	return match, nil
}

func exactArgs(n int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.New(what + " required")
		}
		return nil
	}
}
