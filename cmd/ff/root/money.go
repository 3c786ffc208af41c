package root

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/limbo/focusflow/internal/service"
	"github.com/limbo/focusflow/internal/ui"
	"github.com/limbo/focusflow/pkg/entity"
)

func newMoneyCmd(use string, typ entity.TransactionType) *cobra.Command {
	var date, category string
	short := "Log income"
	if typ == entity.Expense {
		short = "Log an expense"
	}
	cmd := &cobra.Command{
		Use:   use + " <amount> [description]",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			txn, err := current.app.Transactions.CreateTransaction(cmd.Context(), service.CreateTransactionRequest{
				Amount:      args[0],
				Description: strings.Join(args[1:], " "),
				Type:        string(typ),
				Date:        date,
				Category:    category,
			})
			if err != nil {
				return err
			}
			outln(ui.IconMoney, ui.Money(txn.Signed()), txn.Description, ui.Muted.Render(txn.Date))
			outln(ui.LabelValue("balance", ui.Money(current.app.Transactions.Balance(cmd.Context()))))
			return nil
		},
	}
	cmd.Flags().StringVarP(&date, "date", "d", "", "Day (YYYY-MM-DD), today by default")
	cmd.Flags().StringVarP(&category, "cat", "c", "", "Optional category")
	return cmd
}

func newBalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the running balance over every transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outln(ui.LabelValue(ui.IconMoney+" balance", ui.Money(current.app.Transactions.Balance(cmd.Context()))))
			return nil
		},
	}
}
