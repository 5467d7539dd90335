package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/SscSPs/money_tracker/internal/core/tracker"
)

var hundred = decimal.NewFromInt(100)

func newDashboardCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show spending against budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			budgets, err := a.budgetStore()
			if err != nil {
				return err
			}
			expenses, err := a.expenseStore()
			if err != nil {
				return err
			}
			dashboard := tracker.NewDashboard(budgets, expenses)
			if err := dashboard.Refresh(cmd.Context()); err != nil {
				return err
			}

			view := dashboard.View()
			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintf(tw, "Total spent:\t%s\n", formatMoney(view.TotalSpent))
			fmt.Fprintf(tw, "Total budget:\t%s\n", formatMoney(view.TotalBudget))
			fmt.Fprintf(tw, "Remaining budget:\t%s\n", formatMoney(view.RemainingBudget))
			fmt.Fprintln(tw)

			if len(view.Categories) > 0 {
				fmt.Fprintln(tw, "CATEGORY\tLIMIT\tSPENT\tREMAINING\tSHARE\tCOLOR")
				for i, slice := range dashboard.Slices() {
					c := view.Categories[i]
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s%%\t%s\n",
						c.Category,
						formatMoney(c.Limit),
						formatMoney(c.Spent),
						formatMoney(c.Remaining),
						slice.Share.Mul(hundred).StringFixed(1),
						slice.Color)
				}
			}
			return tw.Flush()
		},
	}
}
