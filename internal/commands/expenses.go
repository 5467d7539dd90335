package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/money_tracker/internal/adapters/remote"
	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/tracker"
	"github.com/SscSPs/money_tracker/internal/forms"
)

func (a *app) expenseStore() (*tracker.ExpenseStore, error) {
	owner, err := a.owner()
	if err != nil {
		return nil, err
	}
	return tracker.NewExpenseStore(owner, remote.NewExpenseGateway(a.client), a.logger), nil
}

func newExpensesCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expenses",
		Aliases: []string{"expense"},
		Short:   "List and manage expenses",
	}
	cmd.AddCommand(
		newExpensesListCommand(a),
		newExpensesAddCommand(a),
		newExpensesEditCommand(a),
		newExpensesDeleteCommand(a),
	)
	return cmd
}

func newExpensesListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.expenseStore()
			if err != nil {
				return err
			}
			if err := store.Load(cmd.Context()); err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tDATE\tCATEGORY\tAMOUNT\tDESCRIPTION")
			for _, e := range store.Records() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", e.ID, e.Date, e.Category, formatMoney(e.Amount), e.Description)
			}
			return tw.Flush()
		},
	}
}

func bindExpenseFlags(cmd *cobra.Command, form *forms.ExpenseForm) {
	cmd.Flags().StringVar(&form.Category, "category", "", "spending category")
	cmd.Flags().StringVar(&form.Amount, "amount", "", "amount spent, e.g. 12.50")
	cmd.Flags().StringVar(&form.Description, "description", "", "free-text note")
	cmd.Flags().StringVar(&form.Date, "date", "", "date spent as YYYY-MM-DD")
}

func newExpensesAddCommand(a *app) *cobra.Command {
	var form forms.ExpenseForm

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if form.Date == "" {
				form.Date = domain.DateOf(time.Now()).String()
			}
			draft, err := form.Draft()
			if err != nil {
				return err
			}
			store, err := a.expenseStore()
			if err != nil {
				return err
			}
			if err := store.Submit(cmd.Context(), draft); err != nil {
				return err
			}
			reportFeedback(cmd.OutOrStdout(), cmd.ErrOrStderr(), store.Feedback())
			return nil
		},
	}

	bindExpenseFlags(cmd, &form)
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newExpensesEditCommand(a *app) *cobra.Command {
	var changes forms.ExpenseForm

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.expenseStore()
			if err != nil {
				return err
			}
			if err := store.Load(cmd.Context()); err != nil {
				return err
			}
			id := domain.RecordID(args[0])
			record, ok := store.Find(id)
			if !ok {
				return fmt.Errorf("%s %s: %w", store.Name(), id, apperrors.ErrNotFound)
			}

			store.BeginEdit(record)
			form := forms.ExpenseFormFrom(store.Session().Draft)
			flags := cmd.Flags()
			if flags.Changed("category") {
				form.Category = changes.Category
			}
			if flags.Changed("amount") {
				form.Amount = changes.Amount
			}
			if flags.Changed("description") {
				form.Description = changes.Description
			}
			if flags.Changed("date") {
				form.Date = changes.Date
			}
			draft, err := form.Draft()
			if err != nil {
				store.CancelEdit()
				return err
			}
			if draft.Diff(record.Draft()).IsEmpty() {
				store.CancelEdit()
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing to update in %s %s\n", store.Name(), id)
				return nil
			}

			if err := store.Submit(cmd.Context(), draft); err != nil {
				return err
			}
			reportFeedback(cmd.OutOrStdout(), cmd.ErrOrStderr(), store.Feedback())
			return nil
		},
	}

	bindExpenseFlags(cmd, &changes)
	return cmd
}

func newExpensesDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete an expense",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.expenseStore()
			if err != nil {
				return err
			}
			if err := store.Remove(cmd.Context(), domain.RecordID(args[0])); err != nil {
				return err
			}
			reportFeedback(cmd.OutOrStdout(), cmd.ErrOrStderr(), store.Feedback())
			return nil
		},
	}
}
