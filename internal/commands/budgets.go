package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/money_tracker/internal/adapters/remote"
	"github.com/SscSPs/money_tracker/internal/apperrors"
	"github.com/SscSPs/money_tracker/internal/core/domain"
	"github.com/SscSPs/money_tracker/internal/core/tracker"
	"github.com/SscSPs/money_tracker/internal/forms"
)

func (a *app) budgetStore() (*tracker.BudgetStore, error) {
	owner, err := a.owner()
	if err != nil {
		return nil, err
	}
	return tracker.NewBudgetStore(owner, remote.NewBudgetGateway(a.client), a.logger), nil
}

func newBudgetsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "budgets",
		Aliases: []string{"budget"},
		Short:   "List and manage category budgets",
	}
	cmd.AddCommand(
		newBudgetsListCommand(a),
		newBudgetsAddCommand(a),
		newBudgetsEditCommand(a),
		newBudgetsDeleteCommand(a),
	)
	return cmd
}

func newBudgetsListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your budgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.budgetStore()
			if err != nil {
				return err
			}
			if err := store.Load(cmd.Context()); err != nil {
				return err
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tCATEGORY\tLIMIT")
			for _, b := range store.Records() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", b.ID, b.Category, formatMoney(b.Limit))
			}
			return tw.Flush()
		},
	}
}

func newBudgetsAddCommand(a *app) *cobra.Command {
	var form forms.BudgetForm

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Set a spending limit for a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := form.Draft()
			if err != nil {
				return err
			}
			store, err := a.budgetStore()
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

	cmd.Flags().StringVar(&form.Category, "category", "", "spending category")
	cmd.Flags().StringVar(&form.Limit, "limit", "", "spending limit, e.g. 300")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("limit")

	return cmd
}

func newBudgetsEditCommand(a *app) *cobra.Command {
	var changes forms.BudgetForm

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change the category or limit of a budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.budgetStore()
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
			form := forms.BudgetFormFrom(store.Session().Draft)
			if cmd.Flags().Changed("category") {
				form.Category = changes.Category
			}
			if cmd.Flags().Changed("limit") {
				form.Limit = changes.Limit
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

	cmd.Flags().StringVar(&changes.Category, "category", "", "new category")
	cmd.Flags().StringVar(&changes.Limit, "limit", "", "new spending limit")

	return cmd
}

func newBudgetsDeleteCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a budget",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.budgetStore()
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
