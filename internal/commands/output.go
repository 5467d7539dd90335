package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/money_tracker/internal/core/domain"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
}

// formatMoney renders an amount with thousands separators and two decimals.
func formatMoney(d decimal.Decimal) string {
	return humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
}

// reportFeedback prints the success message and, on stderr, an error that
// arrived alongside it, e.g. a reload failing after a successful submit.
func reportFeedback(out, errOut io.Writer, state domain.FeedbackState) {
	if state.HasSuccess() {
		fmt.Fprintln(out, state.Success)
	}
	if state.HasError() {
		fmt.Fprintln(errOut, "warning:", state.Error)
	}
}
