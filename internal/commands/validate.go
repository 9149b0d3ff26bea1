package commands

import (
	"fmt"
	"io"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/ecomhub/finance_backoffice/internal/dto"
	"github.com/spf13/cobra"
)

func newValidateCommand() *cobra.Command {
	var linesCSV string

	cmd := &cobra.Command{
		Use:   "validate <draft.json>",
		Short: "Print a draft's totals and its first validation failure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDraft(args[0], linesCSV)
			if err != nil {
				return err
			}
			return runValidate(cmd.OutOrStdout(), d)
		},
	}

	cmd.Flags().StringVar(&linesCSV, "lines-csv", "", "CSV of account_id,description,debit,credit rows replacing the draft's lines")

	return cmd
}

func runValidate(out io.Writer, d domain.JournalEntryDraft) error {
	totals := d.ComputeTotals()
	fmt.Fprintf(out, "Lines:        %d\n", len(d.Lines))
	fmt.Fprintf(out, "Total debit:  %s\n", totals.TotalDebit)
	fmt.Fprintf(out, "Total credit: %s\n", totals.TotalCredit)
	fmt.Fprintf(out, "Balanced:     %s\n", yesNo(totals.IsBalanced))

	vErr := dto.AsValidationError(d.Validate())
	if vErr == nil {
		fmt.Fprintln(out, "Valid:        yes")
		return nil
	}
	fmt.Fprintln(out, "Valid:        no")
	fmt.Fprintf(out, "Error:        %s\n", vErr.Message)
	return fmt.Errorf("draft is invalid: %w", vErr)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
