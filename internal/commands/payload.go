package commands

import (
	"encoding/json"
	"fmt"

	"github.com/ecomhub/finance_backoffice/internal/dto"
	"github.com/spf13/cobra"
)

func newPayloadCommand() *cobra.Command {
	var linesCSV string
	var force bool

	cmd := &cobra.Command{
		Use:   "payload <draft.json>",
		Short: "Print the request body the Ledger API would receive for a draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDraft(args[0], linesCSV)
			if err != nil {
				return err
			}
			if vErr := dto.AsValidationError(d.Validate()); vErr != nil && !force {
				return fmt.Errorf("draft is invalid: %w", vErr)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(d.ToSubmissionPayload())
		},
	}

	cmd.Flags().StringVar(&linesCSV, "lines-csv", "", "CSV of account_id,description,debit,credit rows replacing the draft's lines")
	cmd.Flags().BoolVar(&force, "force", false, "print the payload even when the draft is invalid")

	return cmd
}
