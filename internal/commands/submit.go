package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ecomhub/finance_backoffice/internal/adapters/ledgerapi"
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/ecomhub/finance_backoffice/internal/dto"
	"github.com/spf13/cobra"
)

func newSubmitCommand() *cobra.Command {
	var (
		linesCSV string
		baseURL  string
		token    string
		entryID  int64
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "submit <draft.json>",
		Short: "Validate a draft and send it to the Ledger API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := loadDraft(args[0], linesCSV)
			if err != nil {
				return err
			}
			if vErr := dto.AsValidationError(d.Validate()); vErr != nil {
				return fmt.Errorf("draft is invalid: %w", vErr)
			}
			if baseURL == "" {
				return fmt.Errorf("--base-url or LEDGER_API_BASE_URL is required")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			repos := ledgerapi.NewRepositoryProvider(ledgerapi.NewClient(baseURL, timeout), nil, nil)
			p := domain.Principal{AccessToken: token}
			payload := d.ToSubmissionPayload()

			var entry *domain.JournalEntry
			if entryID > 0 {
				entry, err = repos.JournalEntryRepo.UpdateJournalEntry(ctx, p, entryID, payload)
			} else {
				entry, err = repos.JournalEntryRepo.CreateJournalEntry(ctx, p, payload)
			}
			if err != nil {
				return fmt.Errorf("submitting journal entry: %w", err)
			}

			verb := "Created"
			if entryID > 0 {
				verb = "Updated"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s journal entry %s (id %d, status %s)\n", verb, entry.EntryNumber, entry.ID, entry.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&linesCSV, "lines-csv", "", "CSV of account_id,description,debit,credit rows replacing the draft's lines")
	cmd.Flags().StringVar(&baseURL, "base-url", os.Getenv("LEDGER_API_BASE_URL"), "Ledger API base URL")
	cmd.Flags().StringVar(&token, "token", "", "bearer token sent to the Ledger API (required)")
	_ = cmd.MarkFlagRequired("token")
	cmd.Flags().Int64Var(&entryID, "entry-id", 0, "update this existing entry instead of creating one")
	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "request timeout")

	return cmd
}
