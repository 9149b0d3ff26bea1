package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/ecomhub/finance_backoffice/internal/dto"
	"github.com/go-playground/validator/v10"
)

const (
	linesNumFields = 4
	linesColAcct   = 0
	linesColDesc   = 1
	linesColDebit  = 2
	linesColCredit = 3
)

// draftFile is a journal entry draft as written by hand. Amounts are kept as typed so
// "1.500.000" and 1500000 both work.
type draftFile struct {
	EntryDate       string          `json:"entry_date" validate:"omitempty,datetime=2006-01-02"`
	FiscalPeriodID  int64           `json:"fiscal_period_id" validate:"gte=0"`
	Description     string          `json:"description" validate:"max=500"`
	ReferenceNumber string          `json:"reference_number" validate:"max=100"`
	Lines           []draftFileLine `json:"lines" validate:"dive"`
}

type draftFileLine struct {
	AccountID   int64         `json:"account_id" validate:"gte=0"`
	Description string        `json:"description" validate:"max=500"`
	Debit       dto.RawAmount `json:"debit"`
	Credit      dto.RawAmount `json:"credit"`
}

var validate = validator.New()

// loadDraft reads a draft file and, when linesCSV is set, replaces its lines with the rows
// of that CSV.
func loadDraft(path, linesCSV string) (domain.JournalEntryDraft, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return domain.JournalEntryDraft{}, fmt.Errorf("reading draft: %w", err)
	}

	var f draftFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return domain.JournalEntryDraft{}, fmt.Errorf("parsing draft %s: %w", path, err)
	}
	if err := validate.Struct(f); err != nil {
		return domain.JournalEntryDraft{}, fmt.Errorf("draft %s is malformed: %w", path, err)
	}

	d := domain.JournalEntryDraft{}
	d.SetHeader(domain.DraftHeader{
		EntryDate:       f.EntryDate,
		FiscalPeriodID:  f.FiscalPeriodID,
		Description:     f.Description,
		ReferenceNumber: f.ReferenceNumber,
	})
	for _, l := range f.Lines {
		d.Lines = append(d.Lines, domain.JournalLineDraft{
			AccountID:   l.AccountID,
			Description: l.Description,
			Debit:       domain.ParseAmount(string(l.Debit)),
			Credit:      domain.ParseAmount(string(l.Credit)),
		})
	}

	if linesCSV == "" {
		return d, nil
	}
	csvFile, err := os.Open(linesCSV)
	if err != nil {
		return domain.JournalEntryDraft{}, fmt.Errorf("opening lines CSV: %w", err)
	}
	defer csvFile.Close()

	lines, err := parseLinesCSV(csvFile)
	if err != nil {
		return domain.JournalEntryDraft{}, err
	}
	d.Lines = lines
	return d, nil
}

// parseLinesCSV reads account_id,description,debit,credit rows. A header row is skipped when
// its first column is not a number.
func parseLinesCSV(r io.Reader) ([]domain.JournalLineDraft, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = linesNumFields
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading lines CSV: %w", err)
	}
	if len(records) > 0 {
		if _, err := strconv.ParseInt(strings.TrimSpace(records[0][linesColAcct]), 10, 64); err != nil {
			records = records[1:]
		}
	}

	lines := make([]domain.JournalLineDraft, 0, len(records))
	for i, rec := range records {
		line, err := parseLineRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func parseLineRow(rec []string) (domain.JournalLineDraft, error) {
	var accountID int64
	if acct := strings.TrimSpace(rec[linesColAcct]); acct != "" {
		id, err := strconv.ParseInt(acct, 10, 64)
		if err != nil || id < 0 {
			return domain.JournalLineDraft{}, fmt.Errorf("parsing account id %q", rec[linesColAcct])
		}
		accountID = id
	}
	return domain.JournalLineDraft{
		AccountID:   accountID,
		Description: rec[linesColDesc],
		Debit:       domain.ParseAmount(rec[linesColDebit]),
		Credit:      domain.ParseAmount(rec[linesColCredit]),
	}, nil
}
