package domain_test

import (
	"encoding/json"
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/ecomhub/finance_backoffice/internal/apperrors"
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func balancedDraft() domain.JournalEntryDraft {
	return domain.JournalEntryDraft{
		EntryDate:      "2026-01-15",
		FiscalPeriodID: 3,
		Description:    "Capital injection",
		Lines: []domain.JournalLineDraft{
			{AccountID: 10, Description: "Cash in", Debit: 100000},
			{AccountID: 20, Description: "Owner equity", Credit: 100000},
		},
	}
}

func TestNewJournalEntryDraft(t *testing.T) {
	d := domain.NewJournalEntryDraft()

	require.Len(t, d.Lines, 2)
	for _, l := range d.Lines {
		assert.Equal(t, domain.JournalLineDraft{}, l)
	}
	assert.Equal(t, domain.Totals{IsBalanced: true}, d.ComputeTotals())
}

func TestJournalEntryDraft_Validate_Valid(t *testing.T) {
	d := balancedDraft()

	assert.NoError(t, d.Validate())
	assert.True(t, d.ComputeTotals().IsBalanced)
}

func TestJournalEntryDraft_Validate_Order(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *domain.JournalEntryDraft)
		wantMsg string
		wantIdx int
	}{
		{
			name:    "missing date wins over everything",
			mutate:  func(d *domain.JournalEntryDraft) { d.EntryDate = ""; d.FiscalPeriodID = 0; d.Description = "" },
			wantMsg: "Entry date is required",
			wantIdx: -1,
		},
		{
			name:    "missing fiscal period",
			mutate:  func(d *domain.JournalEntryDraft) { d.FiscalPeriodID = 0; d.Description = "" },
			wantMsg: "Fiscal period is required",
			wantIdx: -1,
		},
		{
			name: "blank description wins over unbalanced totals",
			mutate: func(d *domain.JournalEntryDraft) {
				d.Description = "   "
				d.Lines[1].Credit = 90000
			},
			wantMsg: "Description is required",
			wantIdx: -1,
		},
		{
			name:    "fewer than two lines",
			mutate:  func(d *domain.JournalEntryDraft) { d.Lines = d.Lines[:1] },
			wantMsg: "Journal entry must have at least 2 lines",
			wantIdx: -1,
		},
		{
			name:    "line account missing",
			mutate:  func(d *domain.JournalEntryDraft) { d.Lines[1].AccountID = 0; d.Lines[1].Description = "" },
			wantMsg: "Line 2: Account is required",
			wantIdx: 1,
		},
		{
			name:    "line description missing",
			mutate:  func(d *domain.JournalEntryDraft) { d.Lines[0].Description = " " },
			wantMsg: "Line 1: Description is required",
			wantIdx: 0,
		},
		{
			name:    "line without amounts",
			mutate:  func(d *domain.JournalEntryDraft) { d.Lines[1].Credit = 0 },
			wantMsg: "Line 2: Either debit or credit must be greater than 0",
			wantIdx: 1,
		},
		{
			name:    "both debit and credit forced directly",
			mutate:  func(d *domain.JournalEntryDraft) { d.Lines[0].Debit = 5000; d.Lines[0].Credit = 5000 },
			wantMsg: "Line 1: Cannot have both debit and credit",
			wantIdx: 0,
		},
		{
			name:    "negative amount built directly",
			mutate:  func(d *domain.JournalEntryDraft) { d.Lines[1].Credit = -100000 },
			wantMsg: "Line 2: Amounts cannot be negative",
			wantIdx: 1,
		},
		{
			name:    "amount above the limit built directly",
			mutate:  func(d *domain.JournalEntryDraft) { d.Lines[0].Debit = domain.MaxAmount + 1 },
			wantMsg: "Line 1: Amount cannot exceed Rp 999.999.999.999.999",
			wantIdx: 0,
		},
		{
			name:    "unbalanced totals",
			mutate:  func(d *domain.JournalEntryDraft) { d.Lines[1].Credit = 90000 },
			wantMsg: "Total debit (Rp 100.000) must equal total credit (Rp 90.000)",
			wantIdx: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := balancedDraft()
			tt.mutate(&d)

			err := d.Validate()
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.True(t, errors.Is(err, apperrors.ErrValidation))

			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantIdx, vErr.Line)
		})
	}
}

func TestJournalEntryDraft_SetLineDebitCredit_MutualExclusion(t *testing.T) {
	d := balancedDraft()

	require.NoError(t, d.SetLineCredit(0, "2.500"))
	assert.Equal(t, domain.Amount(2500), d.Lines[0].Credit)
	assert.Equal(t, domain.Amount(0), d.Lines[0].Debit)

	require.NoError(t, d.SetLineDebit(1, "Rp 7.000"))
	assert.Equal(t, domain.Amount(7000), d.Lines[1].Debit)
	assert.Equal(t, domain.Amount(0), d.Lines[1].Credit)
}

func TestJournalEntryDraft_SetLineDebit_ZeroKeepsCredit(t *testing.T) {
	d := balancedDraft()

	for _, raw := range []string{"", "abc", "0", "-500"} {
		require.NoError(t, d.SetLineDebit(1, raw))
		assert.Equal(t, domain.Amount(0), d.Lines[1].Debit, raw)
		assert.Equal(t, domain.Amount(100000), d.Lines[1].Credit, raw)
	}
}

func TestJournalEntryDraft_SetLineDebit_RejectsOverflowingInput(t *testing.T) {
	d := balancedDraft()
	d.Lines[1].Credit = 0

	for i := range d.Lines {
		require.NoError(t, d.SetLineDebit(i, "9223372036854775808"))
		assert.Equal(t, domain.Amount(0), d.Lines[i].Debit)
	}
	require.NoError(t, d.SetLineCredit(1, "18446744073709551617"))
	assert.Equal(t, domain.Amount(0), d.Lines[1].Credit)

	totals := d.ComputeTotals()
	assert.Equal(t, domain.Amount(0), totals.TotalDebit)
	assert.EqualError(t, d.Validate(), "Line 1: Either debit or credit must be greater than 0")
}

func TestJournalEntryDraft_ComputeTotals_Overflow(t *testing.T) {
	d := balancedDraft()
	d.Lines[0].Debit = math.MaxInt64
	d.Lines[1].Credit = 0
	d.Lines = append(d.Lines,
		domain.JournalLineDraft{AccountID: 30, Description: "More", Debit: math.MaxInt64},
		domain.JournalLineDraft{AccountID: 40, Description: "Wrapped", Debit: 2},
	)

	totals := d.ComputeTotals()
	assert.Equal(t, domain.Amount(math.MaxInt64), totals.TotalDebit)
	assert.False(t, totals.IsBalanced)
	assert.Error(t, d.Validate())
}

func TestJournalEntryDraft_SetLine_OutOfRange(t *testing.T) {
	d := balancedDraft()

	err := d.SetLineDebit(5, "100")
	require.Error(t, err)
	assert.Equal(t, "Line 6 does not exist", err.Error())
	assert.ErrorIs(t, d.SetLineCredit(-1, "100"), apperrors.ErrValidation)
	assert.ErrorIs(t, d.SetLineAccount(2, 1), apperrors.ErrValidation)
	assert.ErrorIs(t, d.SetLineDescription(2, "x"), apperrors.ErrValidation)
}

func TestJournalEntryDraft_RemoveLine(t *testing.T) {
	t.Run("refuses to drop below two lines", func(t *testing.T) {
		d := balancedDraft()
		before := d.Clone()

		err := d.RemoveLine(0)
		require.Error(t, err)
		assert.Equal(t, "Journal entry must have at least 2 lines", err.Error())
		assert.Equal(t, before, d)
	})

	t.Run("add then remove returns to the original lines", func(t *testing.T) {
		d := balancedDraft()
		before := d.Clone()
		totals := d.ComputeTotals()

		d.AddLine()
		require.Len(t, d.Lines, 3)
		require.NoError(t, d.RemoveLine(2))

		assert.Equal(t, before.Lines, d.Lines)
		assert.Equal(t, totals, d.ComputeTotals())
	})

	t.Run("removes the requested line", func(t *testing.T) {
		d := balancedDraft()
		d.AddLine()
		require.NoError(t, d.SetLineAccount(2, 30))

		require.NoError(t, d.RemoveLine(0))
		require.Len(t, d.Lines, 2)
		assert.Equal(t, int64(20), d.Lines[0].AccountID)
		assert.Equal(t, int64(30), d.Lines[1].AccountID)
	})

	t.Run("out of range index on a long draft", func(t *testing.T) {
		d := balancedDraft()
		d.AddLine()
		assert.ErrorIs(t, d.RemoveLine(3), apperrors.ErrValidation)
		assert.Len(t, d.Lines, 3)
	})
}

func TestJournalEntryDraft_TotalsTrackLines(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	d := domain.NewJournalEntryDraft()

	for step := 0; step < 500; step++ {
		switch rng.Intn(4) {
		case 0:
			d.AddLine()
		case 1:
			_ = d.RemoveLine(rng.Intn(len(d.Lines)))
		case 2:
			v := rng.Intn(1_000_000)
			i := rng.Intn(len(d.Lines))
			require.NoError(t, d.SetLineDebit(i, domain.Amount(v).String()))
			if v > 0 {
				assert.Equal(t, domain.Amount(0), d.Lines[i].Credit)
			}
		case 3:
			v := rng.Intn(1_000_000)
			i := rng.Intn(len(d.Lines))
			require.NoError(t, d.SetLineCredit(i, domain.Amount(v).String()))
			if v > 0 {
				assert.Equal(t, domain.Amount(0), d.Lines[i].Debit)
			}
		}

		require.GreaterOrEqual(t, len(d.Lines), 2)

		var debit, credit domain.Amount
		for _, l := range d.Lines {
			debit += l.Debit
			credit += l.Credit
		}
		totals := d.ComputeTotals()
		assert.Equal(t, debit, totals.TotalDebit)
		assert.Equal(t, credit, totals.TotalCredit)
		assert.Equal(t, debit == credit, totals.IsBalanced)
	}
}

func TestJournalEntryDraft_ToSubmissionPayload(t *testing.T) {
	t.Run("drops empty reference number and trims", func(t *testing.T) {
		d := balancedDraft()
		d.EntryDate = " 2026-01-15 "
		d.Description = "  Capital injection  "
		d.ReferenceNumber = "   "
		d.Lines[0].Description = " Cash in "

		p := d.ToSubmissionPayload()
		assert.Equal(t, "2026-01-15", p.EntryDate)
		assert.Equal(t, "Capital injection", p.Description)
		assert.Equal(t, "Cash in", p.Lines[0].Description)

		raw, err := json.Marshal(p)
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "reference_number")
		assert.JSONEq(t, `{
			"entry_date": "2026-01-15",
			"fiscal_period_id": 3,
			"description": "Capital injection",
			"lines": [
				{"account_id": 10, "description": "Cash in", "debit": 100000, "credit": 0},
				{"account_id": 20, "description": "Owner equity", "debit": 0, "credit": 100000}
			]
		}`, string(raw))
	})

	t.Run("keeps a reference number", func(t *testing.T) {
		d := balancedDraft()
		d.ReferenceNumber = " INV-001 "

		assert.Equal(t, "INV-001", d.ToSubmissionPayload().ReferenceNumber)
	})
}

func TestDraftFromEntry(t *testing.T) {
	entry := domain.JournalEntry{
		ID:              7,
		EntryDate:       "2026-02-01",
		FiscalPeriodID:  4,
		Description:     "Ad spend",
		ReferenceNumber: "META-22",
		Status:          domain.JournalDraft,
		Lines: []domain.JournalEntryLine{
			{AccountID: 61, Description: "Meta ads", Debit: 250000},
		},
	}

	d := domain.DraftFromEntry(entry)
	assert.Equal(t, "2026-02-01", d.EntryDate)
	assert.Equal(t, int64(4), d.FiscalPeriodID)
	assert.Equal(t, "META-22", d.ReferenceNumber)
	require.Len(t, d.Lines, 2)
	assert.Equal(t, domain.Amount(250000), d.Lines[0].Debit)
	assert.Equal(t, domain.JournalLineDraft{}, d.Lines[1])
}

func TestJournalDraftSession_Clone(t *testing.T) {
	id := int64(9)
	s := domain.JournalDraftSession{ID: "a", EntryID: &id, Draft: balancedDraft()}

	c := s.Clone()
	c.Draft.Lines[0].Debit = 1
	*c.EntryID = 10

	assert.Equal(t, domain.Amount(100000), s.Draft.Lines[0].Debit)
	assert.Equal(t, int64(9), *s.EntryID)
}
