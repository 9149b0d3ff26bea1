package ledgerapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecomhub/finance_backoffice/internal/apperrors"
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   string
}

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()
	rec := &recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		*rec = recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Auth:   r.Header.Get("Authorization"),
			Body:   string(raw),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

var user = domain.Principal{UserID: "42", Role: domain.RoleAdmin, AccessToken: "  Bearer abc.def.ghi "}

func TestJournalEntryGateway_Create(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusCreated, `{"data":{"id":9,"entry_number":"JE-2026-0009","status":"draft","total_debit":"100000.00","total_credit":"100000.00","lines":[]}}`)
	repos := NewRepositoryProvider(NewClient(srv.URL+"/", time.Second), nil, nil)

	payload := domain.JournalEntryPayload{
		EntryDate:      "2026-01-15",
		FiscalPeriodID: 3,
		Description:    "Capital injection",
		Lines: []domain.JournalLinePayload{
			{AccountID: 10, Description: "Cash", Debit: 100000},
			{AccountID: 20, Description: "Equity", Credit: 100000},
		},
	}
	entry, err := repos.JournalEntryRepo.CreateJournalEntry(context.Background(), user, payload)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/api/v1/journal-entries", rec.Path)
	assert.Equal(t, "Bearer abc.def.ghi", rec.Auth)
	assert.JSONEq(t, `{
		"entry_date":"2026-01-15","fiscal_period_id":3,"description":"Capital injection",
		"lines":[
			{"account_id":10,"description":"Cash","debit":100000,"credit":0},
			{"account_id":20,"description":"Equity","debit":0,"credit":100000}
		]}`, rec.Body)

	assert.Equal(t, int64(9), entry.ID)
	assert.Equal(t, "JE-2026-0009", entry.EntryNumber)
	assert.Equal(t, domain.JournalDraft, entry.Status)
	assert.Equal(t, domain.Amount(100000), entry.TotalDebit)
}

func TestClient_ActionPostsEmptyObject(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"data":{"id":4,"status":"approved"}}`)
	repos := NewRepositoryProvider(NewClient(srv.URL, time.Second), nil, nil)

	entry, err := repos.JournalEntryRepo.ApproveJournalEntry(context.Background(), user, 4)
	require.NoError(t, err)
	assert.Equal(t, domain.JournalApproved, entry.Status)
	assert.Equal(t, "/api/v1/journal-entries/4/approve", rec.Path)
	assert.Equal(t, "{}", rec.Body)
}

func TestClient_ListQueries(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"data":{"page":2,"limit":5,"total_results":7,"total_pages":2,"results":[{"id":1,"status":"pending","amount":5000}]}}`)
	repos := NewRepositoryProvider(NewClient(srv.URL, time.Second), nil, nil)

	page, err := repos.ExpenseRepo.ListExpenses(context.Background(), user, domain.ExpenseListParams{
		ListParams: domain.ListParams{Page: 2, Limit: 5, Search: "iklan"},
		Status:     domain.ExpensePending,
		CategoryID: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/operational-expenses", rec.Path)
	assert.Equal(t, "category_id=3&limit=5&page=2&search=iklan&status=pending", rec.Query)
	require.Len(t, page.Results, 1)
	assert.Equal(t, domain.Amount(5000), page.Results[0].Amount)
	assert.Equal(t, 7, page.TotalResults)
}

func TestClient_NoPageAndNullData(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"data":null}`)
	repos := NewRepositoryProvider(NewClient(srv.URL, time.Second), nil, nil)

	accounts, err := repos.AccountRepo.ListAccountsByType(context.Background(), user, domain.Expense)
	require.NoError(t, err)
	assert.NotNil(t, accounts)
	assert.Empty(t, accounts)
	assert.Equal(t, "/api/v1/accounts/type/expense", rec.Path)
}

func TestClient_TotalInvestmentBareNumber(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"data":250000000}`)
	repos := NewRepositoryProvider(NewClient(srv.URL, time.Second), nil, nil)

	total, err := repos.InvestorRepo.GetTotalInvestment(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, domain.Amount(250000000), total.TotalAmount)
}

func TestClient_PatchBodies(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"data":{"id":1}}`)
	repos := NewRepositoryProvider(NewClient(srv.URL, time.Second), nil, nil)
	ctx := context.Background()

	_, err := repos.AdBudgetRepo.UpdateAdBudgetSpent(ctx, user, 1, 7500)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, rec.Method)
	assert.Equal(t, "/api/v1/ad-budgets/1/spent", rec.Path)
	assert.JSONEq(t, `{"spent_amount":7500}`, rec.Body)

	_, err = repos.InvestorRepo.UpdateInvestorStatus(ctx, user, 1, domain.InvestorFullyPaid)
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/capital-investors/1/status", rec.Path)
	assert.JSONEq(t, `{"status":"fully_paid"}`, rec.Body)

	_, err = repos.InvestorRepo.UpdateInvestorReturnPaid(ctx, user, 1, 1000)
	require.NoError(t, err)
	assert.JSONEq(t, `{"return_paid":1000}`, rec.Body)
}

func TestClient_Reports(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"data":{"total_debit":500,"total_credit":200,"current_balance":300}}`)
	repos := NewRepositoryProvider(NewClient(srv.URL, time.Second), nil, nil)

	balance, err := repos.ReportingRepo.GetCurrentBalance(context.Background(), user, domain.DateRange{AccountID: 5, StartDate: "2026-01-01"})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/reports/dashboard/finance/current-balance", rec.Path)
	assert.Equal(t, "account_id=5&start_date=2026-01-01", rec.Query)
	assert.Equal(t, domain.Amount(300), balance.CurrentBalance)
	assert.NotNil(t, balance.Transactions)
}

func TestClient_RemoteErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
		wantMsg  string
	}{
		{name: "validation", status: http.StatusBadRequest, body: `{"message":"Fiscal period is closed"}`, sentinel: apperrors.ErrValidation, wantMsg: "Invalid request: Fiscal period is closed"},
		{name: "not found", status: http.StatusNotFound, body: `{"message":"Journal entry not found"}`, sentinel: apperrors.ErrNotFound, wantMsg: "Resource not found: Journal entry not found"},
		{name: "server error without body", status: http.StatusInternalServerError, body: ``, sentinel: apperrors.ErrRemote, wantMsg: "Server error: Something went wrong on our end. Please try again later or contact admin if the problem persists."},
		{name: "error field", status: http.StatusConflict, body: `{"error":"duplicate"}`, sentinel: apperrors.ErrConflict, wantMsg: "duplicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, tt.body)
			repos := NewRepositoryProvider(NewClient(srv.URL, time.Second), nil, nil)

			_, err := repos.JournalEntryRepo.FindJournalEntryByID(context.Background(), user, 1)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)
			assert.Equal(t, tt.wantMsg, err.Error())

			var remote *apperrors.RemoteError
			require.True(t, errors.As(err, &remote))
			assert.Equal(t, tt.status, remote.StatusCode)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	repos := NewRepositoryProvider(NewClient(url, time.Second), nil, nil)
	err := repos.FiscalPeriodRepo.DeleteFiscalPeriod(context.Background(), user, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRemote)
	assert.Equal(t, "Ledger API is unreachable", err.Error())
}

func TestClient_NoTokenSendsNoAuthorization(t *testing.T) {
	srv, rec := newTestServer(t, http.StatusOK, `{"data":[]}`)
	repos := NewRepositoryProvider(NewClient(srv.URL, time.Second), nil, nil)

	_, err := repos.FiscalPeriodRepo.ListAllFiscalPeriods(context.Background(), domain.Principal{})
	require.NoError(t, err)
	assert.Empty(t, rec.Auth)
}

func TestPageDecoding(t *testing.T) {
	var page domain.Page[domain.AdBudget]
	require.NoError(t, json.Unmarshal([]byte(`{"page":1,"limit":10,"total_results":1,"total_pages":1,"results":[{"platform":"meta_ads","budget_amount":"1000000.00","spent_amount":250000}]}`), &page))
	assert.Equal(t, domain.Amount(750000), page.Results[0].Remaining())
}
