package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ecomhub/finance_backoffice/internal/apperrors"
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/ecomhub/finance_backoffice/internal/dto"
	"github.com/ecomhub/finance_backoffice/internal/handlers"
	"github.com/ecomhub/finance_backoffice/internal/middleware"
	"github.com/ecomhub/finance_backoffice/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type JournalDraftHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockComposer     *MockJournalComposerService
	mockEntryService *MockJournalEntryService
	jwtSecret        string
}

func (suite *JournalDraftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockComposer = new(MockJournalComposerService)
	suite.mockEntryService = new(MockJournalEntryService)

	v1 := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	handlers.RegisterJournalDraftRoutes(v1, suite.mockComposer)
	handlers.RegisterJournalEntryRoutes(v1, suite.mockEntryService)
}

// generateTestToken creates a signed access token for userID with role.
func (suite *JournalDraftHandlerTestSuite) generateTestToken(userID string, role domain.Role) string {
	token, err := utils.GenerateJWT(userID, string(role), suite.jwtSecret, time.Hour, "finance-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *JournalDraftHandlerTestSuite) do(method, url string, body any) (*httptest.ResponseRecorder, map[string]any) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken("11", domain.RoleStaff))

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &decoded)
	}
	return w, decoded
}

func staff() any {
	return mock.MatchedBy(func(p domain.Principal) bool {
		return p.UserID == "11" && p.Role == domain.RoleStaff
	})
}

func blankSession(id string) *domain.JournalDraftSession {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return &domain.JournalDraftSession{
		ID:        id,
		OwnerID:   "11",
		Draft:     domain.NewJournalEntryDraft(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// --- Test Cases ---

func (suite *JournalDraftHandlerTestSuite) TestCreateDraft_ReturnsRecomputedState() {
	suite.mockComposer.On("CreateDraft", mock.Anything, staff(), (*int64)(nil)).
		Return(blankSession("d-1"), nil).Once()

	w, body := suite.do(http.MethodPost, "/api/v1/journal-drafts", nil)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("d-1", body["id"])
	suite.Len(body["lines"], 2)
	suite.Equal(false, body["is_valid"])
	suite.Equal("Entry date is required", body["validation_error"])
	suite.Equal(true, body["is_balanced"])
	suite.mockComposer.AssertExpectations(suite.T())
}

func (suite *JournalDraftHandlerTestSuite) TestCreateDraft_FromExistingEntry() {
	suite.mockComposer.On("CreateDraft", mock.Anything, staff(), mock.MatchedBy(func(id *int64) bool {
		return id != nil && *id == 7
	})).Return(blankSession("d-2"), nil).Once()

	w, _ := suite.do(http.MethodPost, "/api/v1/journal-drafts", dto.CreateJournalDraftRequest{EntryID: ptr(int64(7))})

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockComposer.AssertExpectations(suite.T())
}

func (suite *JournalDraftHandlerTestSuite) TestUpdateLine_PassesRawAmounts() {
	session := blankSession("d-1")
	session.Draft.Lines[0].Debit = 1500000
	suite.mockComposer.On("UpdateLine", mock.Anything, staff(), "d-1", 0, mock.MatchedBy(func(req dto.UpdateDraftLineRequest) bool {
		return req.Debit != nil && *req.Debit == "1.500.000" && req.Credit == nil
	})).Return(session, nil).Once()

	w, body := suite.do(http.MethodPatch, "/api/v1/journal-drafts/d-1/lines/0", map[string]any{"debit": "1.500.000"})

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(float64(1500000), body["total_debit"])
	suite.Equal(false, body["is_balanced"])
	suite.mockComposer.AssertExpectations(suite.T())
}

func (suite *JournalDraftHandlerTestSuite) TestUpdateLine_NumericAmountsUseDecimalPoint() {
	session := blankSession("d-1")
	session.Draft.Lines[1].Credit = 1500
	suite.mockComposer.On("UpdateLine", mock.Anything, staff(), "d-1", 1, mock.MatchedBy(func(req dto.UpdateDraftLineRequest) bool {
		return req.Debit != nil && *req.Debit == "100000" && req.Credit != nil && *req.Credit == "1500"
	})).Return(session, nil).Once()

	w, body := suite.do(http.MethodPatch, "/api/v1/journal-drafts/d-1/lines/1", json.RawMessage(`{"debit":100000.0,"credit":1500.5}`))

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(float64(1500), body["total_credit"])
	suite.mockComposer.AssertExpectations(suite.T())
}

func (suite *JournalDraftHandlerTestSuite) TestUpdateLine_InvalidIndex() {
	w, body := suite.do(http.MethodPatch, "/api/v1/journal-drafts/d-1/lines/abc", map[string]any{"debit": "1"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid line index: abc", body["error"])
	suite.mockComposer.AssertNotCalled(suite.T(), "UpdateLine", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalDraftHandlerTestSuite) TestRemoveLine_ReportsLine() {
	suite.mockComposer.On("RemoveLine", mock.Anything, staff(), "d-1", 4).
		Return(nil, &domain.ValidationError{Message: "Line 5 does not exist", Line: 4}).Once()

	w, body := suite.do(http.MethodDelete, "/api/v1/journal-drafts/d-1/lines/4", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Line 5 does not exist", body["error"])
	suite.Equal(float64(4), body["line"])
}

func (suite *JournalDraftHandlerTestSuite) TestGetDraft_NotFound() {
	suite.mockComposer.On("GetDraft", mock.Anything, staff(), "missing").
		Return(nil, fmt.Errorf("%w: journal draft missing", apperrors.ErrNotFound)).Once()

	w, body := suite.do(http.MethodGet, "/api/v1/journal-drafts/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(body["error"], "journal draft missing")
}

func (suite *JournalDraftHandlerTestSuite) TestValidateDraft_ReportsFirstFailure() {
	session := blankSession("d-1")
	session.Draft.SetHeader(domain.DraftHeader{EntryDate: "2026-03-01", FiscalPeriodID: 3, Description: "Setoran modal"})
	vErr := &domain.ValidationError{Message: "Line 1: Account is required", Line: 0}
	suite.mockComposer.On("ValidateDraft", mock.Anything, staff(), "d-1").Return(session, vErr, nil).Once()

	w, body := suite.do(http.MethodPost, "/api/v1/journal-drafts/d-1/validate", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal(false, body["is_valid"])
	suite.Equal("Line 1: Account is required", body["validation_error"])
	suite.Equal(float64(0), body["validation_line"])
}

func (suite *JournalDraftHandlerTestSuite) TestSubmitDraft_Created() {
	suite.mockComposer.On("GetDraft", mock.Anything, staff(), "d-1").Return(blankSession("d-1"), nil).Once()
	suite.mockComposer.On("SubmitDraft", mock.Anything, staff(), "d-1").
		Return(&domain.JournalEntry{ID: 42, EntryNumber: "JE-2026-0042", Status: domain.JournalDraft}, nil).Once()

	w, body := suite.do(http.MethodPost, "/api/v1/journal-drafts/d-1/submit", nil)

	suite.Equal(http.StatusCreated, w.Code)
	suite.Equal("Journal entry created successfully", body["message"])
	entry := body["entry"].(map[string]any)
	suite.Equal("JE-2026-0042", entry["entry_number"])
}

func (suite *JournalDraftHandlerTestSuite) TestSubmitDraft_UpdatedExistingEntry() {
	session := blankSession("d-1")
	session.EntryID = ptr(int64(42))
	suite.mockComposer.On("GetDraft", mock.Anything, staff(), "d-1").Return(session, nil).Once()
	suite.mockComposer.On("SubmitDraft", mock.Anything, staff(), "d-1").
		Return(&domain.JournalEntry{ID: 42}, nil).Once()

	w, body := suite.do(http.MethodPost, "/api/v1/journal-drafts/d-1/submit", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Journal entry updated successfully", body["message"])
}

func (suite *JournalDraftHandlerTestSuite) TestSubmitDraft_LedgerRejection() {
	suite.mockComposer.On("GetDraft", mock.Anything, staff(), "d-1").Return(blankSession("d-1"), nil).Once()
	suite.mockComposer.On("SubmitDraft", mock.Anything, staff(), "d-1").
		Return(nil, apperrors.NewRemoteError(http.StatusBadRequest, "Fiscal period is closed", nil)).Once()

	w, body := suite.do(http.MethodPost, "/api/v1/journal-drafts/d-1/submit", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid request: Fiscal period is closed", body["error"])
}

func (suite *JournalDraftHandlerTestSuite) TestSubmitDraft_LedgerUnreachable() {
	suite.mockComposer.On("GetDraft", mock.Anything, staff(), "d-1").Return(blankSession("d-1"), nil).Once()
	suite.mockComposer.On("SubmitDraft", mock.Anything, staff(), "d-1").
		Return(nil, apperrors.NewUnreachableError(errors.New("dial tcp: connection refused"))).Once()

	w, _ := suite.do(http.MethodPost, "/api/v1/journal-drafts/d-1/submit", nil)

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *JournalDraftHandlerTestSuite) TestListSubmissions_DefaultsAndEmptyList() {
	suite.mockComposer.On("ListSubmissions", mock.Anything, staff(), 20, (*string)(nil)).
		Return(nil, nil, nil).Once()

	w, body := suite.do(http.MethodGet, "/api/v1/journal-drafts/submissions", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal([]any{}, body["submissions"])
	suite.NotContains(body, "nextToken")
}

func (suite *JournalDraftHandlerTestSuite) TestDiscardDraft() {
	suite.mockComposer.On("DiscardDraft", mock.Anything, staff(), "d-1").Return(nil).Once()

	w, _ := suite.do(http.MethodDelete, "/api/v1/journal-drafts/d-1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *JournalDraftHandlerTestSuite) TestMissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/journal-drafts/d-1", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockComposer.AssertNotCalled(suite.T(), "GetDraft", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalDraftHandlerTestSuite) TestApproveJournalEntry_ForbiddenForStaff() {
	refused := &domain.WorkflowError{Message: "Only admin can approve journal entries", Kind: apperrors.ErrForbidden}
	suite.mockEntryService.On("ApproveJournalEntry", mock.Anything, staff(), int64(9)).Return(nil, refused).Once()

	w, body := suite.do(http.MethodPost, "/api/v1/journal-entries/9/approve", nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("Only admin can approve journal entries", body["error"])
}

func (suite *JournalDraftHandlerTestSuite) TestPostJournalEntry_WrongState() {
	refused := &domain.WorkflowError{Message: "Can only post journal entries with approved status", Kind: apperrors.ErrConflict}
	suite.mockEntryService.On("PostJournalEntry", mock.Anything, staff(), int64(9)).Return(nil, refused).Once()

	w, _ := suite.do(http.MethodPost, "/api/v1/journal-entries/9/post", nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *JournalDraftHandlerTestSuite) TestGetJournalEntry_InvalidID() {
	w, body := suite.do(http.MethodGet, "/api/v1/journal-entries/abc", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid id: abc", body["error"])
	suite.mockEntryService.AssertNotCalled(suite.T(), "GetJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalDraftHandlerTestSuite) TestDeleteJournalEntry() {
	suite.mockEntryService.On("DeleteJournalEntry", mock.Anything, staff(), int64(5)).Return(nil).Once()

	w, body := suite.do(http.MethodDelete, "/api/v1/journal-entries/5", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("Journal entry deleted successfully", body["message"])
}

func ptr[T any](v T) *T { return &v }

// --- Run Test Suite ---
func TestJournalDraftHandler(t *testing.T) {
	suite.Run(t, new(JournalDraftHandlerTestSuite))
}
