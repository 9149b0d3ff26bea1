package domain_test

import (
	"testing"

	"github.com/ecomhub/finance_backoffice/internal/apperrors"
	"github.com/ecomhub/finance_backoffice/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	staff      = domain.Principal{UserID: "1", Role: domain.RoleStaff}
	admin      = domain.Principal{UserID: "2", Role: domain.RoleAdmin}
	superAdmin = domain.Principal{UserID: "3", Role: domain.RoleSuperAdmin}
)

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, domain.RoleSuperAdmin.AtLeast(domain.RoleAdmin))
	assert.True(t, domain.RoleAdmin.AtLeast(domain.RoleAdmin))
	assert.False(t, domain.RoleStaff.AtLeast(domain.RoleAdmin))
	assert.False(t, domain.Role("guest").AtLeast(domain.RoleStaff))
	assert.False(t, domain.Role("").IsValid())
}

func TestJournalEntryTransitions(t *testing.T) {
	tests := []struct {
		name      string
		principal domain.Principal
		from      domain.JournalEntryStatus
		action    domain.Action
		wantNext  domain.JournalEntryStatus
		wantErr   error
		wantMsg   string
	}{
		{name: "staff edits draft", principal: staff, from: domain.JournalDraft, action: domain.ActionEdit, wantNext: domain.JournalDraft},
		{name: "admin approves draft", principal: admin, from: domain.JournalDraft, action: domain.ActionApprove, wantNext: domain.JournalApproved},
		{name: "superadmin rejects draft", principal: superAdmin, from: domain.JournalDraft, action: domain.ActionReject, wantNext: domain.JournalRejected},
		{name: "admin posts approved", principal: admin, from: domain.JournalApproved, action: domain.ActionPost, wantNext: domain.JournalPosted},
		{
			name: "staff cannot approve", principal: staff, from: domain.JournalDraft, action: domain.ActionApprove,
			wantErr: apperrors.ErrForbidden, wantMsg: "Only admin can approve journal entries",
		},
		{
			name: "cannot edit posted", principal: admin, from: domain.JournalPosted, action: domain.ActionEdit,
			wantErr: apperrors.ErrConflict, wantMsg: "Can only edit journal entries with draft status",
		},
		{
			name: "cannot post a draft", principal: admin, from: domain.JournalDraft, action: domain.ActionPost,
			wantErr: apperrors.ErrConflict, wantMsg: "Can only post journal entries with approved status",
		},
		{
			name: "state is checked before role", principal: staff, from: domain.JournalRejected, action: domain.ActionApprove,
			wantErr: apperrors.ErrConflict, wantMsg: "Can only approve journal entries with draft status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := domain.JournalEntryTransitions.Authorize(tt.principal, tt.from, tt.action, false)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.wantMsg, err.Error())
				assert.Equal(t, tt.from, next)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestExpenseTransitions_Ownership(t *testing.T) {
	_, err := domain.ExpenseTransitions.Authorize(staff, domain.ExpensePending, domain.ActionEdit, true)
	assert.NoError(t, err)

	_, err = domain.ExpenseTransitions.Authorize(staff, domain.ExpensePending, domain.ActionDelete, false)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	assert.Equal(t, "Only the creator or admin can delete expenses", err.Error())

	_, err = domain.ExpenseTransitions.Authorize(staff, domain.ExpensePending, domain.ActionApprove, true)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	next, err := domain.ExpenseTransitions.Authorize(admin, domain.ExpenseApproved, domain.ActionPay, false)
	require.NoError(t, err)
	assert.Equal(t, domain.ExpensePaid, next)

	_, err = domain.ExpenseTransitions.Authorize(admin, domain.ExpensePaid, domain.ActionEdit, true)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "Can only edit expenses with pending status", err.Error())
}

func TestFiscalPeriodTransitions(t *testing.T) {
	_, err := domain.FiscalPeriodTransitions.Authorize(admin, domain.FiscalPeriodClosed, domain.ActionEdit, false)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "Cannot edit closed fiscal period", err.Error())

	_, err = domain.FiscalPeriodTransitions.Authorize(admin, domain.FiscalPeriodClosed, domain.ActionReopen, false)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	next, err := domain.FiscalPeriodTransitions.Authorize(superAdmin, domain.FiscalPeriodClosed, domain.ActionReopen, false)
	require.NoError(t, err)
	assert.Equal(t, domain.FiscalPeriodOpen, next)

	assert.True(t, domain.FiscalPeriodTransitions.CanPerform(admin, domain.FiscalPeriodOpen, domain.ActionClose, false))
	assert.False(t, domain.FiscalPeriodTransitions.CanPerform(staff, domain.FiscalPeriodOpen, domain.ActionClose, false))
	assert.Equal(t, domain.FiscalPeriodClosed, domain.FiscalPeriod{IsClosed: true}.Status())
}
