package domain

import (
	"fmt"
	"strings"

	"github.com/ecomhub/finance_backoffice/internal/apperrors"
)

// Action is a state-changing operation on a workflow entity.
type Action string

const (
	ActionCreate  Action = "create"
	ActionEdit    Action = "edit"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
	ActionReject  Action = "reject"
	ActionPost    Action = "post"
	ActionPay     Action = "pay"
	ActionClose   Action = "close"
	ActionReopen  Action = "reopen"
)

// WorkflowError is a refused transition. It unwraps to ErrConflict when the entity is in the
// wrong state and to ErrForbidden when the principal lacks the role.
type WorkflowError struct {
	Message string
	Kind    error
}

func (e *WorkflowError) Error() string { return e.Message }

func (e *WorkflowError) Unwrap() error { return e.Kind }

// Rule is one allowed (state, action) pair.
type Rule[S ~string] struct {
	From    S
	Action  Action
	MinRole Role

	// OwnerAllowed lets the entity's creator act regardless of MinRole.
	OwnerAllowed bool

	// Next is the resulting state; empty when the entity is removed.
	Next S
}

// Transitions is the explicit state machine of one entity kind.
type Transitions[S ~string] struct {
	Subject string
	Rules   []Rule[S]

	// Refusals overrides the conflict message for specific (state, action) pairs.
	Refusals map[S]map[Action]string
}

// Lookup returns the rule for action in state from.
func (t Transitions[S]) Lookup(from S, action Action) (Rule[S], bool) {
	for _, r := range t.Rules {
		if r.From == from && r.Action == action {
			return r, true
		}
	}
	return Rule[S]{}, false
}

// CanPerform reports whether the principal may run action on an entity in state from.
func (t Transitions[S]) CanPerform(p Principal, from S, action Action, isOwner bool) bool {
	_, err := t.Authorize(p, from, action, isOwner)
	return err == nil
}

// Authorize checks the state first, then the role, and returns the state the entity moves to.
func (t Transitions[S]) Authorize(p Principal, from S, action Action, isOwner bool) (S, error) {
	rule, ok := t.Lookup(from, action)
	if !ok {
		return from, &WorkflowError{Message: t.conflictMessage(from, action), Kind: apperrors.ErrConflict}
	}
	if rule.OwnerAllowed && isOwner {
		return rule.Next, nil
	}
	if !p.Role.AtLeast(rule.MinRole) {
		msg := fmt.Sprintf("Only %s can %s %s", rule.MinRole, action, t.Subject)
		if rule.OwnerAllowed {
			msg = fmt.Sprintf("Only the creator or %s can %s %s", rule.MinRole, action, t.Subject)
		}
		return from, &WorkflowError{Message: msg, Kind: apperrors.ErrForbidden}
	}
	return rule.Next, nil
}

func (t Transitions[S]) conflictMessage(from S, action Action) string {
	if msg, ok := t.Refusals[from][action]; ok {
		return msg
	}
	var states []string
	for _, r := range t.Rules {
		if r.Action == action {
			states = append(states, string(r.From))
		}
	}
	if len(states) == 0 {
		return fmt.Sprintf("Cannot %s %s", action, t.Subject)
	}
	return fmt.Sprintf("Can only %s %s with %s status", action, t.Subject, strings.Join(states, " or "))
}

// JournalEntryTransitions governs journal entries: drafts are editable by anyone, approval
// and posting need an admin.
var JournalEntryTransitions = Transitions[JournalEntryStatus]{
	Subject: "journal entries",
	Rules: []Rule[JournalEntryStatus]{
		{From: JournalDraft, Action: ActionEdit, MinRole: RoleStaff, Next: JournalDraft},
		{From: JournalDraft, Action: ActionDelete, MinRole: RoleStaff},
		{From: JournalDraft, Action: ActionApprove, MinRole: RoleAdmin, Next: JournalApproved},
		{From: JournalDraft, Action: ActionReject, MinRole: RoleAdmin, Next: JournalRejected},
		{From: JournalApproved, Action: ActionPost, MinRole: RoleAdmin, Next: JournalPosted},
	},
}

// ExpenseTransitions governs operational expenses.
var ExpenseTransitions = Transitions[ExpenseStatus]{
	Subject: "expenses",
	Rules: []Rule[ExpenseStatus]{
		{From: ExpensePending, Action: ActionEdit, MinRole: RoleAdmin, OwnerAllowed: true, Next: ExpensePending},
		{From: ExpensePending, Action: ActionDelete, MinRole: RoleAdmin, OwnerAllowed: true},
		{From: ExpensePending, Action: ActionApprove, MinRole: RoleAdmin, Next: ExpenseApproved},
		{From: ExpensePending, Action: ActionReject, MinRole: RoleAdmin, Next: ExpenseRejected},
		{From: ExpenseApproved, Action: ActionPay, MinRole: RoleAdmin, Next: ExpensePaid},
	},
}

// FiscalPeriodTransitions governs fiscal periods. Reopening a closed period is reserved for
// superadmins.
var FiscalPeriodTransitions = Transitions[FiscalPeriodStatus]{
	Subject: "fiscal periods",
	Rules: []Rule[FiscalPeriodStatus]{
		{From: FiscalPeriodOpen, Action: ActionEdit, MinRole: RoleStaff, Next: FiscalPeriodOpen},
		{From: FiscalPeriodOpen, Action: ActionDelete, MinRole: RoleAdmin},
		{From: FiscalPeriodOpen, Action: ActionClose, MinRole: RoleAdmin, Next: FiscalPeriodClosed},
		{From: FiscalPeriodClosed, Action: ActionReopen, MinRole: RoleSuperAdmin, Next: FiscalPeriodOpen},
	},
	Refusals: map[FiscalPeriodStatus]map[Action]string{
		FiscalPeriodClosed: {
			ActionEdit:   "Cannot edit closed fiscal period",
			ActionDelete: "Cannot delete closed fiscal period",
			ActionClose:  "Fiscal period is already closed",
		},
		FiscalPeriodOpen: {
			ActionReopen: "Fiscal period is already open",
		},
	},
}
