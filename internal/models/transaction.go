package models

import "time"

type TransactionType string

const (
	TxDeposit           TransactionType = "deposit"
	TxWithdrawal        TransactionType = "withdrawal"
	TxBillPayment       TransactionType = "bill_payment"
	TxGroupContribution TransactionType = "group_contribution"
	TxGoalContribution  TransactionType = "goal_contribution"
)

// Status is shared by ledger entries, bill payments and crypto trades
type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

// Method is the funding rail used for a transaction
type Method string

const (
	MethodBankTransfer Method = "bank_transfer"
	MethodCard         Method = "card"
	MethodCash         Method = "cash"
	MethodMobileMoney  Method = "mobile_money"
)

// Transaction represents an append-only ledger entry
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Category    string          `json:"category"`
	GoalID      string          `json:"goal_id,omitempty"`
	GroupID     string          `json:"group_id,omitempty"`
	Status      Status          `json:"status"`
	Method      Method          `json:"method"`
}

// IsCredit reports whether the entry adds money to the user's savings
func (t Transaction) IsCredit() bool {
	return t.Type == TxDeposit || t.Type == TxGoalContribution
}

// TransactionUpdate carries the fields that may change after creation.
// Amount and type are immutable and deliberately absent.
type TransactionUpdate struct {
	Status      *Status `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// Apply merges the set fields of the update into t
func (p TransactionUpdate) Apply(t Transaction) Transaction {
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	return t
}
