package store

import (
	"time"

	"github.com/Dan9191/saveeasy/internal/models"
)

// Action is a command applied to the state by Reduce. The set is closed:
// only the types declared in this file are actions.
type Action interface {
	// Name identifies the action in logs
	Name() string
	sealed()
}

type (
	UpdateUser struct {
		Update models.UserUpdate
	}
	AddSavingsGoal struct {
		Goal models.SavingsGoal
	}
	UpdateSavingsGoal struct {
		ID     string
		Update models.GoalUpdate
	}
	DeleteSavingsGoal struct {
		ID string
	}
	// AddTransaction is the only path by which balances change. A
	// transaction whose ID is already in the ledger is ignored, so a
	// re-dispatched commit never counts twice.
	AddTransaction struct {
		Transaction models.Transaction
	}
	UpdateTransaction struct {
		ID     string
		Update models.TransactionUpdate
	}
	// AddBillPayment records the bill alone. Prefer CommitBillPayment,
	// which also writes the matching ledger entry.
	AddBillPayment struct {
		Payment models.BillPayment
	}
	MarkNotificationRead struct {
		ID string
	}
	AddNotification struct {
		Notification models.Notification
	}
	UpdateModuleProgress struct {
		ID        string
		Progress  float64
		Completed *bool
	}
	JoinChallenge struct {
		ID string
	}
	UpdateChallengeProgress struct {
		ID     string
		Amount float64
	}
	// RefreshAnalytics recomputes the analytics projection for the month
	// containing At
	RefreshAnalytics struct {
		At time.Time
	}

	CommitBillPayment struct {
		Payment     models.BillPayment
		Transaction models.Transaction
	}
	CommitInvestment struct {
		Investment  models.Investment
		Transaction models.Transaction
	}
	SettleInvestmentSale struct {
		InvestmentID string
		Transaction  models.Transaction
	}
	AddGroup struct {
		Group models.Group
	}
	RecordGroupMembership struct {
		Membership models.GroupMembership
		Member     models.GroupMember
	}
	RecordGroupContribution struct {
		Transaction models.Transaction
		MemberID    string
	}
	AddLoan struct {
		Loan models.Loan
	}
	RecordLoanPayment struct {
		LoanID      string
		Payment     models.LoanPayment
		Transaction models.Transaction
	}
	AddCryptoTransaction struct {
		Transaction models.CryptoTransaction
	}
	AddMarketplaceItem struct {
		Item models.MarketplaceItem
	}
	AddMarketplaceOrder struct {
		Order models.MarketplaceOrder
	}
	AddBudget struct {
		Budget models.Budget
	}
	TrackBudgetExpense struct {
		BudgetID   string
		CategoryID string
		Amount     float64
	}
	AddConversation struct {
		Conversation models.AIConversation
	}
	AddVoiceCommand struct {
		Command models.VoiceCommand
	}
)

func (UpdateUser) Name() string              { return "UPDATE_USER" }
func (AddSavingsGoal) Name() string          { return "ADD_SAVINGS_GOAL" }
func (UpdateSavingsGoal) Name() string       { return "UPDATE_SAVINGS_GOAL" }
func (DeleteSavingsGoal) Name() string       { return "DELETE_SAVINGS_GOAL" }
func (AddTransaction) Name() string          { return "ADD_TRANSACTION" }
func (UpdateTransaction) Name() string       { return "UPDATE_TRANSACTION" }
func (AddBillPayment) Name() string          { return "ADD_BILL_PAYMENT" }
func (MarkNotificationRead) Name() string    { return "MARK_NOTIFICATION_READ" }
func (AddNotification) Name() string         { return "ADD_NOTIFICATION" }
func (UpdateModuleProgress) Name() string    { return "UPDATE_MODULE_PROGRESS" }
func (JoinChallenge) Name() string           { return "JOIN_CHALLENGE" }
func (UpdateChallengeProgress) Name() string { return "UPDATE_CHALLENGE_PROGRESS" }
func (RefreshAnalytics) Name() string        { return "REFRESH_ANALYTICS" }
func (CommitBillPayment) Name() string       { return "COMMIT_BILL_PAYMENT" }
func (CommitInvestment) Name() string        { return "COMMIT_INVESTMENT" }
func (SettleInvestmentSale) Name() string    { return "SETTLE_INVESTMENT_SALE" }
func (AddGroup) Name() string                { return "ADD_GROUP" }
func (RecordGroupMembership) Name() string   { return "RECORD_GROUP_MEMBERSHIP" }
func (RecordGroupContribution) Name() string { return "RECORD_GROUP_CONTRIBUTION" }
func (AddLoan) Name() string                 { return "ADD_LOAN" }
func (RecordLoanPayment) Name() string       { return "RECORD_LOAN_PAYMENT" }
func (AddCryptoTransaction) Name() string    { return "ADD_CRYPTO_TRANSACTION" }
func (AddMarketplaceItem) Name() string      { return "ADD_MARKETPLACE_ITEM" }
func (AddMarketplaceOrder) Name() string     { return "ADD_MARKETPLACE_ORDER" }
func (AddBudget) Name() string               { return "ADD_BUDGET" }
func (TrackBudgetExpense) Name() string      { return "TRACK_BUDGET_EXPENSE" }
func (AddConversation) Name() string         { return "ADD_CONVERSATION" }
func (AddVoiceCommand) Name() string         { return "ADD_VOICE_COMMAND" }

func (UpdateUser) sealed()              {}
func (AddSavingsGoal) sealed()          {}
func (UpdateSavingsGoal) sealed()       {}
func (DeleteSavingsGoal) sealed()       {}
func (AddTransaction) sealed()          {}
func (UpdateTransaction) sealed()       {}
func (AddBillPayment) sealed()          {}
func (MarkNotificationRead) sealed()    {}
func (AddNotification) sealed()         {}
func (UpdateModuleProgress) sealed()    {}
func (JoinChallenge) sealed()           {}
func (UpdateChallengeProgress) sealed() {}
func (RefreshAnalytics) sealed()        {}
func (CommitBillPayment) sealed()       {}
func (CommitInvestment) sealed()        {}
func (SettleInvestmentSale) sealed()    {}
func (AddGroup) sealed()                {}
func (RecordGroupMembership) sealed()   {}
func (RecordGroupContribution) sealed() {}
func (AddLoan) sealed()                 {}
func (RecordLoanPayment) sealed()       {}
func (AddCryptoTransaction) sealed()    {}
func (AddMarketplaceItem) sealed()      {}
func (AddMarketplaceOrder) sealed()     {}
func (AddBudget) sealed()               {}
func (TrackBudgetExpense) sealed()      {}
func (AddConversation) sealed()         {}
func (AddVoiceCommand) sealed()         {}
