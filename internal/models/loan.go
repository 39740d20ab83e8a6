package models

import "time"

type LoanType string

const (
	LoanPersonal  LoanType = "personal"
	LoanBusiness  LoanType = "business"
	LoanEmergency LoanType = "emergency"
	LoanEducation LoanType = "education"
)

type LoanStatus string

const (
	LoanActive          LoanStatus = "active"
	LoanPaidOff         LoanStatus = "paid_off"
	LoanDefaulted       LoanStatus = "defaulted"
	LoanPendingApproval LoanStatus = "pending_approval"
)

// Loan represents a credit facility with a flat add-on rate
type Loan struct {
	ID               string        `json:"id"`
	UserID           string        `json:"user_id"`
	Type             LoanType      `json:"type"`
	Amount           float64       `json:"amount"`
	InterestRate     float64       `json:"interest_rate"` // percent
	TermMonths       int           `json:"term_months"`
	MonthlyPayment   float64       `json:"monthly_payment"`
	RemainingBalance float64       `json:"remaining_balance"`
	StartDate        time.Time     `json:"start_date"`
	EndDate          time.Time     `json:"end_date"`
	Status           LoanStatus    `json:"status"`
	Lender           string        `json:"lender"`
	Purpose          string        `json:"purpose"`
	Collateral       string        `json:"collateral,omitempty"`
	Payments         []LoanPayment `json:"payments"`
}

// LoanPayment represents one repayment against a loan
type LoanPayment struct {
	ID               string    `json:"id"`
	Amount           float64   `json:"amount"`
	Date             time.Time `json:"date"`
	PrincipalAmount  float64   `json:"principal_amount"`
	InterestAmount   float64   `json:"interest_amount"`
	RemainingBalance float64   `json:"remaining_balance"`
	Status           Status    `json:"status"`
}

// LoanPaymentReceipt pairs a repayment with its ledger entry
type LoanPaymentReceipt struct {
	LoanID      string      `json:"loan_id"`
	Payment     LoanPayment `json:"payment"`
	Transaction Transaction `json:"transaction"`
}
