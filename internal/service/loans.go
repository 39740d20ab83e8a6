package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/utils"
)

// LoanRequest describes a loan application
type LoanRequest struct {
	Type       models.LoanType `json:"type,omitempty"`
	Amount     float64         `json:"amount"`
	TermMonths int             `json:"term_months,omitempty"`
	Purpose    string          `json:"purpose,omitempty"`
	Collateral string          `json:"collateral,omitempty"`
	UserID     string          `json:"user_id,omitempty"`
}

// LoanTerms computes the flat add-on schedule: the total repayable is
// amount * (1 + rate), split evenly across the term
func LoanTerms(amount, addOnRate float64, termMonths int) (total, monthly float64) {
	t := decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(1).Add(decimal.NewFromFloat(addOnRate)))
	m := t.Div(decimal.NewFromInt(int64(termMonths)))
	return t.Round(2).InexactFloat64(), m.Round(2).InexactFloat64()
}

// ApplyForLoan simulates a credit decision
func (s *Service) ApplyForLoan(ctx context.Context, req LoanRequest) Result[models.Loan] {
	const op = "apply_for_loan"
	start := time.Now()

	if req.Amount <= 0 {
		return observe(s, op, start, invalidAmount[models.Loan]())
	}
	if req.TermMonths < 0 {
		return observe(s, op, start, fail[models.Loan]("Invalid term", "Loan term must be a positive number of months"))
	}

	if err := s.wait(ctx, s.rules.Delays.LoanApplication); err != nil {
		return observe(s, op, start, cancelled[models.Loan](err))
	}

	if s.rnd.Float64() < s.rules.LoanDeclineRate {
		return observe(s, op, start, fail[models.Loan]("Loan application declined",
			"Credit score does not meet minimum requirements"))
	}

	term := req.TermMonths
	if term == 0 {
		term = s.rules.LoanDefaultTermMonths
	}
	total, monthly := LoanTerms(req.Amount, s.rules.LoanAddOnRate, term)
	rate, _ := decimal.NewFromFloat(s.rules.LoanAddOnRate).Mul(decimal.NewFromInt(100)).Round(2).Float64()

	now := s.now()
	loan := models.Loan{
		ID:               utils.GenerateID(),
		UserID:           req.UserID,
		Type:             req.Type,
		Amount:           req.Amount,
		InterestRate:     rate,
		TermMonths:       term,
		MonthlyPayment:   monthly,
		RemainingBalance: total,
		StartDate:        now,
		EndDate:          now.AddDate(0, 0, term*30),
		Status:           models.LoanPendingApproval,
		Lender:           "SaveEasy Loans",
		Purpose:          req.Purpose,
		Collateral:       req.Collateral,
		Payments:         []models.LoanPayment{},
	}
	if loan.Type == "" {
		loan.Type = models.LoanPersonal
	}
	if loan.Purpose == "" {
		loan.Purpose = "Personal use"
	}

	return observe(s, op, start, ok(loan,
		"Loan application submitted successfully. You will be notified within 24 hours."))
}

// MakeLoanPayment simulates a repayment. The payment is split between
// principal and the add-on interest in the loan's fixed proportion.
func (s *Service) MakeLoanPayment(ctx context.Context, loanID string, amount float64) Result[models.LoanPaymentReceipt] {
	const op = "loan_payment"
	start := time.Now()

	if amount <= 0 {
		return observe(s, op, start, invalidAmount[models.LoanPaymentReceipt]())
	}
	if loanID == "" {
		return observe(s, op, start, fail[models.LoanPaymentReceipt]("Invalid loan", "A loan ID is required"))
	}

	if err := s.wait(ctx, s.rules.Delays.LoanPayment); err != nil {
		return observe(s, op, start, cancelled[models.LoanPaymentReceipt](err))
	}

	if balance := s.availableBalance(); amount > balance {
		return observe(s, op, start, fail[models.LoanPaymentReceipt]("Insufficient funds",
			fmt.Sprintf("Payment amount (%s) exceeds available balance (%s)",
				utils.FormatNaira(amount), utils.FormatNaira(balance))))
	}

	paid := decimal.NewFromFloat(amount)
	r := decimal.NewFromFloat(s.rules.LoanAddOnRate)
	interest := paid.Mul(r).Div(decimal.NewFromInt(1).Add(r)).Round(2)
	principal := paid.Sub(interest)

	now := s.now()
	receipt := models.LoanPaymentReceipt{
		LoanID: loanID,
		Payment: models.LoanPayment{
			ID:              utils.GenerateID(),
			Amount:          amount,
			Date:            now,
			PrincipalAmount: principal.InexactFloat64(),
			InterestAmount:  interest.InexactFloat64(),
			Status:          models.StatusCompleted,
		},
		Transaction: models.Transaction{
			ID:          utils.GeneratePrefixedID("LNP", now),
			Type:        models.TxWithdrawal,
			Amount:      amount,
			Description: "Loan repayment",
			Date:        now,
			Category:    "loan_payment",
			Status:      models.StatusCompleted,
			Method:      models.MethodBankTransfer,
		},
	}
	return observe(s, op, start, ok(receipt, "Loan payment successful"))
}
