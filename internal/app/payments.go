package app

import (
	"context"
	"fmt"

	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/service"
	"github.com/Dan9191/saveeasy/internal/store"
	"github.com/Dan9191/saveeasy/internal/utils"
)

// PayBill pays a bill and records it together with its ledger entry
func (a *App) PayBill(ctx context.Context, req service.BillRequest) service.Result[models.BillSettlement] {
	res := a.svc.PayBill(ctx, req)
	if !res.Success {
		a.notify("Payment Failed", res.Message, models.NotifyError)
		return res
	}
	a.commit(store.CommitBillPayment{Payment: res.Data.Payment, Transaction: res.Data.Transaction})
	a.notify("Payment Successful", res.Message, models.NotifySuccess)
	return res
}

// SetupAutoPay schedules a recurring bill payment
func (a *App) SetupAutoPay(ctx context.Context, req service.BillRequest, frequency models.Frequency) service.Result[models.AutoPaySchedule] {
	res := a.svc.SetupAutoPay(ctx, req, frequency)
	if !res.Success {
		return res
	}
	if a.autopay != nil {
		if err := a.autopay.RegisterAutoPay(res.Data); err != nil {
			a.log.Errorf("Failed to register auto-pay %s: %v", res.Data.ID, err)
			return service.Result[models.AutoPaySchedule]{Message: "Auto-pay setup failed", Error: err.Error()}
		}
	}
	a.notify("Auto-pay Enabled",
		fmt.Sprintf("%s %s will be paid automatically. Next payment: %s",
			req.Provider, frequency, res.Data.NextRun.Format("Mon 2 Jan 15:04")),
		models.NotifyInfo)
	return res
}

// BuyInvestment buys a holding funded from savings
func (a *App) BuyInvestment(ctx context.Context, req service.InvestmentRequest) service.Result[models.InvestmentSettlement] {
	a.ledger.Lock()
	defer a.ledger.Unlock()

	req.UserID = a.user().ID
	res := a.svc.BuyInvestment(ctx, req)
	if !res.Success {
		return res
	}
	a.commit(store.CommitInvestment{Investment: res.Data.Investment, Transaction: res.Data.Transaction})
	a.notify("Investment Purchased", fmt.Sprintf("You invested in %s", res.Data.Investment.Name), models.NotifySuccess)
	return res
}

// SellInvestment liquidates an active holding
func (a *App) SellInvestment(ctx context.Context, investmentID string) service.Result[models.InvestmentSale] {
	found := false
	for _, inv := range a.store.Snapshot().Investments {
		if inv.ID == investmentID && inv.Status == models.InvestmentActive {
			found = true
		}
	}
	if !found {
		return notFound[models.InvestmentSale]("active investment")
	}

	res := a.svc.SellInvestment(ctx, investmentID)
	if res.Success {
		a.commit(store.SettleInvestmentSale{InvestmentID: investmentID, Transaction: res.Data.Transaction})
	}
	return res
}

// ApplyForLoan submits a loan application
func (a *App) ApplyForLoan(ctx context.Context, req service.LoanRequest) service.Result[models.Loan] {
	req.UserID = a.user().ID
	res := a.svc.ApplyForLoan(ctx, req)
	if !res.Success {
		a.notify("Loan Application Declined", res.Error, models.NotifyWarning)
		return res
	}
	a.commit(store.AddLoan{Loan: res.Data})
	a.notify("Loan Application Submitted", res.Message, models.NotifyInfo)
	return res
}

// MakeLoanPayment repays part of a loan. Paid-off loans and payments above
// the remaining balance are refused.
func (a *App) MakeLoanPayment(ctx context.Context, loanID string, amount float64) service.Result[models.LoanPaymentReceipt] {
	a.ledger.Lock()
	defer a.ledger.Unlock()

	var loan *models.Loan
	for _, l := range a.store.Snapshot().Loans {
		if l.ID == loanID {
			loan = &l
			break
		}
	}
	switch {
	case loan == nil:
		return notFound[models.LoanPaymentReceipt]("loan")
	case loan.Status == models.LoanPaidOff:
		return service.Result[models.LoanPaymentReceipt]{Message: "Loan already repaid", Error: "This loan has no outstanding balance"}
	case amount > loan.RemainingBalance:
		reason := fmt.Sprintf("Payment (%s) exceeds the remaining balance (%s)",
			utils.FormatNaira(amount), utils.FormatNaira(loan.RemainingBalance))
		return service.Result[models.LoanPaymentReceipt]{Message: "Payment exceeds loan balance", Error: reason}
	}

	res := a.svc.MakeLoanPayment(ctx, loanID, amount)
	if res.Success {
		a.commit(store.RecordLoanPayment{LoanID: loanID, Payment: res.Data.Payment, Transaction: res.Data.Transaction})
	}
	return res
}

// BuyCrypto buys coins worth nairaAmount
func (a *App) BuyCrypto(ctx context.Context, symbol string, nairaAmount float64) service.Result[models.CryptoTransaction] {
	res := a.svc.BuyCrypto(ctx, symbol, nairaAmount)
	if res.Success {
		a.store.Dispatch(store.AddCryptoTransaction{Transaction: res.Data})
	}
	return res
}

// SellCrypto sells coinAmount coins
func (a *App) SellCrypto(ctx context.Context, symbol string, coinAmount float64) service.Result[models.CryptoTransaction] {
	res := a.svc.SellCrypto(ctx, symbol, coinAmount)
	if res.Success {
		a.store.Dispatch(store.AddCryptoTransaction{Transaction: res.Data})
	}
	return res
}
