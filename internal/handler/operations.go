package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/service"
)

type amountRequest struct {
	Amount float64 `json:"amount"`
}

type autoPayRequest struct {
	service.BillRequest
	Frequency models.Frequency `json:"frequency"`
}

type cryptoRequest struct {
	Symbol string  `json:"symbol"`
	Amount float64 `json:"amount"`
}

type orderRequest struct {
	Quantity      int    `json:"quantity"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

type messageRequest struct {
	Message string `json:"message"`
}

type commandRequest struct {
	Command string `json:"command"`
}

// Deposit handles savings deposits
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	var req service.DepositRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.Deposit(r.Context(), req))
}

// Withdraw handles savings withdrawals
func (h *Handler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req service.WithdrawRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.Withdraw(r.Context(), req))
}

// AccessEmergencyFund handles emergency withdrawals
func (h *Handler) AccessEmergencyFund(w http.ResponseWriter, r *http.Request) {
	var req service.EmergencyRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.AccessEmergencyFund(r.Context(), req))
}

// CreateGoal handles goal creation
func (h *Handler) CreateGoal(w http.ResponseWriter, r *http.Request) {
	var req service.GoalRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.CreateGoal(r.Context(), req))
}

// JoinGroup handles group membership applications
func (h *Handler) JoinGroup(w http.ResponseWriter, r *http.Request) {
	var req service.JoinGroupRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.JoinGroup(r.Context(), req))
}

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req service.GroupRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.CreateGroup(r.Context(), req))
}

func (h *Handler) ContributeToGroup(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.ContributeToGroup(r.Context(), mux.Vars(r)["id"], req.Amount))
}

// PayBill handles one-off bill payments
func (h *Handler) PayBill(w http.ResponseWriter, r *http.Request) {
	var req service.BillRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.PayBill(r.Context(), req))
}

// SetupAutoPay schedules a recurring bill payment
func (h *Handler) SetupAutoPay(w http.ResponseWriter, r *http.Request) {
	var req autoPayRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.SetupAutoPay(r.Context(), req.BillRequest, req.Frequency))
}

func (h *Handler) BuyInvestment(w http.ResponseWriter, r *http.Request) {
	var req service.InvestmentRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.BuyInvestment(r.Context(), req))
}

func (h *Handler) SellInvestment(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.app.SellInvestment(r.Context(), mux.Vars(r)["id"]))
}

func (h *Handler) ApplyForLoan(w http.ResponseWriter, r *http.Request) {
	var req service.LoanRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.ApplyForLoan(r.Context(), req))
}

func (h *Handler) MakeLoanPayment(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.MakeLoanPayment(r.Context(), mux.Vars(r)["id"], req.Amount))
}

// BuyCrypto spends a naira amount on coins
func (h *Handler) BuyCrypto(w http.ResponseWriter, r *http.Request) {
	var req cryptoRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.BuyCrypto(r.Context(), req.Symbol, req.Amount))
}

// SellCrypto sells a coin amount
func (h *Handler) SellCrypto(w http.ResponseWriter, r *http.Request) {
	var req cryptoRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.SellCrypto(r.Context(), req.Symbol, req.Amount))
}

func (h *Handler) ListItem(w http.ResponseWriter, r *http.Request) {
	var req service.ListingRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.ListItem(r.Context(), req))
}

func (h *Handler) BuyItem(w http.ResponseWriter, r *http.Request) {
	req := orderRequest{Quantity: 1}
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.BuyItem(r.Context(), mux.Vars(r)["id"], req.Quantity, req.PaymentMethod))
}

func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.Chat(r.Context(), req.Message))
}

func (h *Handler) Insights(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.app.Insights(r.Context()))
}

func (h *Handler) ProcessVoiceCommand(w http.ResponseWriter, r *http.Request) {
	var req commandRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.ProcessVoiceCommand(r.Context(), req.Command))
}

func (h *Handler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	var req service.BudgetRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.CreateBudget(r.Context(), req))
}

func (h *Handler) TrackExpense(w http.ResponseWriter, r *http.Request) {
	var req service.ExpenseRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.TrackExpense(r.Context(), req))
}

func (h *Handler) SendNotification(w http.ResponseWriter, r *http.Request) {
	var req service.NotificationRequest
	if !decode(w, r, &req) {
		return
	}
	writeResult(w, h.app.SendNotification(r.Context(), req))
}
