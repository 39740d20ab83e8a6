package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/utils"
)

// InvestmentRequest describes a purchase. Units and PurchasePrice default
// to one unit at the full amount.
type InvestmentRequest struct {
	Type          models.InvestmentType `json:"type,omitempty"`
	Name          string                `json:"name"`
	Symbol        string                `json:"symbol,omitempty"`
	Amount        float64               `json:"amount"`
	Units         float64               `json:"units,omitempty"`
	PurchasePrice float64               `json:"purchase_price,omitempty"`
	Platform      string                `json:"platform,omitempty"`
	UserID        string                `json:"user_id,omitempty"`
}

// BuyInvestment simulates an investment purchase funded from savings
func (s *Service) BuyInvestment(ctx context.Context, req InvestmentRequest) Result[models.InvestmentSettlement] {
	const op = "buy_investment"
	start := time.Now()

	if req.Amount <= 0 {
		return observe(s, op, start, invalidAmount[models.InvestmentSettlement]())
	}

	if err := s.wait(ctx, s.rules.Delays.Investment); err != nil {
		return observe(s, op, start, cancelled[models.InvestmentSettlement](err))
	}

	if balance := s.availableBalance(); req.Amount > balance {
		return observe(s, op, start, fail[models.InvestmentSettlement]("Insufficient funds",
			fmt.Sprintf("Investment amount (%s) exceeds available balance (%s)",
				utils.FormatNaira(req.Amount), utils.FormatNaira(balance))))
	}

	now := s.now()
	inv := models.Investment{
		ID:            utils.GenerateID(),
		UserID:        req.UserID,
		Type:          req.Type,
		Name:          req.Name,
		Symbol:        req.Symbol,
		Amount:        req.Amount,
		Units:         req.Units,
		PurchasePrice: req.PurchasePrice,
		PurchaseDate:  now,
		Platform:      req.Platform,
		Status:        models.InvestmentActive,
	}
	if inv.Type == "" {
		inv.Type = models.InvestStocks
	}
	if inv.Name == "" {
		inv.Name = "Investment"
	}
	if inv.Units <= 0 {
		inv.Units = 1
	}
	if inv.PurchasePrice <= 0 {
		inv.PurchasePrice = req.Amount
	}
	inv.CurrentPrice = inv.PurchasePrice
	if inv.Platform == "" {
		inv.Platform = "SaveEasy Invest"
	}

	settlement := models.InvestmentSettlement{
		Investment: inv,
		Transaction: models.Transaction{
			ID:          utils.GeneratePrefixedID("INV", now),
			Type:        models.TxWithdrawal,
			Amount:      req.Amount,
			Description: "Investment purchase: " + inv.Name,
			Date:        now,
			Category:    "investment",
			Status:      models.StatusCompleted,
			Method:      models.MethodBankTransfer,
		},
	}
	return observe(s, op, start, ok(settlement, "Investment purchased successfully"))
}

// SellInvestment simulates liquidating a holding. Proceeds are drawn from
// the configured range.
func (s *Service) SellInvestment(ctx context.Context, investmentID string) Result[models.InvestmentSale] {
	const op = "sell_investment"
	start := time.Now()

	if investmentID == "" {
		return observe(s, op, start, fail[models.InvestmentSale]("Invalid investment", "An investment ID is required"))
	}

	if err := s.wait(ctx, s.rules.Delays.Investment); err != nil {
		return observe(s, op, start, cancelled[models.InvestmentSale](err))
	}

	proceeds := s.rules.SellProceedsMin
	if spread := int(s.rules.SellProceedsMax - s.rules.SellProceedsMin); spread > 0 {
		proceeds += float64(s.rnd.Intn(spread))
	}

	now := s.now()
	sale := models.InvestmentSale{
		InvestmentID: investmentID,
		Transaction: models.Transaction{
			ID:          utils.GeneratePrefixedID("INV", now),
			Type:        models.TxDeposit,
			Amount:      proceeds,
			Description: "Investment sale proceeds",
			Date:        now,
			Category:    "investment",
			Status:      models.StatusCompleted,
			Method:      models.MethodBankTransfer,
		},
	}
	return observe(s, op, start, ok(sale, "Investment sold successfully"))
}
