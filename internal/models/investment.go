package models

import "time"

type InvestmentType string

const (
	InvestStocks        InvestmentType = "stocks"
	InvestBonds         InvestmentType = "bonds"
	InvestMutualFunds   InvestmentType = "mutual_funds"
	InvestCrypto        InvestmentType = "crypto"
	InvestRealEstate    InvestmentType = "real_estate"
	InvestTreasuryBills InvestmentType = "treasury_bills"
)

type InvestmentStatus string

const (
	InvestmentActive  InvestmentStatus = "active"
	InvestmentSold    InvestmentStatus = "sold"
	InvestmentPending InvestmentStatus = "pending"
)

// Investment represents a holding bought through the platform
type Investment struct {
	ID            string           `json:"id"`
	UserID        string           `json:"user_id"`
	Type          InvestmentType   `json:"type"`
	Name          string           `json:"name"`
	Symbol        string           `json:"symbol,omitempty"`
	Amount        float64          `json:"amount"`
	Units         float64          `json:"units"`
	PurchasePrice float64          `json:"purchase_price"`
	CurrentPrice  float64          `json:"current_price"`
	PurchaseDate  time.Time        `json:"purchase_date"`
	Platform      string           `json:"platform"`
	Status        InvestmentStatus `json:"status"`
}

// InvestmentSettlement pairs a purchase with the ledger entry that funds it
type InvestmentSettlement struct {
	Investment  Investment  `json:"investment"`
	Transaction Transaction `json:"transaction"`
}

// InvestmentSale is the proceeds of selling a holding
type InvestmentSale struct {
	InvestmentID string      `json:"investment_id"`
	Transaction  Transaction `json:"transaction"`
}
