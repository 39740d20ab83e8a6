package models

import "time"

type CryptoSide string

const (
	CryptoBuy  CryptoSide = "buy"
	CryptoSell CryptoSide = "sell"
)

// CryptoTransaction represents a simulated crypto trade
type CryptoTransaction struct {
	ID         string     `json:"id"`
	Type       CryptoSide `json:"type"`
	Currency   string     `json:"currency"`
	Amount     float64    `json:"amount"`
	USDValue   float64    `json:"usd_value"`
	NairaValue float64    `json:"naira_value"`
	Fee        float64    `json:"fee"`
	Date       time.Time  `json:"date"`
	Status     Status     `json:"status"`
	TxHash     string     `json:"tx_hash,omitempty"`
}
