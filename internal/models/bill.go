package models

import "time"

type BillType string

const (
	BillAirtime     BillType = "airtime"
	BillData        BillType = "data"
	BillElectricity BillType = "electricity"
	BillCableTV     BillType = "cable_tv"
	BillWater       BillType = "water"
	BillInternet    BillType = "internet"
)

// BillPayment represents a one-shot utility or airtime payment
type BillPayment struct {
	ID            string    `json:"id"`
	Type          BillType  `json:"type"`
	Provider      string    `json:"provider"`
	AccountNumber string    `json:"account_number"`
	Amount        float64   `json:"amount"`
	Status        Status    `json:"status"`
	Date          time.Time `json:"date"`
	Reference     string    `json:"reference"`
}

// BillSettlement pairs a bill payment with its ledger entry so both are
// committed together
type BillSettlement struct {
	Payment     BillPayment `json:"payment"`
	Transaction Transaction `json:"transaction"`
}

// AutoPaySchedule describes a recurring bill payment
type AutoPaySchedule struct {
	ID            string    `json:"id"`
	Type          BillType  `json:"type"`
	Provider      string    `json:"provider"`
	AccountNumber string    `json:"account_number"`
	Amount        float64   `json:"amount"`
	Frequency     Frequency `json:"frequency"`
	Spec          string    `json:"spec"`
	NextRun       time.Time `json:"next_run"`
}
