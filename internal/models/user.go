package models

import "time"

// RiskProfile describes the user's appetite for investment risk
type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskModerate     RiskProfile = "moderate"
	RiskAggressive   RiskProfile = "aggressive"
)

// User represents the account holder and their aggregate balances
type User struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Email              string      `json:"email"`
	Phone              string      `json:"phone"`
	Avatar             string      `json:"avatar,omitempty"`
	JoinDate           time.Time   `json:"join_date"`
	TotalSavings       float64     `json:"total_savings"`
	EmergencyFund      float64     `json:"emergency_fund"`
	HasPin             bool        `json:"has_pin"`
	Notifications      bool        `json:"notifications"`
	OfflineMode        bool        `json:"offline_mode"`
	CreditScore        int         `json:"credit_score,omitempty"`
	RiskProfile        RiskProfile `json:"risk_profile,omitempty"`
	MonthlyIncome      float64     `json:"monthly_income,omitempty"`
	VerificationStatus string      `json:"verification_status,omitempty"`
	ReferralCode       string      `json:"referral_code,omitempty"`
	TotalReferrals     int         `json:"total_referrals,omitempty"`
}

// UserUpdate is a partial user. Nil fields are left unchanged.
type UserUpdate struct {
	Name               *string      `json:"name,omitempty"`
	Email              *string      `json:"email,omitempty"`
	Phone              *string      `json:"phone,omitempty"`
	Avatar             *string      `json:"avatar,omitempty"`
	TotalSavings       *float64     `json:"total_savings,omitempty"`
	EmergencyFund      *float64     `json:"emergency_fund,omitempty"`
	HasPin             *bool        `json:"has_pin,omitempty"`
	Notifications      *bool        `json:"notifications,omitempty"`
	OfflineMode        *bool        `json:"offline_mode,omitempty"`
	CreditScore        *int         `json:"credit_score,omitempty"`
	RiskProfile        *RiskProfile `json:"risk_profile,omitempty"`
	MonthlyIncome      *float64     `json:"monthly_income,omitempty"`
	VerificationStatus *string      `json:"verification_status,omitempty"`
}

// Apply merges the set fields of the update into u
func (p UserUpdate) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.TotalSavings != nil {
		u.TotalSavings = *p.TotalSavings
	}
	if p.EmergencyFund != nil {
		u.EmergencyFund = *p.EmergencyFund
	}
	if p.HasPin != nil {
		u.HasPin = *p.HasPin
	}
	if p.Notifications != nil {
		u.Notifications = *p.Notifications
	}
	if p.OfflineMode != nil {
		u.OfflineMode = *p.OfflineMode
	}
	if p.CreditScore != nil {
		u.CreditScore = *p.CreditScore
	}
	if p.RiskProfile != nil {
		u.RiskProfile = *p.RiskProfile
	}
	if p.MonthlyIncome != nil {
		u.MonthlyIncome = *p.MonthlyIncome
	}
	if p.VerificationStatus != nil {
		u.VerificationStatus = *p.VerificationStatus
	}
	return u
}
