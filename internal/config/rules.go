package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Delay is a simulated latency: Base plus a uniformly random share of Jitter
type Delay struct {
	Base   time.Duration `yaml:"base"`
	Jitter time.Duration `yaml:"jitter"`
}

// Delays is the latency profile of every simulated operation
type Delays struct {
	Deposit           Delay `yaml:"deposit"`
	Withdrawal        Delay `yaml:"withdrawal"`
	PinVerification   Delay `yaml:"pin_verification"`
	CreateGoal        Delay `yaml:"create_goal"`
	GroupJoin         Delay `yaml:"group_join"`
	GroupCreate       Delay `yaml:"group_create"`
	GroupContribution Delay `yaml:"group_contribution"`
	BillPayment       Delay `yaml:"bill_payment"`
	AutoPay           Delay `yaml:"auto_pay"`
	Investment        Delay `yaml:"investment"`
	LoanApplication   Delay `yaml:"loan_application"`
	LoanPayment       Delay `yaml:"loan_payment"`
	Crypto            Delay `yaml:"crypto"`
	MarketplaceList   Delay `yaml:"marketplace_list"`
	MarketplaceBuy    Delay `yaml:"marketplace_buy"`
	Chat              Delay `yaml:"chat"`
	Insights          Delay `yaml:"insights"`
	Budget            Delay `yaml:"budget"`
	Expense           Delay `yaml:"expense"`
	Notification      Delay `yaml:"notification"`
	Voice             Delay `yaml:"voice"`
}

// GroupTemplate describes the circles offered for one group type
type GroupTemplate struct {
	Names         []string  `yaml:"names"`
	Contributions []float64 `yaml:"contributions"`
	SuccessRate   float64   `yaml:"success_rate"`
}

// Rules holds every limit, probability and delay used by the mock service
type Rules struct {
	LatencyScale float64 `yaml:"latency_scale"`
	Delays       Delays  `yaml:"delays"`

	DepositDailyLimit        float64 `yaml:"deposit_daily_limit"`
	LargeDepositThreshold    float64 `yaml:"large_deposit_threshold"`
	WithdrawalDailyLimit     float64 `yaml:"withdrawal_daily_limit"`
	LargeWithdrawalThreshold float64 `yaml:"large_withdrawal_threshold"`
	SimulatedBalance         float64 `yaml:"simulated_balance"`
	PinThreshold             float64 `yaml:"pin_threshold"`
	PinHash                  string  `yaml:"pin_hash"`

	EmergencyDefaultLimit float64                  `yaml:"emergency_default_limit"`
	EmergencyLimits       map[string]float64       `yaml:"emergency_limits"`
	UrgencyDelays         map[string]time.Duration `yaml:"urgency_delays"`

	GroupJoinFailureRate float64                  `yaml:"group_join_failure_rate"`
	GroupTemplates       map[string]GroupTemplate `yaml:"group_templates"`

	BillFailureRate float64 `yaml:"bill_failure_rate"`

	LoanDeclineRate       float64 `yaml:"loan_decline_rate"`
	LoanAddOnRate         float64 `yaml:"loan_add_on_rate"`
	LoanDefaultTermMonths int     `yaml:"loan_default_term_months"`

	CryptoFeeRate   float64 `yaml:"crypto_fee_rate"`
	SellProceedsMin float64 `yaml:"sell_proceeds_min"`
	SellProceedsMax float64 `yaml:"sell_proceeds_max"`
}

func fixed(d time.Duration) Delay { return Delay{Base: d} }

// DefaultRules returns the rule tables of the demo product
func DefaultRules() Rules {
	return Rules{
		LatencyScale: 1,
		Delays: Delays{
			Deposit:           Delay{Base: 1200 * time.Millisecond, Jitter: 800 * time.Millisecond},
			Withdrawal:        Delay{Base: 2 * time.Second, Jitter: time.Second},
			PinVerification:   fixed(1500 * time.Millisecond),
			CreateGoal:        fixed(time.Second),
			GroupJoin:         Delay{Base: 2500 * time.Millisecond, Jitter: 1500 * time.Millisecond},
			GroupCreate:       fixed(1500 * time.Millisecond),
			GroupContribution: fixed(1500 * time.Millisecond),
			BillPayment:       fixed(2500 * time.Millisecond),
			AutoPay:           fixed(time.Second),
			Investment:        fixed(2 * time.Second),
			LoanApplication:   fixed(3 * time.Second),
			LoanPayment:       fixed(1500 * time.Millisecond),
			Crypto:            fixed(2 * time.Second),
			MarketplaceList:   fixed(1500 * time.Millisecond),
			MarketplaceBuy:    fixed(2 * time.Second),
			Chat:              fixed(1500 * time.Millisecond),
			Insights:          fixed(time.Second),
			Budget:            fixed(time.Second),
			Expense:           fixed(500 * time.Millisecond),
			Notification:      fixed(500 * time.Millisecond),
			Voice:             fixed(time.Second),
		},

		DepositDailyLimit:        100000,
		LargeDepositThreshold:    50000,
		WithdrawalDailyLimit:     50000,
		LargeWithdrawalThreshold: 20000,
		SimulatedBalance:         75000,
		PinThreshold:             10000,

		EmergencyDefaultLimit: 5000,
		EmergencyLimits: map[string]float64{
			"medical":           15000,
			"job_loss":          10000,
			"family_crisis":     8000,
			"natural_disaster":  20000,
			"vehicle_breakdown": 5000,
		},
		UrgencyDelays: map[string]time.Duration{
			"critical": 500 * time.Millisecond,
			"high":     time.Second,
			"medium":   2 * time.Second,
			"low":      3 * time.Second,
		},

		GroupJoinFailureRate: 0.1,
		GroupTemplates: map[string]GroupTemplate{
			"professional": {
				Names:         []string{"Tech Professionals Network", "Healthcare Workers Union", "Teachers Cooperative", "Engineers Circle"},
				Contributions: []float64{2000, 5000, 3000, 1500},
				SuccessRate:   0.85,
			},
			"community": {
				Names:         []string{"Market Traders Association", "Neighborhood Watch Savings", "Local Artisans Group", "Street Vendors Union"},
				Contributions: []float64{1000, 500, 800, 1200},
				SuccessRate:   0.75,
			},
			"family": {
				Names:         []string{"Extended Family Support", "Family Investment Circle", "Relatives Mutual Aid", "Family Emergency Fund"},
				Contributions: []float64{2000, 3000, 1500, 2500},
				SuccessRate:   0.95,
			},
			"business": {
				Names:         []string{"Small Business Owners Circle", "Entrepreneurs Network", "Start-up Support Group", "Business Growth Alliance"},
				Contributions: []float64{5000, 10000, 3000, 7500},
				SuccessRate:   0.70,
			},
			"student": {
				Names:         []string{"Student Savings Collective", "Academic Support Group", "Graduate Fund Circle", "Education Investment Club"},
				Contributions: []float64{500, 1000, 800, 1500},
				SuccessRate:   0.80,
			},
		},

		BillFailureRate: 0.05,

		LoanDeclineRate:       0.3,
		LoanAddOnRate:         0.15,
		LoanDefaultTermMonths: 12,

		CryptoFeeRate:   0.015,
		SellProceedsMin: 1000,
		SellProceedsMax: 6000,
	}
}

// LoadRules reads a YAML rules file. Keys missing from the file keep their
// default values.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	rules := DefaultRules()
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse rules file: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &rules, nil
}

// Validate checks that limits are positive and probabilities are in [0, 1]
func (r Rules) Validate() error {
	if r.LatencyScale < 0 {
		return fmt.Errorf("latency_scale must not be negative")
	}
	limits := map[string]float64{
		"deposit_daily_limit":     r.DepositDailyLimit,
		"withdrawal_daily_limit":  r.WithdrawalDailyLimit,
		"simulated_balance":       r.SimulatedBalance,
		"emergency_default_limit": r.EmergencyDefaultLimit,
	}
	for name, v := range limits {
		if v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", name, v)
		}
	}
	for name, v := range r.EmergencyLimits {
		if v <= 0 {
			return fmt.Errorf("emergency limit for %s must be positive, got %v", name, v)
		}
	}
	rates := map[string]float64{
		"group_join_failure_rate": r.GroupJoinFailureRate,
		"bill_failure_rate":       r.BillFailureRate,
		"loan_decline_rate":       r.LoanDeclineRate,
		"crypto_fee_rate":         r.CryptoFeeRate,
	}
	for name, v := range rates {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be within [0, 1], got %v", name, v)
		}
	}
	for name, t := range r.GroupTemplates {
		if len(t.Names) == 0 || len(t.Names) != len(t.Contributions) {
			return fmt.Errorf("group template %s needs matching names and contributions", name)
		}
		if t.SuccessRate < 0 || t.SuccessRate > 1 {
			return fmt.Errorf("group template %s success_rate must be within [0, 1]", name)
		}
	}
	if r.LoanDefaultTermMonths <= 0 {
		return fmt.Errorf("loan_default_term_months must be positive")
	}
	if r.SellProceedsMax-r.SellProceedsMin < 1 {
		return fmt.Errorf("sell_proceeds_max must exceed sell_proceeds_min by at least 1")
	}
	return nil
}
