package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/utils"
)

// auto-pay runs at 09:00, on Mondays or on the first of the month
var autoPaySpecs = map[models.Frequency]string{
	models.Weekly:  "0 9 * * 1",
	models.Monthly: "0 9 1 * *",
}

var billLabels = map[models.BillType]string{
	models.BillAirtime:     "Airtime",
	models.BillData:        "Data",
	models.BillElectricity: "Electricity",
	models.BillCableTV:     "Cable TV",
	models.BillWater:       "Water",
	models.BillInternet:    "Internet",
}

// BillRequest describes a utility or telecom payment
type BillRequest struct {
	Type          models.BillType `json:"type"`
	Provider      string          `json:"provider"`
	AccountNumber string          `json:"account_number"`
	Amount        float64         `json:"amount"`
}

func (s *Service) validateBill(req BillRequest) (string, bool) {
	if req.Amount <= 0 {
		return "", false
	}
	if strings.TrimSpace(req.Provider) == "" {
		return "Provider is required", false
	}
	if req.Type != "" {
		if _, known := billLabels[req.Type]; !known {
			return fmt.Sprintf("Unknown bill type %q", req.Type), false
		}
	}
	return "", true
}

// PayBill simulates a bill payment. On success the bill record and the
// ledger entry that pays for it are returned together.
func (s *Service) PayBill(ctx context.Context, req BillRequest) Result[models.BillSettlement] {
	const op = "pay_bill"
	start := time.Now()

	if reason, valid := s.validateBill(req); !valid {
		if reason == "" {
			return observe(s, op, start, invalidAmount[models.BillSettlement]())
		}
		return observe(s, op, start, fail[models.BillSettlement]("Invalid bill", reason))
	}

	if err := s.wait(ctx, s.rules.Delays.BillPayment); err != nil {
		return observe(s, op, start, cancelled[models.BillSettlement](err))
	}

	if s.rnd.Float64() < s.rules.BillFailureRate {
		return observe(s, op, start, fail[models.BillSettlement]("Payment failed", "Network error. Please try again."))
	}

	billType := req.Type
	if billType == "" {
		billType = models.BillAirtime
	}
	now := s.now()
	settlement := models.BillSettlement{
		Payment: models.BillPayment{
			ID:            utils.GenerateID(),
			Type:          billType,
			Provider:      req.Provider,
			AccountNumber: req.AccountNumber,
			Amount:        req.Amount,
			Status:        models.StatusCompleted,
			Date:          now,
			Reference:     utils.GenerateReference(now),
		},
		Transaction: models.Transaction{
			ID:          utils.GeneratePrefixedID("BIL", now),
			Type:        models.TxBillPayment,
			Amount:      req.Amount,
			Description: fmt.Sprintf("%s - %s", billLabels[billType], req.Provider),
			Date:        now,
			Category:    billCategory(billType),
			Status:      models.StatusCompleted,
			Method:      models.MethodMobileMoney,
		},
	}
	return observe(s, op, start, ok(settlement, "Bill payment successful"))
}

func billCategory(t models.BillType) string {
	switch t {
	case models.BillAirtime, models.BillData:
		return "telecommunications"
	case models.BillCableTV:
		return "entertainment"
	default:
		return "utilities"
	}
}

// SetupAutoPay registers a recurring bill payment and reports its next run
func (s *Service) SetupAutoPay(ctx context.Context, req BillRequest, frequency models.Frequency) Result[models.AutoPaySchedule] {
	const op = "setup_auto_pay"
	start := time.Now()

	if reason, valid := s.validateBill(req); !valid {
		if reason == "" {
			return observe(s, op, start, invalidAmount[models.AutoPaySchedule]())
		}
		return observe(s, op, start, fail[models.AutoPaySchedule]("Invalid bill", reason))
	}
	spec, known := autoPaySpecs[frequency]
	if !known {
		return observe(s, op, start, fail[models.AutoPaySchedule]("Invalid frequency",
			"Auto-pay supports weekly or monthly payments"))
	}
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		panic(fmt.Sprintf("auto-pay spec %q: %v", spec, err))
	}

	if err := s.wait(ctx, s.rules.Delays.AutoPay); err != nil {
		return observe(s, op, start, cancelled[models.AutoPaySchedule](err))
	}

	billType := req.Type
	if billType == "" {
		billType = models.BillAirtime
	}
	sched := models.AutoPaySchedule{
		ID:            utils.GenerateID(),
		Type:          billType,
		Provider:      req.Provider,
		AccountNumber: req.AccountNumber,
		Amount:        req.Amount,
		Frequency:     frequency,
		Spec:          spec,
		NextRun:       schedule.Next(s.now()),
	}
	return observe(s, op, start, ok(sched, fmt.Sprintf("Auto-pay setup successful for %s payments", frequency)))
}
