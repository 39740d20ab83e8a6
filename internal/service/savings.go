package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Dan9191/saveeasy/internal/config"
	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/utils"
)

var depositDescriptions = map[string]string{
	"salary":    "Monthly salary deposit",
	"freelance": "Freelance project payment",
	"business":  "Business revenue deposit",
	"gift":      "Gift money deposit",
	"bonus":     "Performance bonus deposit",
}

var withdrawalDescriptions = map[string]string{
	"emergency":  "Emergency medical expense",
	"investment": "Investment opportunity",
	"education":  "School fees payment",
	"business":   "Business capital withdrawal",
	"bills":      "Utility bills payment",
	"family":     "Family support",
}

var emergencyDescriptions = map[string]string{
	"medical":           "Emergency medical treatment",
	"job_loss":          "Temporary income loss support",
	"family_crisis":     "Family emergency assistance",
	"natural_disaster":  "Natural disaster relief",
	"vehicle_breakdown": "Vehicle emergency repair",
}

// DepositRequest moves money into savings. An empty Source is a plain
// deposit; GoalID routes the money to a goal.
type DepositRequest struct {
	Amount float64 `json:"amount"`
	Source string  `json:"source,omitempty"`
	GoalID string  `json:"goal_id,omitempty"`
}

// Deposit simulates a savings deposit
func (s *Service) Deposit(ctx context.Context, req DepositRequest) Result[models.Transaction] {
	const op = "deposit"
	start := time.Now()

	if req.Amount <= 0 {
		return observe(s, op, start, invalidAmount[models.Transaction]())
	}
	description, known := depositDescriptions[req.Source]
	if req.Source != "" && !known {
		return observe(s, op, start, fail[models.Transaction]("Invalid deposit source",
			fmt.Sprintf("Unknown deposit source %q", req.Source)))
	}

	if err := s.wait(ctx, s.rules.Delays.Deposit); err != nil {
		return observe(s, op, start, cancelled[models.Transaction](err))
	}

	if req.Amount > s.rules.DepositDailyLimit {
		return observe(s, op, start, fail[models.Transaction]("Daily deposit limit exceeded",
			fmt.Sprintf("Maximum daily deposit is %s. Contact support for higher limits.", utils.FormatNaira(s.rules.DepositDailyLimit))))
	}

	now := s.now()
	tx := models.Transaction{
		ID:       utils.GeneratePrefixedID("DEP", now),
		Type:     models.TxDeposit,
		Amount:   req.Amount,
		Date:     now,
		Category: "savings",
		GoalID:   req.GoalID,
		Status:   models.StatusCompleted,
		Method:   models.MethodBankTransfer,
	}
	if req.GoalID != "" {
		tx.Type = models.TxGoalContribution
	}

	message := fmt.Sprintf("Successfully deposited %s", utils.FormatNaira(req.Amount))
	switch {
	case req.Source != "":
		tx.Description = description
		if req.Amount <= s.rules.LargeDepositThreshold {
			tx.Method = models.MethodMobileMoney
		}
		message += " from " + req.Source
	case req.GoalID != "":
		tx.Description = "Goal contribution"
	default:
		tx.Description = "Savings deposit"
	}

	return observe(s, op, start, ok(tx, message))
}

// WithdrawRequest takes money out of savings. Purpose selects a fixed
// description; Reason is free text used when there is no purpose.
type WithdrawRequest struct {
	Amount     float64 `json:"amount"`
	Purpose    string  `json:"purpose,omitempty"`
	Reason     string  `json:"reason,omitempty"`
	RequirePIN bool    `json:"require_pin,omitempty"`
	PIN        string  `json:"pin,omitempty"`
}

// Withdraw simulates a withdrawal against the live balance
func (s *Service) Withdraw(ctx context.Context, req WithdrawRequest) Result[models.Transaction] {
	const op = "withdraw"
	start := time.Now()

	if req.Amount <= 0 {
		return observe(s, op, start, invalidAmount[models.Transaction]())
	}
	description, known := withdrawalDescriptions[req.Purpose]
	if req.Purpose != "" && !known {
		return observe(s, op, start, fail[models.Transaction]("Invalid withdrawal purpose",
			fmt.Sprintf("Unknown withdrawal purpose %q", req.Purpose)))
	}

	if err := s.wait(ctx, s.rules.Delays.Withdrawal); err != nil {
		return observe(s, op, start, cancelled[models.Transaction](err))
	}

	balance := s.availableBalance()
	if req.Amount > balance {
		return observe(s, op, start, fail[models.Transaction]("Insufficient funds",
			fmt.Sprintf("Withdrawal amount (%s) exceeds available balance (%s)",
				utils.FormatNaira(req.Amount), utils.FormatNaira(balance))))
	}
	if req.Amount > s.rules.WithdrawalDailyLimit {
		return observe(s, op, start, fail[models.Transaction]("Daily withdrawal limit exceeded",
			fmt.Sprintf("Maximum daily withdrawal is %s for security purposes", utils.FormatNaira(s.rules.WithdrawalDailyLimit))))
	}

	if req.RequirePIN && req.Amount > s.rules.PinThreshold {
		if err := s.wait(ctx, s.rules.Delays.PinVerification); err != nil {
			return observe(s, op, start, cancelled[models.Transaction](err))
		}
		if s.rules.PinHash != "" {
			if err := bcrypt.CompareHashAndPassword([]byte(s.rules.PinHash), []byte(req.PIN)); err != nil {
				return observe(s, op, start, fail[models.Transaction]("PIN verification failed",
					"The transaction PIN is incorrect"))
			}
		}
	}

	now := s.now()
	tx := models.Transaction{
		ID:       utils.GeneratePrefixedID("WTH", now),
		Type:     models.TxWithdrawal,
		Amount:   req.Amount,
		Date:     now,
		Category: "withdrawal",
		Status:   models.StatusCompleted,
		Method:   models.MethodBankTransfer,
	}

	message := fmt.Sprintf("Successfully withdrew %s", utils.FormatNaira(req.Amount))
	switch {
	case req.Purpose != "":
		tx.Description = description
		tx.Category = req.Purpose
		if req.Amount <= s.rules.LargeWithdrawalThreshold {
			tx.Method = models.MethodMobileMoney
		}
		message += " for " + req.Purpose
	case req.Reason != "":
		tx.Description = req.Reason
	default:
		tx.Description = "Savings withdrawal"
	}

	return observe(s, op, start, ok(tx, message))
}

// EmergencyRequest draws on the emergency fund. Type selects the limit
// table; Urgency selects the processing time.
type EmergencyRequest struct {
	Amount  float64 `json:"amount"`
	Type    string  `json:"type,omitempty"`
	Urgency string  `json:"urgency,omitempty"`
	Reason  string  `json:"reason,omitempty"`
}

// AccessEmergencyFund simulates an emergency withdrawal
func (s *Service) AccessEmergencyFund(ctx context.Context, req EmergencyRequest) Result[models.Transaction] {
	const op = "emergency_access"
	start := time.Now()

	if req.Amount <= 0 {
		return observe(s, op, start, invalidAmount[models.Transaction]())
	}
	limit := s.rules.EmergencyDefaultLimit
	if req.Type != "" {
		l, known := s.rules.EmergencyLimits[req.Type]
		if !known {
			return observe(s, op, start, fail[models.Transaction]("Invalid emergency type",
				fmt.Sprintf("Unknown emergency type %q", req.Type)))
		}
		limit = l
	}
	urgency := req.Urgency
	if urgency == "" {
		urgency = "medium"
	}
	processing, known := s.rules.UrgencyDelays[urgency]
	if !known {
		return observe(s, op, start, fail[models.Transaction]("Invalid urgency level",
			fmt.Sprintf("Unknown urgency level %q", req.Urgency)))
	}

	if err := s.wait(ctx, config.Delay{Base: processing}); err != nil {
		return observe(s, op, start, cancelled[models.Transaction](err))
	}

	if req.Amount > limit {
		reason := fmt.Sprintf("Maximum emergency withdrawal is %s", utils.FormatNaira(limit))
		if req.Type != "" {
			reason = fmt.Sprintf("Maximum emergency withdrawal for %s is %s",
				strings.ReplaceAll(req.Type, "_", " "), utils.FormatNaira(limit))
		}
		return observe(s, op, start, fail[models.Transaction]("Emergency fund limit exceeded", reason))
	}

	now := s.now()
	tx := models.Transaction{
		ID:       utils.GeneratePrefixedID("EMG", now),
		Type:     models.TxWithdrawal,
		Amount:   req.Amount,
		Date:     now,
		Category: "emergency",
		Status:   models.StatusCompleted,
		Method:   models.MethodBankTransfer,
	}
	if req.Type != "" {
		tx.Description = "Emergency: " + emergencyDescriptions[req.Type]
	} else {
		tx.Description = "Emergency: " + req.Reason
	}

	return observe(s, op, start, ok(tx,
		fmt.Sprintf("Emergency fund accessed successfully. %s available immediately.", utils.FormatNaira(req.Amount))))
}

// GoalRequest describes a new savings goal
type GoalRequest struct {
	Name         string              `json:"name"`
	TargetAmount float64             `json:"target_amount"`
	Deadline     *time.Time          `json:"deadline,omitempty"`
	Category     models.GoalCategory `json:"category,omitempty"`
	Frequency    models.Frequency    `json:"frequency,omitempty"`
	AutoSave     bool                `json:"auto_save,omitempty"`
}

// CreateGoal simulates goal creation
func (s *Service) CreateGoal(ctx context.Context, req GoalRequest) Result[models.SavingsGoal] {
	const op = "create_goal"
	start := time.Now()

	if req.TargetAmount < 0 {
		return observe(s, op, start, fail[models.SavingsGoal]("Invalid target amount",
			"Target amount cannot be negative"))
	}

	if err := s.wait(ctx, s.rules.Delays.CreateGoal); err != nil {
		return observe(s, op, start, cancelled[models.SavingsGoal](err))
	}

	goal := models.SavingsGoal{
		ID:           utils.GenerateID(),
		Name:         req.Name,
		TargetAmount: req.TargetAmount,
		Category:     req.Category,
		Frequency:    req.Frequency,
		AutoSave:     req.AutoSave,
		CreatedAt:    s.now(),
	}
	if req.Deadline != nil {
		d := *req.Deadline
		goal.Deadline = &d
	}
	if goal.Name == "" {
		goal.Name = "New Goal"
	}
	if goal.Category == "" {
		goal.Category = models.GoalOther
	}
	if goal.Frequency == "" {
		goal.Frequency = models.Monthly
	}

	return observe(s, op, start, ok(goal, "Savings goal created successfully"))
}
