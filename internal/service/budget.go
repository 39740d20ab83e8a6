package service

import (
	"context"
	"time"

	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/utils"
)

// BudgetRequest describes a spending plan
type BudgetRequest struct {
	UserID      string                  `json:"user_id,omitempty"`
	Name        string                  `json:"name,omitempty"`
	TotalAmount float64                 `json:"total_amount,omitempty"`
	Period      string                  `json:"period,omitempty"`
	Categories  []models.BudgetCategory `json:"categories,omitempty"`
	AutoTrack   bool                    `json:"auto_track,omitempty"`
}

// CreateBudget simulates creating a 30 day budget
func (s *Service) CreateBudget(ctx context.Context, req BudgetRequest) Result[models.Budget] {
	const op = "create_budget"
	start := time.Now()

	if req.TotalAmount < 0 {
		return observe(s, op, start, invalidAmount[models.Budget]())
	}

	if err := s.wait(ctx, s.rules.Delays.Budget); err != nil {
		return observe(s, op, start, cancelled[models.Budget](err))
	}

	now := s.now()
	b := models.Budget{
		ID:          utils.GenerateID(),
		UserID:      req.UserID,
		Name:        req.Name,
		TotalAmount: req.TotalAmount,
		Period:      req.Period,
		Categories:  append([]models.BudgetCategory{}, req.Categories...),
		StartDate:   now,
		EndDate:     now.AddDate(0, 0, 30),
		IsActive:    true,
		AutoTrack:   req.AutoTrack,
	}
	for i := range b.Categories {
		if b.Categories[i].ID == "" {
			b.Categories[i].ID = utils.GenerateID()
		}
	}
	if b.Name == "" {
		b.Name = "Monthly Budget"
	}
	if b.TotalAmount == 0 {
		b.TotalAmount = 50000
	}
	if b.Period == "" {
		b.Period = "monthly"
	}

	return observe(s, op, start, ok(b, "Budget created successfully"))
}

// ExpenseRequest records spending against a budget category
type ExpenseRequest struct {
	BudgetID    string  `json:"budget_id"`
	CategoryID  string  `json:"category_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// TrackExpense simulates logging an expense
func (s *Service) TrackExpense(ctx context.Context, req ExpenseRequest) Result[models.Expense] {
	const op = "track_expense"
	start := time.Now()

	if req.Amount <= 0 {
		return observe(s, op, start, invalidAmount[models.Expense]())
	}
	if req.CategoryID == "" {
		return observe(s, op, start, fail[models.Expense]("Invalid category", "A budget category is required"))
	}

	if err := s.wait(ctx, s.rules.Delays.Expense); err != nil {
		return observe(s, op, start, cancelled[models.Expense](err))
	}

	e := models.Expense{
		ID:          utils.GenerateID(),
		BudgetID:    req.BudgetID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        s.now(),
	}
	return observe(s, op, start, ok(e, "Expense tracked successfully"))
}
