package models

import "time"

type GoalCategory string

const (
	GoalEmergency GoalCategory = "emergency"
	GoalEducation GoalCategory = "education"
	GoalBusiness  GoalCategory = "business"
	GoalHousing   GoalCategory = "housing"
	GoalOther     GoalCategory = "other"
)

// Frequency is how often a recurring contribution happens
type Frequency string

const (
	Daily   Frequency = "daily"
	Weekly  Frequency = "weekly"
	Monthly Frequency = "monthly"
)

// SavingsGoal represents a named savings target
type SavingsGoal struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	TargetAmount  float64      `json:"target_amount"`
	CurrentAmount float64      `json:"current_amount"`
	Deadline      *time.Time   `json:"deadline,omitempty"`
	Category      GoalCategory `json:"category"`
	Frequency     Frequency    `json:"frequency"`
	AutoSave      bool         `json:"auto_save"`
	CreatedAt     time.Time    `json:"created_at"`
}

// GoalUpdate is a partial goal. Nil fields are left unchanged.
type GoalUpdate struct {
	Name          *string       `json:"name,omitempty"`
	TargetAmount  *float64      `json:"target_amount,omitempty"`
	CurrentAmount *float64      `json:"current_amount,omitempty"`
	Deadline      *time.Time    `json:"deadline,omitempty"`
	Category      *GoalCategory `json:"category,omitempty"`
	Frequency     *Frequency    `json:"frequency,omitempty"`
	AutoSave      *bool         `json:"auto_save,omitempty"`
}

// Apply merges the set fields of the update into g
func (p GoalUpdate) Apply(g SavingsGoal) SavingsGoal {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
	if p.Deadline != nil {
		d := *p.Deadline
		g.Deadline = &d
	}
	if p.Category != nil {
		g.Category = *p.Category
	}
	if p.Frequency != nil {
		g.Frequency = *p.Frequency
	}
	if p.AutoSave != nil {
		g.AutoSave = *p.AutoSave
	}
	return g
}

// Progress returns completion in percent, capped at 100
func (g SavingsGoal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	p := g.CurrentAmount / g.TargetAmount * 100
	if p > 100 {
		return 100
	}
	return p
}
