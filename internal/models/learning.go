package models

// LiteracyModule is a financial education lesson
type LiteracyModule struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	Duration    int     `json:"duration"` // minutes
	Progress    float64 `json:"progress"`
	Completed   bool    `json:"completed"`
	Locked      bool    `json:"locked"`
	Category    string  `json:"category"`
	Difficulty  string  `json:"difficulty"`
	Points      int     `json:"points"`
}

// Challenge is a community savings challenge
type Challenge struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	TargetAmount  float64   `json:"target_amount"`
	CurrentAmount float64   `json:"current_amount"`
	Duration      int       `json:"duration"` // days
	Reward        float64   `json:"reward"`
	Participants  int       `json:"participants"`
	IsActive      bool      `json:"is_active"`
	Category      Frequency `json:"category"`
}
