// Package store holds the single authoritative application state and the
// reducer that moves it from one snapshot to the next.
package store

import "github.com/Dan9191/saveeasy/internal/models"

// AppState is the user's whole financial picture
type AppState struct {
	User               models.User                `json:"user"`
	SavingsGoals       []models.SavingsGoal       `json:"savings_goals"`
	Transactions       []models.Transaction       `json:"transactions"`
	Groups             []models.Group             `json:"groups"`
	BillPayments       []models.BillPayment       `json:"bill_payments"`
	Notifications      []models.Notification      `json:"notifications"`
	LiteracyModules    []models.LiteracyModule    `json:"literacy_modules"`
	Challenges         []models.Challenge         `json:"challenges"`
	Analytics          models.Analytics           `json:"analytics"`
	Investments        []models.Investment        `json:"investments"`
	Loans              []models.Loan              `json:"loans"`
	CryptoTransactions []models.CryptoTransaction `json:"crypto_transactions"`
	MarketplaceItems   []models.MarketplaceItem   `json:"marketplace_items"`
	MarketplaceOrders  []models.MarketplaceOrder  `json:"marketplace_orders"`
	Budgets            []models.Budget            `json:"budgets"`
	Conversations      []models.AIConversation    `json:"conversations"`
	VoiceCommands      []models.VoiceCommand      `json:"voice_commands"`
}

// Clone returns a deep copy that shares no slices with s
func (s AppState) Clone() AppState {
	out := s
	out.SavingsGoals = cloneSlice(s.SavingsGoals)
	for i, g := range out.SavingsGoals {
		if g.Deadline != nil {
			d := *g.Deadline
			out.SavingsGoals[i].Deadline = &d
		}
	}
	out.Transactions = cloneSlice(s.Transactions)
	out.Groups = cloneSlice(s.Groups)
	for i := range out.Groups {
		out.Groups[i].Members = cloneSlice(out.Groups[i].Members)
	}
	out.BillPayments = cloneSlice(s.BillPayments)
	out.Notifications = cloneSlice(s.Notifications)
	out.LiteracyModules = cloneSlice(s.LiteracyModules)
	out.Challenges = cloneSlice(s.Challenges)
	out.Analytics = cloneAnalytics(s.Analytics)
	out.Investments = cloneSlice(s.Investments)
	out.Loans = cloneSlice(s.Loans)
	for i := range out.Loans {
		out.Loans[i].Payments = cloneSlice(out.Loans[i].Payments)
	}
	out.CryptoTransactions = cloneSlice(s.CryptoTransactions)
	out.MarketplaceItems = cloneSlice(s.MarketplaceItems)
	for i := range out.MarketplaceItems {
		it := &out.MarketplaceItems[i]
		it.Images = cloneSlice(it.Images)
		it.Favorites = cloneSlice(it.Favorites)
		it.PaymentMethods = cloneSlice(it.PaymentMethods)
	}
	out.MarketplaceOrders = cloneSlice(s.MarketplaceOrders)
	out.Budgets = cloneSlice(s.Budgets)
	for i := range out.Budgets {
		out.Budgets[i].Categories = cloneSlice(out.Budgets[i].Categories)
	}
	out.Conversations = cloneSlice(s.Conversations)
	out.VoiceCommands = cloneSlice(s.VoiceCommands)
	return out
}

func cloneAnalytics(a models.Analytics) models.Analytics {
	a.TopSpendingCategories = cloneSlice(a.TopSpendingCategories)
	a.SavingsGrowth = cloneSlice(a.SavingsGrowth)
	a.GoalProgress = cloneSlice(a.GoalProgress)
	return a
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}
