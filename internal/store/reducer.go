package store

import (
	"math"

	"github.com/Dan9191/saveeasy/internal/analytics"
	"github.com/Dan9191/saveeasy/internal/models"
)

// Reduce returns the state that follows applying a to s. It is a pure
// function: s is never modified, and there is no I/O, clock or randomness.
// Payloads are trusted; validation belongs to the service layer. An unknown
// or nil action returns s unchanged.
func Reduce(s AppState, a Action) AppState {
	switch a := a.(type) {
	case UpdateUser:
		s.User = a.Update.Apply(s.User)

	case AddSavingsGoal:
		s.SavingsGoals = appendTo(s.SavingsGoals, a.Goal)

	case UpdateSavingsGoal:
		s.SavingsGoals = updateWhere(s.SavingsGoals,
			func(g models.SavingsGoal) bool { return g.ID == a.ID },
			a.Update.Apply)

	case DeleteSavingsGoal:
		s.SavingsGoals = removeWhere(s.SavingsGoals, func(g models.SavingsGoal) bool { return g.ID == a.ID })

	case AddTransaction:
		s, _ = applyTransaction(s, a.Transaction)

	case UpdateTransaction:
		s.Transactions = updateWhere(s.Transactions,
			func(t models.Transaction) bool { return t.ID == a.ID },
			a.Update.Apply)

	case AddBillPayment:
		s.BillPayments = prepend(a.Payment, s.BillPayments)

	case MarkNotificationRead:
		s.Notifications = updateWhere(s.Notifications,
			func(n models.Notification) bool { return n.ID == a.ID && !n.Read },
			func(n models.Notification) models.Notification { n.Read = true; return n })

	case AddNotification:
		s.Notifications = prepend(a.Notification, s.Notifications)

	case UpdateModuleProgress:
		s.LiteracyModules = updateWhere(s.LiteracyModules,
			func(m models.LiteracyModule) bool { return m.ID == a.ID },
			func(m models.LiteracyModule) models.LiteracyModule {
				m.Progress = a.Progress
				if a.Completed != nil {
					m.Completed = *a.Completed
				}
				return m
			})

	case JoinChallenge:
		s.Challenges = updateWhere(s.Challenges,
			func(c models.Challenge) bool { return c.ID == a.ID },
			func(c models.Challenge) models.Challenge { c.Participants++; return c })

	case UpdateChallengeProgress:
		s.Challenges = updateWhere(s.Challenges,
			func(c models.Challenge) bool { return c.ID == a.ID },
			func(c models.Challenge) models.Challenge {
				c.CurrentAmount = math.Min(c.TargetAmount, c.CurrentAmount+a.Amount)
				return c
			})

	case RefreshAnalytics:
		s.Analytics = analytics.Compute(s.User, s.Transactions, s.SavingsGoals, a.At)

	case CommitBillPayment:
		var ok bool
		if s, ok = applyTransaction(s, a.Transaction); ok {
			s.BillPayments = prepend(a.Payment, s.BillPayments)
		}

	case CommitInvestment:
		var ok bool
		if s, ok = applyTransaction(s, a.Transaction); ok {
			s.Investments = appendTo(s.Investments, a.Investment)
		}

	case SettleInvestmentSale:
		var ok bool
		if s, ok = applyTransaction(s, a.Transaction); ok {
			s.Investments = updateWhere(s.Investments,
				func(i models.Investment) bool { return i.ID == a.InvestmentID },
				func(i models.Investment) models.Investment { i.Status = models.InvestmentSold; return i })
		}

	case AddGroup:
		s.Groups = appendTo(s.Groups, a.Group)

	case RecordGroupMembership:
		s = recordMembership(s, a)

	case RecordGroupContribution:
		var ok bool
		if s, ok = applyTransaction(s, a.Transaction); ok {
			s.Groups = updateWhere(s.Groups,
				func(g models.Group) bool { return g.ID == a.Transaction.GroupID },
				func(g models.Group) models.Group {
					g.TotalPool += a.Transaction.Amount
					g.Members = updateWhere(g.Members,
						func(m models.GroupMember) bool { return m.ID == a.MemberID },
						func(m models.GroupMember) models.GroupMember {
							m.TotalContributions += a.Transaction.Amount
							m.HasContributedThisCycle = true
							return m
						})
					return g
				})
		}

	case AddLoan:
		s.Loans = appendTo(s.Loans, a.Loan)

	case RecordLoanPayment:
		var ok bool
		if s, ok = applyTransaction(s, a.Transaction); ok {
			s.Loans = updateWhere(s.Loans,
				func(l models.Loan) bool { return l.ID == a.LoanID },
				func(l models.Loan) models.Loan {
					l.RemainingBalance = math.Max(0, l.RemainingBalance-a.Payment.Amount)
					p := a.Payment
					p.RemainingBalance = l.RemainingBalance
					l.Payments = appendTo(l.Payments, p)
					if l.RemainingBalance == 0 {
						l.Status = models.LoanPaidOff
					}
					return l
				})
		}

	case AddCryptoTransaction:
		s.CryptoTransactions = prepend(a.Transaction, s.CryptoTransactions)

	case AddMarketplaceItem:
		s.MarketplaceItems = appendTo(s.MarketplaceItems, a.Item)

	case AddMarketplaceOrder:
		s.MarketplaceOrders = appendTo(s.MarketplaceOrders, a.Order)
		s.MarketplaceItems = updateWhere(s.MarketplaceItems,
			func(i models.MarketplaceItem) bool { return i.ID == a.Order.ItemID },
			func(i models.MarketplaceItem) models.MarketplaceItem { i.Status = "reserved"; return i })

	case AddBudget:
		s.Budgets = appendTo(s.Budgets, a.Budget)

	case TrackBudgetExpense:
		s.Budgets = updateWhere(s.Budgets,
			func(b models.Budget) bool { return b.ID == a.BudgetID },
			func(b models.Budget) models.Budget {
				b.Categories = updateWhere(b.Categories,
					func(c models.BudgetCategory) bool { return c.ID == a.CategoryID },
					func(c models.BudgetCategory) models.BudgetCategory { c.SpentAmount += a.Amount; return c })
				return b
			})

	case AddConversation:
		s.Conversations = appendTo(s.Conversations, a.Conversation)

	case AddVoiceCommand:
		s.VoiceCommands = appendTo(s.VoiceCommands, a.Command)
	}
	return s
}

// applyTransaction prepends tx to the ledger and applies its balance
// effects. A transaction whose ID is already in the ledger is ignored and
// ok is false, so a retried commit never double-counts.
func applyTransaction(s AppState, tx models.Transaction) (AppState, bool) {
	for _, t := range s.Transactions {
		if t.ID == tx.ID {
			return s, false
		}
	}
	s.Transactions = prepend(tx, s.Transactions)

	if tx.GoalID != "" {
		s.SavingsGoals = updateWhere(s.SavingsGoals,
			func(g models.SavingsGoal) bool { return g.ID == tx.GoalID },
			func(g models.SavingsGoal) models.SavingsGoal { g.CurrentAmount += tx.Amount; return g })
	}

	switch tx.Type {
	case models.TxDeposit:
		s.User.TotalSavings += tx.Amount
	case models.TxWithdrawal:
		s.User.TotalSavings = math.Max(0, s.User.TotalSavings-tx.Amount)
	}
	return s, true
}

func recordMembership(s AppState, a RecordGroupMembership) AppState {
	for _, g := range s.Groups {
		if g.ID != a.Membership.GroupID {
			continue
		}
		for _, m := range g.Members {
			if m.ID == a.Member.ID {
				return s
			}
		}
		s.Groups = updateWhere(s.Groups,
			func(g models.Group) bool { return g.ID == a.Membership.GroupID },
			func(g models.Group) models.Group { g.Members = appendTo(g.Members, a.Member); return g })
		return s
	}

	s.Groups = appendTo(s.Groups, models.Group{
		ID:                 a.Membership.GroupID,
		Name:               a.Membership.GroupName,
		Members:            []models.GroupMember{a.Member},
		ContributionAmount: a.Membership.ContributionAmount,
		Frequency:          models.Monthly,
		IsActive:           true,
		CreatedAt:          a.Membership.JoinedAt,
	})
	return s
}

func prepend[T any](x T, in []T) []T {
	out := make([]T, 0, len(in)+1)
	out = append(out, x)
	return append(out, in...)
}

func appendTo[T any](in []T, x T) []T {
	out := make([]T, 0, len(in)+1)
	out = append(out, in...)
	return append(out, x)
}

// updateWhere returns a copy of in with fn applied to every matching element.
// When nothing matches, in is returned as is.
func updateWhere[T any](in []T, match func(T) bool, fn func(T) T) []T {
	var out []T
	for i, v := range in {
		if !match(v) {
			continue
		}
		if out == nil {
			out = make([]T, len(in))
			copy(out, in)
		}
		out[i] = fn(v)
	}
	if out == nil {
		return in
	}
	return out
}

func removeWhere[T any](in []T, match func(T) bool) []T {
	out := make([]T, 0, len(in))
	removed := false
	for _, v := range in {
		if match(v) {
			removed = true
			continue
		}
		out = append(out, v)
	}
	if !removed {
		return in
	}
	return out
}
