package store

import (
	"time"

	"github.com/Dan9191/saveeasy/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Seed returns the demo account every process starts from
func Seed() AppState {
	schoolFeesDeadline := date(2024, time.September, 1)

	return AppState{
		User: models.User{
			ID:            "1",
			Name:          "Adebayo Johnson",
			Email:         "adebayo@example.com",
			Phone:         "+234 801 234 5678",
			JoinDate:      date(2024, time.January, 15),
			TotalSavings:  25000,
			EmergencyFund: 5000,
			HasPin:        true,
			Notifications: true,
		},
		SavingsGoals: []models.SavingsGoal{
			{ID: "1", Name: "School Fees", TargetAmount: 50000, CurrentAmount: 25000, Deadline: &schoolFeesDeadline, Category: models.GoalEducation, Frequency: models.Weekly, AutoSave: true, CreatedAt: date(2024, time.January, 15)},
			{ID: "2", Name: "Business Growth", TargetAmount: 100000, CurrentAmount: 15000, Category: models.GoalBusiness, Frequency: models.Monthly, CreatedAt: date(2024, time.February, 1)},
			{ID: "3", Name: "Emergency Fund", TargetAmount: 30000, CurrentAmount: 18000, Category: models.GoalEmergency, Frequency: models.Weekly, AutoSave: true, CreatedAt: date(2024, time.January, 1)},
		},
		Transactions: []models.Transaction{
			{ID: "1", Type: models.TxDeposit, Amount: 2000, Description: "Monthly salary savings", Date: date(2024, time.July, 1), Category: "income", Status: models.StatusCompleted, Method: models.MethodBankTransfer},
			{ID: "2", Type: models.TxGoalContribution, Amount: 1000, Description: "School fees contribution", Date: date(2024, time.June, 30), Category: "education", GoalID: "1", Status: models.StatusCompleted, Method: models.MethodBankTransfer},
			{ID: "3", Type: models.TxBillPayment, Amount: 500, Description: "MTN Airtime", Date: date(2024, time.June, 29), Category: "telecommunications", Status: models.StatusCompleted, Method: models.MethodMobileMoney},
			{ID: "4", Type: models.TxGroupContribution, Amount: 1000, Description: "Market Traders Group", Date: date(2024, time.June, 28), Category: "group_savings", GroupID: "1", Status: models.StatusCompleted, Method: models.MethodCash},
			{ID: "5", Type: models.TxWithdrawal, Amount: 3000, Description: "Emergency medical expense", Date: date(2024, time.June, 25), Category: "health", Status: models.StatusCompleted, Method: models.MethodBankTransfer},
		},
		Groups: []models.Group{
			{
				ID:   "1",
				Name: "Market Traders",
				Members: []models.GroupMember{
					{ID: "1", Name: "Adebayo Johnson", JoinDate: date(2024, time.January, 15), TotalContributions: 12000, Status: "active", HasContributedThisCycle: true},
					{ID: "2", Name: "Fatima Abdullahi", JoinDate: date(2024, time.January, 20), TotalContributions: 11000, Status: "active", HasContributedThisCycle: true},
					{ID: "3", Name: "Chike Okafor", JoinDate: date(2024, time.February, 1), TotalContributions: 10000, Status: "active"},
				},
				ContributionAmount: 1000,
				Frequency:          models.Weekly,
				NextContribution:   date(2024, time.July, 8),
				TotalPool:          156000,
				AdminID:            "2",
				Rules:              "Weekly contributions of ₦1,000. Missing 2 consecutive payments results in temporary suspension.",
				IsActive:           true,
				CreatedAt:          date(2024, time.January, 15),
			},
			{
				ID:   "2",
				Name: "Family Support",
				Members: []models.GroupMember{
					{ID: "1", Name: "Adebayo Johnson", JoinDate: date(2024, time.March, 1), TotalContributions: 8000, Status: "active"},
					{ID: "4", Name: "Amina Hassan", JoinDate: date(2024, time.March, 1), TotalContributions: 8000, Status: "active", HasContributedThisCycle: true},
					{ID: "5", Name: "Tunde Adeleke", JoinDate: date(2024, time.March, 15), TotalContributions: 6000, Status: "active", HasContributedThisCycle: true},
				},
				ContributionAmount: 2000,
				Frequency:          models.Monthly,
				NextContribution:   date(2024, time.August, 1),
				TotalPool:          44000,
				AdminID:            "1",
				Rules:              "Monthly contributions of ₦2,000. Family members only.",
				IsActive:           true,
				CreatedAt:          date(2024, time.March, 1),
			},
		},
		BillPayments: []models.BillPayment{
			{ID: "1", Type: models.BillAirtime, Provider: "MTN", AccountNumber: "08012345678", Amount: 500, Status: models.StatusCompleted, Date: date(2024, time.June, 29), Reference: "MTN123456789"},
			{ID: "2", Type: models.BillElectricity, Provider: "Ikeja Electric", AccountNumber: "1234567890", Amount: 2000, Status: models.StatusCompleted, Date: date(2024, time.June, 25), Reference: "IKEDC987654321"},
		},
		Notifications: []models.Notification{
			{ID: "1", Title: "Goal Achievement", Message: "Congratulations! You've reached 50% of your School Fees goal.", Type: models.NotifySuccess, Date: date(2024, time.July, 1)},
			{ID: "2", Title: "Group Contribution Due", Message: "Your Market Traders group contribution of ₦1,000 is due tomorrow.", Type: models.NotifyWarning, Date: date(2024, time.July, 1)},
			{ID: "3", Title: "New Literacy Module", Message: "Understanding Investments module is now available!", Type: models.NotifyInfo, Date: date(2024, time.June, 30), Read: true},
		},
		LiteracyModules: []models.LiteracyModule{
			{ID: "1", Title: "Budgeting Basics", Description: "Learn how to create and stick to a budget", Content: "Comprehensive guide to budgeting...", Duration: 5, Progress: 100, Completed: true, Category: "budgeting", Difficulty: "beginner", Points: 100},
			{ID: "2", Title: "Saving Strategies", Description: "Simple techniques to save money daily", Content: "Effective saving strategies...", Duration: 8, Progress: 60, Category: "saving", Difficulty: "beginner", Points: 150},
			{ID: "3", Title: "Understanding Loans", Description: "What you need to know before borrowing", Content: "Loan fundamentals...", Duration: 10, Locked: true, Category: "debt", Difficulty: "intermediate", Points: 200},
			{ID: "4", Title: "Investment Basics", Description: "Introduction to growing your money", Content: "Investment fundamentals...", Duration: 12, Locked: true, Category: "investing", Difficulty: "intermediate", Points: 250},
		},
		Challenges: []models.Challenge{
			{ID: "1", Title: "Jollof Savings Sprint", Description: "Save ₦100 daily for 30 days", TargetAmount: 3000, CurrentAmount: 2400, Duration: 30, Reward: 300, Participants: 1247, IsActive: true, Category: models.Daily},
			{ID: "2", Title: "Emergency Fund Builder", Description: "Build an emergency fund of ₦10,000 in 3 months", TargetAmount: 10000, CurrentAmount: 6500, Duration: 90, Reward: 1000, Participants: 892, IsActive: true, Category: models.Monthly},
		},
		Analytics: models.Analytics{
			TotalSavings:    45000,
			MonthlyIncome:   75000,
			MonthlyExpenses: 60000,
			SavingsRate:     20,
			TopSpendingCategories: []models.CategorySpend{
				{Category: "Food & Dining", Amount: 25000, Percentage: 42},
				{Category: "Transportation", Amount: 15000, Percentage: 25},
				{Category: "Bills & Utilities", Amount: 12000, Percentage: 20},
				{Category: "Entertainment", Amount: 8000, Percentage: 13},
			},
			SavingsGrowth: []models.MonthlyAmount{
				{Month: "Jan", Amount: 5000}, {Month: "Feb", Amount: 8000}, {Month: "Mar", Amount: 12000},
				{Month: "Apr", Amount: 18000}, {Month: "May", Amount: 25000}, {Month: "Jun", Amount: 35000},
				{Month: "Jul", Amount: 45000},
			},
			GoalProgress: []models.GoalProgress{
				{GoalName: "School Fees", Progress: 50},
				{GoalName: "Business Growth", Progress: 15},
				{GoalName: "Emergency Fund", Progress: 60},
			},
		},
	}
}
