package demo

import (
	"context"
	"fmt"

	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/service"
	"github.com/Dan9191/saveeasy/internal/utils"
)

func createGoal(name string, target float64, category models.GoalCategory) step {
	return step{"create goal " + name, func(ctx context.Context, r *run) (bool, string) {
		deadline := r.now.AddDate(1, 0, 0)
		res := r.app.CreateGoal(ctx, service.GoalRequest{
			Name:         name,
			TargetAmount: target,
			Deadline:     &deadline,
			Category:     category,
			Frequency:    models.Monthly,
			AutoSave:     true,
		})
		if res.Success {
			r.goalID = res.Data.ID
			announce(ctx, r, "Savings Goal Created",
				fmt.Sprintf("%s goal created - %s target", name, utils.FormatNaira(target)), models.NotifySuccess)
		}
		return outcome(res)
	}}
}

func deposit(amount float64, source string) step {
	return step{"deposit " + utils.FormatNaira(amount), func(ctx context.Context, r *run) (bool, string) {
		return outcome(r.app.Deposit(ctx, service.DepositRequest{Amount: amount, Source: source}))
	}}
}

// depositToGoal funds the goal created by an earlier step
func depositToGoal(amount float64) step {
	return step{"deposit to goal", func(ctx context.Context, r *run) (bool, string) {
		if r.goalID == "" {
			return false, "no goal created"
		}
		return outcome(r.app.Deposit(ctx, service.DepositRequest{Amount: amount, GoalID: r.goalID}))
	}}
}

func withdraw(amount float64, purpose string) step {
	return step{"withdraw for " + purpose, func(ctx context.Context, r *run) (bool, string) {
		return outcome(r.app.Withdraw(ctx, service.WithdrawRequest{Amount: amount, Purpose: purpose}))
	}}
}

func emergency(amount float64, kind string) step {
	return step{"emergency fund for " + kind, func(ctx context.Context, r *run) (bool, string) {
		return outcome(r.app.AccessEmergencyFund(ctx, service.EmergencyRequest{Amount: amount, Type: kind, Urgency: "high"}))
	}}
}

func joinGroup(kind models.GroupType) step {
	return step{"join " + string(kind) + " group", func(ctx context.Context, r *run) (bool, string) {
		res := r.app.JoinGroup(ctx, service.JoinGroupRequest{GroupType: kind})
		if res.Success {
			r.groupID = res.Data.GroupID
		}
		return outcome(res)
	}}
}

// contribute pays into the group joined by an earlier step
func contribute(amount float64) step {
	return step{"group contribution", func(ctx context.Context, r *run) (bool, string) {
		if r.groupID == "" {
			return false, "no group joined"
		}
		return outcome(r.app.ContributeToGroup(ctx, r.groupID, amount))
	}}
}

func createGroup(name string, contribution float64) step {
	return step{"create group " + name, func(ctx context.Context, r *run) (bool, string) {
		res := r.app.CreateGroup(ctx, service.GroupRequest{Name: name, ContributionAmount: contribution, Frequency: models.Monthly})
		if res.Success {
			r.groupID = res.Data.ID
			announce(ctx, r, "Group Created", name+" savings group established", models.NotifySuccess)
		}
		return outcome(res)
	}}
}

func payBill(kind models.BillType, provider, account string, amount float64) step {
	return step{"pay " + provider + " " + string(kind), func(ctx context.Context, r *run) (bool, string) {
		return outcome(r.app.PayBill(ctx, service.BillRequest{Type: kind, Provider: provider, AccountNumber: account, Amount: amount}))
	}}
}

func invest(kind models.InvestmentType, name string, amount float64) step {
	return step{"invest in " + name, func(ctx context.Context, r *run) (bool, string) {
		return outcome(r.app.BuyInvestment(ctx, service.InvestmentRequest{Type: kind, Name: name, Amount: amount}))
	}}
}

func applyForLoan(kind models.LoanType, amount float64, term int, purpose string) step {
	return step{"apply for " + string(kind) + " loan", func(ctx context.Context, r *run) (bool, string) {
		res := r.app.ApplyForLoan(ctx, service.LoanRequest{Type: kind, Amount: amount, TermMonths: term, Purpose: purpose})
		if res.Success {
			r.loanID = res.Data.ID
		}
		return outcome(res)
	}}
}

// repayLoan makes one instalment on the loan approved by an earlier step
func repayLoan() step {
	return step{"repay loan", func(ctx context.Context, r *run) (bool, string) {
		if r.loanID == "" {
			return false, "no loan approved"
		}
		for _, l := range r.app.Snapshot().Loans {
			if l.ID == r.loanID {
				return outcome(r.app.MakeLoanPayment(ctx, l.ID, l.MonthlyPayment))
			}
		}
		return false, "loan not found"
	}}
}

func chat(topic string) step {
	return step{"ask assistant about " + topic, func(ctx context.Context, r *run) (bool, string) {
		res := r.app.Chat(ctx, topic)
		if res.Success {
			announce(ctx, r, "AI Assistant", "AI has provided personalized financial advice!", models.NotifyInfo)
		}
		return outcome(res)
	}}
}

func insights() step {
	return step{"financial insights", func(ctx context.Context, r *run) (bool, string) {
		res := r.app.Insights(ctx)
		if res.Success && len(res.Data) > 0 {
			announce(ctx, r, "AI Insights", "New insight: "+res.Data[0], models.NotifyInfo)
		}
		return outcome(res)
	}}
}

func listItem(title string, price float64, category, condition string) step {
	return step{"list " + title, func(ctx context.Context, r *run) (bool, string) {
		res := r.app.ListItem(ctx, service.ListingRequest{Title: title, Price: price, Category: category, Condition: condition})
		if res.Success {
			announce(ctx, r, "Item Listed",
				fmt.Sprintf("%s listed for %s", title, utils.FormatNaira(price)), models.NotifySuccess)
		}
		return outcome(res)
	}}
}

func buyCrypto(symbol string, naira float64) step {
	return step{"buy " + symbol, func(ctx context.Context, r *run) (bool, string) {
		res := r.app.BuyCrypto(ctx, symbol, naira)
		if res.Success {
			announce(ctx, r, "Crypto Purchase",
				fmt.Sprintf("%s of %s purchased", utils.FormatNaira(naira), symbol), models.NotifySuccess)
		}
		return outcome(res)
	}}
}

func voice(command string) step {
	return step{"voice command", func(ctx context.Context, r *run) (bool, string) {
		res := r.app.ProcessVoiceCommand(ctx, command)
		if res.Success {
			announce(ctx, r, "Voice Banking", "Voice command processed successfully", models.NotifySuccess)
		}
		return outcome(res)
	}}
}

func budget(name string, total float64) step {
	return step{"create budget " + name, func(ctx context.Context, r *run) (bool, string) {
		res := r.app.CreateBudget(ctx, service.BudgetRequest{Name: name, TotalAmount: total, Period: "monthly"})
		if res.Success {
			announce(ctx, r, "Budget Created", "Monthly budget set up successfully!", models.NotifySuccess)
		}
		return outcome(res)
	}}
}

func finish(message string) step {
	return step{"wrap up", func(ctx context.Context, r *run) (bool, string) {
		res := r.app.SendNotification(ctx, service.NotificationRequest{Title: "Demo Completed", Message: message, Type: models.NotifySuccess})
		return outcome(res)
	}}
}

// announce records a notification for operations that do not produce one
func announce(ctx context.Context, r *run, title, message string, kind models.NotificationType) {
	r.app.SendNotification(ctx, service.NotificationRequest{Title: title, Message: message, Type: kind})
}

var scenarios = map[string][]step{
	"complete": {
		createGoal("Vacation Fund", 50000, models.GoalOther),
		depositToGoal(5000),
		emergency(2000, "medical"),
		joinGroup(models.GroupProfessional),
		contribute(1500),
		payBill(models.BillAirtime, "MTN", "08012345678", 1000),
		payBill(models.BillElectricity, "Ikeja Electric", "1234567890", 3500),
		invest(models.InvestTreasuryBills, "Nigerian Treasury Bills - 91 Days", 10000),
		invest(models.InvestMutualFunds, "Stanbic IBTC Balanced Fund", 5000),
		applyForLoan(models.LoanPersonal, 25000, 6, "Business expansion"),
		chat("How can I improve my savings rate?"),
		insights(),
		listItem("iPhone 13 Pro Max", 350000, "electronics", "used"),
		buyCrypto("BTC", 50000),
		buyCrypto("USDT", 25000),
		finish("Welcome to SaveEasy! All features have been demonstrated."),
	},
	"young-professional": {
		createGoal("Emergency Fund", 50000, models.GoalEmergency),
		deposit(5000, "salary"),
		joinGroup(models.GroupProfessional),
		payBill(models.BillAirtime, "MTN", "08012345678", 1000),
		payBill(models.BillData, "MTN", "08012345678", 2000),
		invest(models.InvestMutualFunds, "ARM Aggressive Growth Fund", 10000),
		budget("Monthly Budget", 75000),
		chat("How should I approach budgeting?"),
	},
	"business-owner": {
		applyForLoan(models.LoanBusiness, 200000, 12, "Inventory expansion"),
		createGroup("Business Team Savings", 3000),
		payBill(models.BillElectricity, "Ikeja Electric", "BIZ123456", 8000),
		payBill(models.BillInternet, "Spectranet", "SPE789012", 5000),
		listItem("Office Equipment Set", 45000, "electronics", "used"),
		invest(models.InvestTreasuryBills, "91-Day Treasury Bills", 50000),
	},
	"student": {
		joinGroup(models.GroupFamily),
		createGoal("School Fees", 80000, models.GoalEducation),
		listItem("Engineering Textbooks", 15000, "education", "used"),
		buyCrypto("USDT", 3000),
		voice("Check my school fees savings goal"),
		payBill(models.BillAirtime, "Glo", "08098765432", 500),
	},
	"emergency": {
		emergency(3000, "medical"),
		withdraw(5000, "emergency"),
		applyForLoan(models.LoanEmergency, 15000, 6, "Medical treatment"),
		repayLoan(),
		chat("How do I rebuild my savings after an emergency?"),
	},
	"wealth-building": {
		deposit(25000, "bonus"),
		invest(models.InvestStocks, "MTN Nigeria Shares", 15000),
		invest(models.InvestBonds, "Federal Government Bonds", 20000),
		invest(models.InvestRealEstate, "Real Estate Investment Trust", 30000),
		buyCrypto("BTC", 10000),
		buyCrypto("ETH", 8000),
		listItem("Investment Property Share", 500000, "services", "new"),
	},
}

var quickActions = map[string]step{
	"savings":     deposit(5000, "salary"),
	"withdrawal":  withdraw(2000, "emergency"),
	"emergency":   emergency(3000, "medical"),
	"group":       joinGroup(models.GroupProfessional),
	"bill":        payBill(models.BillAirtime, "MTN", "08012345678", 1000),
	"investment":  invest(models.InvestTreasuryBills, "Treasury Bills", 10000),
	"ai":          chat("How can I save more money?"),
	"crypto":      buyCrypto("BTC", 5000),
	"marketplace": listItem("Smartphone", 85000, "electronics", "used"),
	"loan":        applyForLoan(models.LoanPersonal, 25000, 6, "Personal development"),
}
