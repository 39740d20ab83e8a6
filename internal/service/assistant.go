package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/utils"
)

type advice struct {
	keywords []string
	category string
	reply    string
}

var adviceTable = []advice{
	{[]string{"save", "saving"}, "savings", "Based on your spending patterns, I recommend setting aside 20% of your income for savings. This will help you reach your goals faster."},
	{[]string{"invest", "portfolio"}, "investment", "Your financial health looks good! Consider diversifying your investments to reduce risk."},
	{[]string{"spend", "budget", "entertainment"}, "budgeting", "I notice you spend a lot on entertainment. Try the 50/30/20 rule: 50% needs, 30% wants, 20% savings."},
	{[]string{"emergency"}, "emergency", "Great progress on your emergency fund! Once you reach your target, consider investing in low-risk options."},
	{[]string{"group", "ajo", "esusu"}, "groups", "Your group savings are performing well. This shows excellent financial discipline."},
	{[]string{"auto", "automat"}, "automation", "Consider automating your savings to make it easier to reach your goals consistently."},
}

var insights = []string{
	"You could save ₦2,000 more monthly by reducing entertainment expenses",
	"Your savings rate is above average for your income bracket",
	"Consider setting up auto-save for better consistency",
	"Emergency fund target reached! Time to focus on investments",
	"Group savings are helping you stay disciplined with money",
}

// Chat answers a message from a fixed pool of advice. Messages that match
// no keyword get a random piece of advice.
func (s *Service) Chat(ctx context.Context, message string) Result[models.AIConversation] {
	const op = "chat"
	start := time.Now()

	if strings.TrimSpace(message) == "" {
		return observe(s, op, start, fail[models.AIConversation]("Empty message", "Please type a question"))
	}

	if err := s.wait(ctx, s.rules.Delays.Chat); err != nil {
		return observe(s, op, start, cancelled[models.AIConversation](err))
	}

	conv := models.AIConversation{
		ID:          utils.GenerateID(),
		Timestamp:   s.now(),
		UserMessage: message,
		Category:    "general",
	}
	lower := strings.ToLower(message)
	for _, a := range adviceTable {
		if containsAny(lower, a.keywords...) {
			conv.AIResponse, conv.Category = a.reply, a.category
			break
		}
	}
	if conv.AIResponse == "" {
		conv.AIResponse = adviceTable[s.rnd.Intn(len(adviceTable))].reply
	}

	return observe(s, op, start, ok(conv, "AI response generated"))
}

// Insights returns general financial tips
func (s *Service) Insights(ctx context.Context) Result[[]string] {
	const op = "insights"
	start := time.Now()

	if err := s.wait(ctx, s.rules.Delays.Insights); err != nil {
		return observe(s, op, start, cancelled[[]string](err))
	}
	return observe(s, op, start, ok(append([]string{}, insights...), "Insights generated successfully"))
}

var firstNumber = regexp.MustCompile(`\d+`)

// ProcessVoiceCommand interprets a spoken instruction
func (s *Service) ProcessVoiceCommand(ctx context.Context, command string) Result[models.VoiceCommand] {
	const op = "voice_command"
	start := time.Now()

	if strings.TrimSpace(command) == "" {
		return observe(s, op, start, fail[models.VoiceCommand]("Empty command", "No speech was recognised"))
	}

	if err := s.wait(ctx, s.rules.Delays.Voice); err != nil {
		return observe(s, op, start, cancelled[models.VoiceCommand](err))
	}

	lower := strings.ToLower(command)
	vc := models.VoiceCommand{
		ID:        utils.GenerateID(),
		Command:   command,
		Timestamp: s.now(),
		Success:   true,
	}
	switch {
	case containsAny(lower, "balance", "how much"):
		vc.Action = "check_balance"
		vc.Response = fmt.Sprintf("Your current savings balance is %s.", utils.FormatNaira(s.availableBalance()))
	case containsAny(lower, "save", "deposit"):
		vc.Action = "save"
		if n := firstNumber.FindString(lower); n != "" {
			vc.Response = fmt.Sprintf("I can help you save ₦%s. Please confirm the deposit in the app.", n)
		} else {
			vc.Response = "I can help you save money. How much would you like to save?"
		}
	case containsAny(lower, "bill", "pay"):
		vc.Action = "pay_bill"
		vc.Response = "I can help you pay bills. Which service would you like to pay for?"
	case containsAny(lower, "goal", "progress"):
		vc.Action = "goal_progress"
		vc.Response = "You can track every savings goal on the Savings page. Which goal would you like to hear about?"
	case containsAny(lower, "help", "what can you do"):
		vc.Action = "help"
		vc.Response = "I can help you check balances, save money, pay bills and check savings goals. Just speak naturally!"
	default:
		vc.Action = "help"
		vc.Success = false
		vc.Response = "I understand you want to manage your finances. Could you be more specific about what you need help with?"
	}

	return observe(s, op, start, ok(vc, "Voice command processed"))
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
