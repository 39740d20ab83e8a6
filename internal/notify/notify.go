package notify

import (
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/saveeasy/internal/config"
	"github.com/Dan9191/saveeasy/internal/models"
	"github.com/Dan9191/saveeasy/internal/utils"
)

// Sender mirrors in-app notifications and loan reminders to email via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
	send   func(e *email.Email) error
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	s := &Sender{
		cfg:    cfg,
		logger: logger,
	}
	s.send = s.smtpSend
	return s
}

func (s *Sender) smtpSend(e *email.Email) error {
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	return e.Send(addr, auth)
}

// SendNotification emails a copy of an in-app notification
func (s *Sender) SendNotification(username string, n models.Notification) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{s.cfg.NotifyEmail}
	e.Subject = notificationSubject(n)
	e.Text = []byte(notificationBody(username, n))

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send notification %s to %s: %v", n.ID, s.cfg.NotifyEmail, err)
		return fmt.Errorf("failed to send notification: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", s.cfg.NotifyEmail, e.Subject)
	return nil
}

// SendLoanReminder emails the next instalment due on a loan
func (s *Sender) SendLoanReminder(username string, loan models.Loan, dueDate time.Time) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{s.cfg.NotifyEmail}
	e.Subject = "Upcoming Loan Repayment Reminder"
	e.Text = []byte(loanReminderBody(username, loan, dueDate))

	if err := s.send(e); err != nil {
		s.logger.Errorf("Failed to send loan reminder for %s: %v", loan.ID, err)
		return fmt.Errorf("failed to send loan reminder: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", s.cfg.NotifyEmail, e.Subject)
	return nil
}

func notificationSubject(n models.Notification) string {
	switch n.Type {
	case models.NotifyError:
		return "[SaveEasy] Action needed: " + n.Title
	case models.NotifyWarning:
		return "[SaveEasy] Heads up: " + n.Title
	default:
		return "[SaveEasy] " + n.Title
	}
}

func notificationBody(username string, n models.Notification) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", username)
	b.WriteString(n.Message)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Sent: %s\n", n.Date.Format("2006-01-02 15:04"))
	b.WriteString("\nBest regards,\nSaveEasy Africa")
	return b.String()
}

func loanReminderBody(username string, loan models.Loan, dueDate time.Time) string {
	installment := loan.MonthlyPayment
	if loan.RemainingBalance < installment {
		installment = loan.RemainingBalance
	}
	return fmt.Sprintf("Dear %s,\n\n"+
		"This is a reminder that your loan repayment of %s is due on %s.\n"+
		"Outstanding balance: %s\n"+
		"Please ensure sufficient funds are available in your savings.\n"+
		"\nBest regards,\nSaveEasy Africa",
		username, utils.FormatNaira(installment), dueDate.Format("2006-01-02"), utils.FormatNaira(loan.RemainingBalance))
}
