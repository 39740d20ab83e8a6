package notify

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dan9191/saveeasy/internal/config"
	"github.com/Dan9191/saveeasy/internal/models"
)

func newTestSender(send func(*email.Email) error) *Sender {
	log := logrus.New()
	log.SetOutput(io.Discard)
	s := NewSender(&config.Config{SenderEmail: "noreply@saveeasy.africa", NotifyEmail: "ade@example.com"}, log)
	s.send = send
	return s
}

func TestSendNotification(t *testing.T) {
	var sent *email.Email
	s := newTestSender(func(e *email.Email) error { sent = e; return nil })

	n := models.Notification{
		ID:      "n1",
		Title:   "Payment Failed",
		Message: "Bill payment failed",
		Type:    models.NotifyError,
		Date:    time.Date(2024, time.July, 3, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SendNotification("Adebayo Johnson", n))

	require.NotNil(t, sent)
	assert.Equal(t, []string{"ade@example.com"}, sent.To)
	assert.Equal(t, "noreply@saveeasy.africa", sent.From)
	assert.Equal(t, "[SaveEasy] Action needed: Payment Failed", sent.Subject)
	assert.Contains(t, string(sent.Text), "Dear Adebayo Johnson")
	assert.Contains(t, string(sent.Text), "Sent: 2024-07-03 10:00")
}

func TestSendNotificationError(t *testing.T) {
	s := newTestSender(func(*email.Email) error { return errors.New("connection refused") })

	err := s.SendNotification("Ade", models.Notification{Title: "x"})
	assert.ErrorContains(t, err, "connection refused")
}

func TestSubjects(t *testing.T) {
	assert.Equal(t, "[SaveEasy] Heads up: Due", notificationSubject(models.Notification{Title: "Due", Type: models.NotifyWarning}))
	assert.Equal(t, "[SaveEasy] Saved", notificationSubject(models.Notification{Title: "Saved", Type: models.NotifySuccess}))
}

func TestLoanReminderBody(t *testing.T) {
	due := time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC)

	body := loanReminderBody("Ade", models.Loan{MonthlyPayment: 9583.33, RemainingBalance: 115000}, due)
	assert.Contains(t, body, "repayment of ₦9,583.33 is due on 2024-08-01")
	assert.Contains(t, body, "Outstanding balance: ₦115,000")

	body = loanReminderBody("Ade", models.Loan{MonthlyPayment: 9583.33, RemainingBalance: 2000}, due)
	assert.Contains(t, body, "repayment of ₦2,000 is due")
}
