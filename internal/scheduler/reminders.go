package scheduler

import (
	"context"
	"time"

	"github.com/Dan9191/saveeasy/internal/models"
)

// reminders go out for instalments due within this window
const reminderWindow = 3 * 24 * time.Hour

// Reminder delivers loan repayment reminders
type Reminder interface {
	SendLoanReminder(username string, loan models.Loan, dueDate time.Time) error
}

// NextDue is the date of the next unpaid monthly instalment
func NextDue(loan models.Loan) time.Time {
	return loan.StartDate.AddDate(0, len(loan.Payments)+1, 0)
}

// EnableLoanReminders schedules a reminder pass at spec
func (s *Scheduler) EnableLoanReminders(r Reminder, spec string) error {
	return s.Add("loan_reminders", spec, func(ctx context.Context) bool {
		_, failed := s.RunLoanReminders(ctx, r)
		return failed == 0
	})
}

// RunLoanReminders sends a reminder for every open loan whose next
// instalment falls within the reminder window
func (s *Scheduler) RunLoanReminders(ctx context.Context, r Reminder) (sent, failed int) {
	at := s.now()
	snap := s.app.Snapshot()
	for _, l := range snap.Loans {
		if ctx.Err() != nil {
			break
		}
		if l.RemainingBalance <= 0 || l.Status == models.LoanPaidOff {
			continue
		}
		due := NextDue(l)
		if due.Before(at) || due.Sub(at) > reminderWindow {
			continue
		}
		if err := r.SendLoanReminder(snap.User.Name, l, due); err != nil {
			s.log.Warnf("Loan reminder for %s failed: %v", l.ID, err)
			failed++
			continue
		}
		sent++
	}
	return sent, failed
}
