// Package notify delivers alert notifications to people.
//
// Delivery happens strictly after the expense that caused the alert has
// been committed; a failed delivery is reported to the caller but never
// unwinds the expense.
package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spendguard/backend/internal/alert"
)

// A Notifier delivers a message to a recipient.
type Notifier interface {
	Notify(ctx context.Context, toEmail, subject, body string) error
}

// Message is a rendered notification.
type Message struct {
	Subject string
	Body    string
}

// ForEvaluation renders the notification for a budget evaluation.
// The second return value is false when the evaluation does not warrant
// a notification.
func ForEvaluation(category string, evaluation alert.Evaluation) (Message, bool) {
	switch evaluation.Kind {
	case alert.OverBudget:
		return Message{
			Subject: fmt.Sprintf("Budget exceeded for %s", category),
			Body: fmt.Sprintf("You have exceeded your budget for %s. Spent: %s, Budget: %s.",
				category, evaluation.Spent, evaluation.Budget),
		}, true
	case alert.LowRemaining:
		return Message{
			Subject: fmt.Sprintf("Low budget warning for %s", category),
			Body: fmt.Sprintf("Only %s left in %s budget (Budget %s, Spent %s)",
				evaluation.Remaining.StringFixed(2), category, evaluation.Budget, evaluation.Spent),
		}, true
	}

	return Message{}, false
}

// LogNotifier logs notifications instead of delivering them. It is used
// when no SMTP server is configured.
type LogNotifier struct {
	Logger zerolog.Logger
}

func (n LogNotifier) Notify(_ context.Context, toEmail, subject, _ string) error {
	n.Logger.Info().Str("to", toEmail).Str("subject", subject).Msg("SMTP not configured, skipping email")
	return nil
}
