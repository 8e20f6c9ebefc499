package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"time"

	"prodojo/internal/adapters/email"
	domain "prodojo/internal/domain/contact"

	"github.com/google/uuid"
)

// ContactStoreForSubmit defines the store interface needed by SubmitContact.
type ContactStoreForSubmit interface {
	Insert(ctx context.Context, m domain.Message) error
}

// SubmitContactInput carries a contact form submission.
type SubmitContactInput struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// SubmitContactDeps holds dependencies for SubmitContact.
type SubmitContactDeps struct {
	ContactStore ContactStoreForSubmit
	Sender       email.Sender
	NotifyTo     string // school inbox for notifications
}

// ExecuteSubmitContact stores a contact message and notifies the school
// inbox. The notification email is best-effort: a send failure is logged
// but the submission still succeeds.
// PRE: input fields come from an untrusted form
// POST: Message row exists; email attempted when a notify address is set
func ExecuteSubmitContact(ctx context.Context, input SubmitContactInput, deps SubmitContactDeps) (domain.Message, error) {
	msg := domain.Message{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := msg.Validate(); err != nil {
		return domain.Message{}, err
	}

	if err := deps.ContactStore.Insert(ctx, msg); err != nil {
		return domain.Message{}, err
	}

	if deps.NotifyTo != "" {
		body := fmt.Sprintf(
			"<p><strong>From:</strong> %s (%s)</p><p><strong>Phone:</strong> %s</p><p>%s</p>",
			html.EscapeString(msg.Name), html.EscapeString(msg.Email),
			html.EscapeString(msg.Phone), html.EscapeString(msg.Message),
		)
		_, err := deps.Sender.Send(ctx, email.SendRequest{
			To:      []string{deps.NotifyTo},
			Subject: "Contact form: " + msg.Subject,
			HTML:    body,
			ReplyTo: msg.Email,
		})
		if err != nil {
			slog.Error("contact_notify_failed", "error", err, "message_id", msg.ID)
		}
	}

	slog.Info("contact_event", "event", "message_received", "message_id", msg.ID)
	return msg, nil
}
