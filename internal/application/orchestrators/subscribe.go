package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"prodojo/internal/adapters/email"
	domain "prodojo/internal/domain/newsletter"

	"github.com/google/uuid"
)

// SubscriptionStoreForSubscribe defines the store interface needed by Subscribe.
type SubscriptionStoreForSubscribe interface {
	Insert(ctx context.Context, s domain.Subscription) error
	List(ctx context.Context) ([]domain.Subscription, error)
}

// SubscribeDeps holds dependencies for Subscribe.
type SubscribeDeps struct {
	SubscriptionStore SubscriptionStoreForSubscribe
	Sender            email.Sender
}

// ExecuteSubscribe adds an email to the newsletter list and sends a
// best-effort welcome email. Addresses are normalized before storage so
// resubscribing with different casing is rejected as a duplicate.
// POST: A subscription row exists, or ErrAlreadySubscribed
func ExecuteSubscribe(ctx context.Context, address string, deps SubscribeDeps) (domain.Subscription, error) {
	sub := domain.Subscription{
		ID:           uuid.New().String(),
		Email:        domain.NormalizeEmail(address),
		SubscribedAt: time.Now().UTC(),
	}
	if err := sub.Validate(); err != nil {
		return domain.Subscription{}, err
	}

	if err := deps.SubscriptionStore.Insert(ctx, sub); err != nil {
		return domain.Subscription{}, err
	}

	if _, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{sub.Email},
		Subject: "Welcome to the TC Pro Dojo newsletter",
		HTML:    "<p>You're on the list. Expect schedule updates, event news, and training tips.</p>",
	}); err != nil {
		slog.Error("welcome_email_failed", "error", err, "subscription_id", sub.ID)
	}

	slog.Info("newsletter_event", "event", "subscribed", "subscription_id", sub.ID)
	return sub, nil
}

// BroadcastInput carries a newsletter blast for every subscriber.
type BroadcastInput struct {
	Subject string
	HTML    string
}

// ExecuteBroadcast sends a newsletter to all subscribers via the sender's
// batch API.
// PRE: Subject and HTML are non-empty
// POST: Returns the number of emails accepted by the provider
func ExecuteBroadcast(ctx context.Context, input BroadcastInput, deps SubscribeDeps) (int, error) {
	subs, err := deps.SubscriptionStore.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(subs) == 0 {
		return 0, nil
	}

	reqs := make([]email.SendRequest, 0, len(subs))
	for _, sub := range subs {
		reqs = append(reqs, email.SendRequest{
			To:      []string{sub.Email},
			Subject: input.Subject,
			HTML:    input.HTML,
		})
	}

	results, err := deps.Sender.SendBatch(ctx, reqs)
	if err != nil {
		return len(results), err
	}

	slog.Info("newsletter_event", "event", "broadcast_sent", "recipients", len(results))
	return len(results), nil
}
