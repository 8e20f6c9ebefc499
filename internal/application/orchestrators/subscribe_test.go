package orchestrators

import (
	"context"
	"errors"
	"testing"

	"prodojo/internal/adapters/email"
	contactDomain "prodojo/internal/domain/contact"
	"prodojo/internal/domain/newsletter"
)

// mockSubscriptionStore implements SubscriptionStoreForSubscribe for testing.
type mockSubscriptionStore struct {
	subs []newsletter.Subscription
}

// Insert implements SubscriptionStoreForSubscribe.
// POST: subscription stored, or ErrAlreadySubscribed for a duplicate email
func (m *mockSubscriptionStore) Insert(_ context.Context, s newsletter.Subscription) error {
	for _, existing := range m.subs {
		if existing.Email == s.Email {
			return newsletter.ErrAlreadySubscribed
		}
	}
	m.subs = append(m.subs, s)
	return nil
}

// List implements SubscriptionStoreForSubscribe.
func (m *mockSubscriptionStore) List(_ context.Context) ([]newsletter.Subscription, error) {
	return m.subs, nil
}

// recordingSender implements email.Sender, capturing sends.
type recordingSender struct {
	sent    []email.SendRequest
	sendErr error
}

func (s *recordingSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	if s.sendErr != nil {
		return email.SendResult{}, s.sendErr
	}
	s.sent = append(s.sent, req)
	return email.SendResult{MessageID: "msg-001"}, nil
}

func (s *recordingSender) SendBatch(_ context.Context, reqs []email.SendRequest) ([]email.SendResult, error) {
	if s.sendErr != nil {
		return nil, s.sendErr
	}
	results := make([]email.SendResult, len(reqs))
	s.sent = append(s.sent, reqs...)
	return results, nil
}

// TestExecuteSubscribe_NormalizesEmail verifies addresses are lowercased
// and trimmed before storage.
func TestExecuteSubscribe_NormalizesEmail(t *testing.T) {
	store := &mockSubscriptionStore{}
	sender := &recordingSender{}

	sub, err := ExecuteSubscribe(context.Background(), "  Fan@Example.COM ", SubscribeDeps{
		SubscriptionStore: store,
		Sender:            sender,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.Email != "fan@example.com" {
		t.Errorf("Email = %q, want fan@example.com", sub.Email)
	}
	if len(sender.sent) != 1 {
		t.Errorf("welcome emails sent = %d, want 1", len(sender.sent))
	}
}

// TestExecuteSubscribe_Duplicate verifies a resubscribe with different
// casing is rejected.
func TestExecuteSubscribe_Duplicate(t *testing.T) {
	store := &mockSubscriptionStore{}
	deps := SubscribeDeps{SubscriptionStore: store, Sender: &recordingSender{}}

	if _, err := ExecuteSubscribe(context.Background(), "fan@example.com", deps); err != nil {
		t.Fatalf("first subscribe: %v", err)
	}
	if _, err := ExecuteSubscribe(context.Background(), "FAN@example.com", deps); err != newsletter.ErrAlreadySubscribed {
		t.Errorf("error = %v, want ErrAlreadySubscribed", err)
	}
	if len(store.subs) != 1 {
		t.Errorf("subscriptions = %d, want 1", len(store.subs))
	}
}

// TestExecuteSubscribe_WelcomeFailureStillSubscribes verifies a failed
// welcome email does not roll back the subscription.
func TestExecuteSubscribe_WelcomeFailureStillSubscribes(t *testing.T) {
	store := &mockSubscriptionStore{}
	sender := &recordingSender{sendErr: errors.New("provider down")}

	if _, err := ExecuteSubscribe(context.Background(), "fan@example.com", SubscribeDeps{
		SubscriptionStore: store,
		Sender:            sender,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.subs) != 1 {
		t.Errorf("subscriptions = %d, want 1", len(store.subs))
	}
}

// TestExecuteSubscribe_InvalidEmail verifies an address without '@' is rejected.
func TestExecuteSubscribe_InvalidEmail(t *testing.T) {
	store := &mockSubscriptionStore{}

	_, err := ExecuteSubscribe(context.Background(), "not-an-email", SubscribeDeps{
		SubscriptionStore: store,
		Sender:            &recordingSender{},
	})
	if err != newsletter.ErrInvalidEmail {
		t.Errorf("error = %v, want ErrInvalidEmail", err)
	}
	if len(store.subs) != 0 {
		t.Errorf("subscriptions = %d, want 0", len(store.subs))
	}
}

// TestExecuteBroadcast_SendsToAll verifies the broadcast reaches every subscriber.
func TestExecuteBroadcast_SendsToAll(t *testing.T) {
	store := &mockSubscriptionStore{}
	sender := &recordingSender{}
	deps := SubscribeDeps{SubscriptionStore: store, Sender: sender}

	for _, addr := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		if _, err := ExecuteSubscribe(context.Background(), addr, deps); err != nil {
			t.Fatalf("subscribe %s: %v", addr, err)
		}
	}
	sender.sent = nil // drop welcome emails

	n, err := ExecuteBroadcast(context.Background(), BroadcastInput{
		Subject: "March schedule",
		HTML:    "<p>New classes this month.</p>",
	}, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("recipients = %d, want 3", n)
	}
	if len(sender.sent) != 3 {
		t.Errorf("sends = %d, want 3", len(sender.sent))
	}
}

// mockContactStore implements ContactStoreForSubmit for testing.
type mockContactStore struct {
	messages []contactDomain.Message
}

// Insert implements ContactStoreForSubmit.
func (m *mockContactStore) Insert(_ context.Context, msg contactDomain.Message) error {
	m.messages = append(m.messages, msg)
	return nil
}

// TestExecuteSubmitContact_StoresAndNotifies verifies a valid submission
// is stored and a notification goes to the school inbox.
func TestExecuteSubmitContact_StoresAndNotifies(t *testing.T) {
	store := &mockContactStore{}
	sender := &recordingSender{}

	msg, err := ExecuteSubmitContact(context.Background(), SubmitContactInput{
		Name:    "Jo Fan",
		Email:   "jo@example.com",
		Subject: "Tryouts",
		Message: "When is the next tryout?",
	}, SubmitContactDeps{
		ContactStore: store,
		Sender:       sender,
		NotifyTo:     "frontdesk@tcprodojo.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.ID == "" {
		t.Error("expected generated message ID")
	}
	if len(store.messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(store.messages))
	}
	if len(sender.sent) != 1 {
		t.Fatalf("notifications = %d, want 1", len(sender.sent))
	}
	if sender.sent[0].To[0] != "frontdesk@tcprodojo.com" {
		t.Errorf("notify to = %q", sender.sent[0].To[0])
	}
	if sender.sent[0].ReplyTo != "jo@example.com" {
		t.Errorf("reply-to = %q, want submitter", sender.sent[0].ReplyTo)
	}
}

// TestExecuteSubmitContact_EmailFailureStillStores verifies a notification
// failure does not lose the message.
func TestExecuteSubmitContact_EmailFailureStillStores(t *testing.T) {
	store := &mockContactStore{}
	sender := &recordingSender{sendErr: errors.New("provider down")}

	_, err := ExecuteSubmitContact(context.Background(), SubmitContactInput{
		Name:    "Jo Fan",
		Email:   "jo@example.com",
		Subject: "Tryouts",
		Message: "When is the next tryout?",
	}, SubmitContactDeps{
		ContactStore: store,
		Sender:       sender,
		NotifyTo:     "frontdesk@tcprodojo.com",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.messages) != 1 {
		t.Errorf("messages = %d, want 1", len(store.messages))
	}
}

// TestExecuteSubmitContact_Invalid verifies validation failures reject the
// submission before storage.
func TestExecuteSubmitContact_Invalid(t *testing.T) {
	store := &mockContactStore{}

	_, err := ExecuteSubmitContact(context.Background(), SubmitContactInput{
		Name:    "Jo Fan",
		Email:   "no-at-sign",
		Subject: "Tryouts",
		Message: "Hello",
	}, SubmitContactDeps{ContactStore: store, Sender: &recordingSender{}})
	if err != contactDomain.ErrInvalidEmail {
		t.Errorf("error = %v, want ErrInvalidEmail", err)
	}
	if len(store.messages) != 0 {
		t.Errorf("messages = %d, want 0", len(store.messages))
	}
}
