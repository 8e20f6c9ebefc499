package contact_test

import (
	"testing"

	"prodojo/internal/domain/contact"
)

// TestMessage_Validate tests validation of contact Message.
func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name    string
		m       contact.Message
		wantErr bool
	}{
		{
			name:    "valid message",
			m:       contact.Message{Name: "Kai", Email: "kai@example.com", Subject: "Trial class", Message: "Can I come Monday?"},
			wantErr: false,
		},
		{
			name:    "phone optional",
			m:       contact.Message{Name: "Kai", Email: "kai@example.com", Phone: "", Subject: "Trial", Message: "Hi"},
			wantErr: false,
		},
		{name: "empty name", m: contact.Message{Email: "kai@example.com", Subject: "s", Message: "m"}, wantErr: true},
		{name: "bad email", m: contact.Message{Name: "Kai", Email: "not-an-email", Subject: "s", Message: "m"}, wantErr: true},
		{name: "empty subject", m: contact.Message{Name: "Kai", Email: "kai@example.com", Message: "m"}, wantErr: true},
		{name: "empty message", m: contact.Message{Name: "Kai", Email: "kai@example.com", Subject: "s"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Message.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
