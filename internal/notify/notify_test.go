package notify

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"github.com/jordan-wright/email"

	"github.com/mmynk/financehelper/internal/models"
)

func TestLoanReminder(t *testing.T) {
	tests := []struct {
		name         string
		loan         models.Loan
		wantSubject  string
		wantContains []string
	}{
		{
			name: "dated loan",
			loan: models.Loan{
				Person:      "Marie",
				Amount:      1250,
				Date:        models.NewDate(2026, time.January, 5),
				Description: "Train tickets",
			},
			wantSubject:  "Reminder: loan of 1 250,00 €",
			wantContains: []string{"Hello Marie,", "1 250,00 €", "05/01/2026", "\"Train tickets\""},
		},
		{
			name:         "undated loan",
			loan:         models.Loan{Person: "Paul", Amount: 20, Description: "Lunch"},
			wantSubject:  "Reminder: loan of 20,00 €",
			wantContains: []string{"Hello Paul,", "an unknown date"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body := LoanReminder(tt.loan)
			if subject != tt.wantSubject {
				t.Errorf("subject = %q, want %q", subject, tt.wantSubject)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q:\n%s", want, body)
				}
			}
		})
	}
}

func TestMailerSend(t *testing.T) {
	cfg := Config{Host: "smtp.example.com", Username: "user", Password: "pw", From: "me@example.com"}

	t.Run("builds the message", func(t *testing.T) {
		var gotAddr string
		var got *email.Email
		m := NewMailer(cfg)
		m.send = func(e *email.Email, addr string, a smtp.Auth) error {
			got, gotAddr = e, addr
			if a == nil {
				t.Error("expected SMTP auth")
			}
			return nil
		}

		if err := m.Send(context.Background(), "friend@example.com", "Hi", "Body"); err != nil {
			t.Fatalf("Send failed: %v", err)
		}
		if gotAddr != "smtp.example.com:587" {
			t.Errorf("addr = %q", gotAddr)
		}
		if got.From != cfg.From || len(got.To) != 1 || got.To[0] != "friend@example.com" || string(got.Text) != "Body" {
			t.Errorf("unexpected email %+v", got)
		}
	})

	t.Run("wraps transport errors", func(t *testing.T) {
		boom := errors.New("boom")
		m := NewMailer(cfg)
		m.send = func(*email.Email, string, smtp.Auth) error { return boom }

		if err := m.Send(context.Background(), "friend@example.com", "Hi", "Body"); !errors.Is(err, boom) {
			t.Errorf("expected wrapped error, got %v", err)
		}
	})

	t.Run("enabled", func(t *testing.T) {
		if (Config{}).Enabled() {
			t.Error("empty config should be disabled")
		}
		if !cfg.Enabled() {
			t.Error("expected config to be enabled")
		}
	})
}
