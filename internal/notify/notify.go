// Package notify composes and sends loan reminder emails.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"

	"github.com/jordan-wright/email"

	"github.com/mmynk/financehelper/internal/models"
	"github.com/mmynk/financehelper/pkg/money"
)

// ReminderDateLayout is how loan dates appear in reminder text.
const ReminderDateLayout = "02/01/2006"

// Config holds the SMTP settings. The mailer is disabled while Host or From
// is empty.
type Config struct {
	Host     string `toml:"host"`
	Port     string `toml:"port"`
	Username string `toml:"username"`
	Password string `toml:"password"`
	From     string `toml:"from"`
}

// Enabled reports whether enough settings are present to send mail.
func (c Config) Enabled() bool {
	return c.Host != "" && c.From != ""
}

// Sender delivers a plain-text message.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Mailer sends mail through an SMTP relay.
type Mailer struct {
	cfg  Config
	send func(e *email.Email, addr string, a smtp.Auth) error
}

// NewMailer creates a mailer for cfg.
func NewMailer(cfg Config) *Mailer {
	return &Mailer{
		cfg: cfg,
		send: func(e *email.Email, addr string, a smtp.Auth) error {
			return e.Send(addr, a)
		},
	}
}

// Send delivers a plain-text email to a single recipient.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e := email.NewEmail()
	e.From = m.cfg.From
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	port := m.cfg.Port
	if port == "" {
		port = "587"
	}
	addr := net.JoinHostPort(m.cfg.Host, port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := m.send(e, addr, auth); err != nil {
		slog.Error("Failed to send email", "to", to, "subject", subject, "error", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	slog.Info("Email sent", "to", to, "subject", subject)
	return nil
}

// LoanReminder returns the subject and body of a reminder for an outstanding loan.
func LoanReminder(loan models.Loan) (subject, body string) {
	subject = fmt.Sprintf("Reminder: loan of %s", money.FormatEUR(loan.Amount))

	date := "an unknown date"
	if !loan.Date.IsZero() {
		date = loan.Date.Format(ReminderDateLayout)
	}

	body = fmt.Sprintf(
		"Hello %s,\n\n"+
			"This is a reminder about the loan of %s I gave you on %s for \"%s\".\n\n"+
			"Thanks in advance for paying it back.\n\n"+
			"Best regards",
		loan.Person, money.FormatEUR(loan.Amount), date, loan.Description,
	)
	return subject, body
}
