// Package mailer sends the operator a best-effort notification after each
// accepted submission. Persistence is the source of truth; nothing here can
// fail or delay the submitter's request.
package mailer

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"

	"nightnurse/pkg/types"

	"github.com/sirupsen/logrus"
	mail "github.com/wneessen/go-mail"
)

const (
	fromName    = "Tahoe Night Nurse"
	fromAddress = "noreply@tahoenightnurse.com"

	subjectParent    = "New Parent Interest - Tahoe Night Nurse"
	subjectCaregiver = "New Caregiver Application - Tahoe Night Nurse"

	dialTimeout = 10 * time.Second
)

type Mailer struct {
	logger *logrus.Logger
	config *types.Config
}

func New(config *types.Config, logger *logrus.Logger) *Mailer {
	m := &Mailer{logger: logger, config: config}
	if !config.MailConfigured() {
		logger.Info("mail transport not configured, notifications disabled")
	}
	return m
}

// Notify dispatches a submission summary to the operator address. Safe to
// call from a bare goroutine: every failure mode, panics included, stops
// here with a log line.
func (m *Mailer) Notify(kind string, fields map[string]string) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.WithField("panic", r).Error("notification dispatch panicked")
		}
	}()

	if !m.config.MailConfigured() {
		m.logger.Debug("email notification skipped - not configured")
		return
	}

	subject := subjectCaregiver
	if kind == "parent" {
		subject = subjectParent
	}

	if err := m.send(subject, renderBody(subject, fields)); err != nil {
		m.logger.WithError(err).WithField("kind", kind).Error("failed to send notification")
		return
	}

	m.logger.WithField("kind", kind).Info("operator notification sent")
}

func (m *Mailer) send(subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(fromName, fromAddress); err != nil {
		return fmt.Errorf("set from address: %w", err)
	}
	if err := msg.To(m.config.AdminEmail); err != nil {
		return fmt.Errorf("set to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	client, err := mail.NewClient(m.config.SMTPHost,
		mail.WithPort(m.config.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.config.SMTPUser),
		mail.WithPassword(m.config.SMTPPass),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(dialTimeout),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}

// renderBody lays the submission out as a two-column label/value table.
// Fields are sorted so the output is stable; the honeypot field is omitted.
func renderBody(subject string, fields map[string]string) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		if name == types.HoneypotField {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "<h2>%s</h2>", html.EscapeString(subject))
	b.WriteString(`<table style="border-collapse: collapse; width: 100%;">`)
	for _, name := range names {
		value := fields[name]
		if value == "" {
			value = "N/A"
		}
		fmt.Fprintf(&b,
			`<tr><td style="padding: 8px; border: 1px solid #ddd; font-weight: bold;">%s:</td>`+
				`<td style="padding: 8px; border: 1px solid #ddd;">%s</td></tr>`,
			html.EscapeString(fieldLabel(name)), html.EscapeString(value))
	}
	b.WriteString("</table>")
	return b.String()
}

// fieldLabel turns a snake_case form name into a Title Case display label.
func fieldLabel(name string) string {
	words := strings.Split(name, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
