package notify

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
)

type SmtpConfig struct {
	Server       string `json:"server"`
	Port         int    `json:"port"`
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
}

type Config struct {
	Smtp SmtpConfig `json:"smtp"`
	To   []string   `json:"to"`
}

func (c Config) Enabled() bool {
	return c.Smtp.Server != "" && len(c.To) > 0
}

// FallbackEvent describes a run that had to write the fallback list.
type FallbackEvent struct {
	Reason    string
	Err       error
	Extracted int
	Updated   string
	Output    string
}

type sendFunc func(mail *email.Email, addr string, auth smtp.Auth) error

func defaultSend(mail *email.Email, addr string, auth smtp.Auth) error {
	return mail.Send(addr, auth)
}

// Notifier emails operators when live rankings could not be used.
type Notifier struct {
	config Config
	send   sendFunc
}

func NewNotifier(config Config) Notifier {
	return Notifier{config: config, send: defaultSend}
}

func (n Notifier) Message(event FallbackEvent) *email.Email {
	mail := email.NewEmail()
	mail.From = fmt.Sprintf("Golfr Rankings <%s>", n.config.Smtp.EmailAddress)
	mail.To = n.config.To
	mail.Subject = fmt.Sprintf("Rankings fallback used (%s)", event.Reason)

	errText := "none"
	if event.Err != nil {
		errText = event.Err.Error()
	}
	mail.Text = []byte(fmt.Sprintf(`The OWGR rankings could not be fetched, the embedded fallback list was written instead.

Reason: %s
Error: %s
Names extracted: %d
Updated: %s
Output: %s`,
		event.Reason, errText, event.Extracted, event.Updated, event.Output,
	))
	return mail
}

func (n Notifier) NotifyFallback(ctx context.Context, event FallbackEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mail := n.Message(event)
	addr := fmt.Sprintf("%s:%d", n.config.Smtp.Server, n.config.Smtp.Port)

	var auth smtp.Auth
	if n.config.Smtp.Password != "" {
		auth = smtp.PlainAuth("", n.config.Smtp.EmailAddress, n.config.Smtp.Password, n.config.Smtp.Server)
	}
	err := n.send(mail, addr, auth)
	if err != nil && auth != nil && strings.Contains(err.Error(), "server doesn't support AUTH") {
		err = n.send(mail, addr, nil)
	}
	if err != nil {
		return fmt.Errorf("send fallback alert: %w", err)
	}
	return nil
}
