package email

import (
	"context"

	"github.com/wneessen/go-mail"
)

// SMTPSender delivers mail over an authenticated SMTP relay.
type SMTPSender struct {
	Host     string
	Port     int
	Username string
	Password string
}

// NewSMTPSender creates an SMTPSender for the given relay.
func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{Host: host, Port: port, Username: username, Password: password}
}

var _ Sender = (*SMTPSender)(nil)

// Send delivers msg over SMTP. The connection is dialed per call; the context
// bounds the whole dial-and-send.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if s.Host == "" || s.Username == "" || s.Password == "" {
		return ErrNotConfigured
	}

	m := mail.NewMsg()
	if err := m.FromFormat(msg.FromName, msg.From); err != nil {
		return err
	}
	if err := m.To(msg.To); err != nil {
		return err
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return err
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Text)
	m.AddAlternativeString(mail.TypeTextHTML, msg.HTML)

	client, err := mail.NewClient(s.Host,
		mail.WithPort(s.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.Username),
		mail.WithPassword(s.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, m)
}
