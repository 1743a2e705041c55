package mailer

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/storefront/cmd/config"
	"gopkg.in/gomail.v2"
)

const otpSubject = "Your verification code"

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer sends transactional e-mail over SMTP.
type Mailer struct {
	from   string
	dialer dialer
}

func New(cfg config.MailConfig) *Mailer {
	return &Mailer{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// SendOTPMail sends the verification code to the given address. gomail has
// no context support; ctx is only checked before dialing.
func (m *Mailer) SendOTPMail(ctx context.Context, to, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", otpSubject)
	msg.SetBody("text/plain", fmt.Sprintf("Your verification code is %s", code))
	msg.AddAlternative("text/html", fmt.Sprintf("<p>Your verification code is <b>%s</b></p>", code))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send otp mail: %w", err)
	}
	return nil
}
