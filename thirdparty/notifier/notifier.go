package notifier

import (
	"context"
	"fmt"

	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/thirdparty/mailer"
	"github.com/muhammadheryan/storefront/thirdparty/sms"
	"github.com/muhammadheryan/storefront/utils/metrics"
)

// Sender hands an OTP to a delivery channel. Implementations may deliver
// synchronously or enqueue the delivery for a worker.
type Sender interface {
	SendOTP(ctx context.Context, delivery *model.OTPDelivery) error
}

// MailSender delivers a code by e-mail
type MailSender interface {
	SendOTPMail(ctx context.Context, to, code string) error
}

// SMSSender delivers a code by text message
type SMSSender interface {
	SendOTPSMS(ctx context.Context, phone, code string) error
}

type direct struct {
	mail MailSender
	sms  SMSSender
}

// NewDirect returns a Sender that dispatches on the delivery channel and
// delivers in the caller's goroutine. sms may be nil when text messages are
// not configured.
func NewDirect(mail MailSender, sms SMSSender) Sender {
	return &direct{mail: mail, sms: sms}
}

// NewFromConfig builds the direct Sender from the mail and sms settings.
// Text messages are only wired when OTP SMS delivery is enabled.
func NewFromConfig(cfg *config.Config) Sender {
	if cfg.OTP.SMSEnabled {
		return NewDirect(mailer.New(cfg.Mail), sms.New(cfg.SMS))
	}
	return NewDirect(mailer.New(cfg.Mail), nil)
}

func (d *direct) SendOTP(ctx context.Context, delivery *model.OTPDelivery) error {
	var err error
	switch delivery.Channel {
	case constant.DeliveryChannelEmail:
		err = d.mail.SendOTPMail(ctx, delivery.Recipient, delivery.Code)
	case constant.DeliveryChannelSMS:
		if d.sms == nil {
			err = fmt.Errorf("sms delivery is not configured")
			break
		}
		err = d.sms.SendOTPSMS(ctx, delivery.Recipient, delivery.Code)
	default:
		err = fmt.Errorf("unknown delivery channel %q", delivery.Channel)
	}

	result := "ok"
	if err != nil {
		result = "failed"
	}
	metrics.OTPDeliveries.WithLabelValues(string(delivery.Channel), result).Inc()
	return err
}
