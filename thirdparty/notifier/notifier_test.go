package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadheryan/storefront/cmd/config"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/thirdparty/mailer"
	"github.com/muhammadheryan/storefront/thirdparty/sms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	to, code string
	err      error
}

func (r *recorder) SendOTPMail(_ context.Context, to, code string) error {
	r.to, r.code = to, code
	return r.err
}

func (r *recorder) SendOTPSMS(_ context.Context, phone, code string) error {
	r.to, r.code = phone, code
	return r.err
}

func TestDirect_SendOTP(t *testing.T) {
	ctx := context.Background()

	t.Run("email goes to the mailer", func(t *testing.T) {
		mail, text := &recorder{}, &recorder{}
		err := NewDirect(mail, text).SendOTP(ctx, &model.OTPDelivery{
			Channel: constant.DeliveryChannelEmail, Recipient: "a@b.com", Code: "111111",
		})
		assert.NoError(t, err)
		assert.Equal(t, "a@b.com", mail.to)
		assert.Empty(t, text.to)
	})

	t.Run("sms goes to the sms client", func(t *testing.T) {
		mail, text := &recorder{}, &recorder{}
		err := NewDirect(mail, text).SendOTP(ctx, &model.OTPDelivery{
			Channel: constant.DeliveryChannelSMS, Recipient: "998901234567", Code: "222222",
		})
		assert.NoError(t, err)
		assert.Equal(t, "222222", text.code)
		assert.Empty(t, mail.to)
	})

	t.Run("sms without client fails", func(t *testing.T) {
		err := NewDirect(&recorder{}, nil).SendOTP(ctx, &model.OTPDelivery{Channel: constant.DeliveryChannelSMS})
		assert.Error(t, err)
	})

	t.Run("unknown channel fails", func(t *testing.T) {
		err := NewDirect(&recorder{}, nil).SendOTP(ctx, &model.OTPDelivery{Channel: "pigeon"})
		assert.Error(t, err)
	})

	t.Run("delivery error is returned", func(t *testing.T) {
		err := NewDirect(&recorder{err: errors.New("smtp down")}, nil).SendOTP(ctx, &model.OTPDelivery{
			Channel: constant.DeliveryChannelEmail, Recipient: "a@b.com",
		})
		assert.ErrorContains(t, err, "smtp down")
	})
}

func TestNewFromConfig(t *testing.T) {
	t.Run("sms disabled", func(t *testing.T) {
		d, ok := NewFromConfig(&config.Config{}).(*direct)
		require.True(t, ok)
		assert.IsType(t, &mailer.Mailer{}, d.mail)
		assert.Nil(t, d.sms)

		err := d.SendOTP(context.Background(), &model.OTPDelivery{
			Channel: constant.DeliveryChannelSMS, Recipient: "+62811", Code: "123456",
		})
		assert.Error(t, err)
	})

	t.Run("sms enabled", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.OTP.SMSEnabled = true
		d, ok := NewFromConfig(cfg).(*direct)
		require.True(t, ok)
		assert.IsType(t, &sms.Client{}, d.sms)
	})
}
