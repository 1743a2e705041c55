package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func TestMailer_SendOTPMail(t *testing.T) {
	t.Run("success: message carries code and headers", func(t *testing.T) {
		d := &fakeDialer{}
		m := &Mailer{from: "no-reply@test.local", dialer: d}

		require.NoError(t, m.SendOTPMail(context.Background(), "a@b.com", "123456"))
		require.Len(t, d.sent, 1)

		msg := d.sent[0]
		assert.Equal(t, []string{"a@b.com"}, msg.GetHeader("To"))
		assert.Equal(t, []string{"no-reply@test.local"}, msg.GetHeader("From"))

		var buf bytes.Buffer
		_, err := msg.WriteTo(&buf)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "123456")
	})

	t.Run("error: dialer failure is returned", func(t *testing.T) {
		m := &Mailer{from: "x@test.local", dialer: &fakeDialer{err: errors.New("refused")}}
		err := m.SendOTPMail(context.Background(), "a@b.com", "123456")
		assert.ErrorContains(t, err, "refused")
	})

	t.Run("error: canceled context skips dialing", func(t *testing.T) {
		d := &fakeDialer{}
		m := &Mailer{from: "x@test.local", dialer: d}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, m.SendOTPMail(ctx, "a@b.com", "123456"), context.Canceled)
		assert.Empty(t, d.sent)
	})
}
