package otp

import (
	"encoding/base32"
	"time"

	potp "github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// Engine issues and checks time-windowed one-time codes bound to an
// identity (an e-mail address). It does not deliver codes.
type Engine interface {
	Generate(identity string) (string, error)
	Verify(identity, code string) bool
}

type totpEngine struct {
	salt string
	opts totp.ValidateOpts
	now  func() time.Time
}

var secretEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// New returns an Engine whose codes rotate every period and are also
// accepted in the window directly before and after the current one.
func New(salt string, period time.Duration) Engine {
	return NewWithClock(salt, period, time.Now)
}

func NewWithClock(salt string, period time.Duration, now func() time.Time) Engine {
	seconds := uint(period / time.Second)
	if seconds == 0 {
		seconds = 30
	}
	return &totpEngine{
		salt: salt,
		opts: totp.ValidateOpts{
			Period:    seconds,
			Skew:      1,
			Digits:    potp.DigitsSix,
			Algorithm: potp.AlgorithmSHA1,
		},
		now: now,
	}
}

func (e *totpEngine) Generate(identity string) (string, error) {
	return totp.GenerateCodeCustom(e.secret(identity), e.now(), e.opts)
}

func (e *totpEngine) Verify(identity, code string) bool {
	ok, err := totp.ValidateCustom(code, e.secret(identity), e.now(), e.opts)
	if err != nil {
		return false
	}
	return ok
}

// secret derives the per-identity TOTP key from the identity and the
// application salt.
func (e *totpEngine) secret(identity string) string {
	return secretEncoding.EncodeToString([]byte(identity + e.salt))
}
