package token_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
	"github.com/muhammadheryan/storefront/utils/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIssuer(t *testing.T, now *time.Time) token.Issuer {
	t.Helper()
	issuer, err := token.NewWithClock(token.Config{
		AccessSecret:      "access-secret",
		RefreshSecret:     "refresh-secret",
		AccessExpiration:  15 * time.Minute,
		RefreshExpiration: 24 * time.Hour,
	}, func() time.Time { return *now })
	require.NoError(t, err)
	return issuer
}

func TestIssuer_AccessRoundTrip(t *testing.T) {
	now := time.Now()
	issuer := newIssuer(t, &now)
	user := &model.UserEntity{ID: 42, Role: constant.RoleSeller, Status: constant.UserStatusActive}

	tok, err := issuer.IssueAccess(user)
	require.NoError(t, err)

	claims, err := issuer.VerifyAccess(tok)
	require.NoError(t, err)
	assert.Equal(t, &model.AccessClaims{UserID: 42, Role: constant.RoleSeller, Status: constant.UserStatusActive}, claims)

	_, err = issuer.VerifyRefresh(tok)
	assert.ErrorIs(t, err, token.ErrInvalidToken, "access token must not pass as refresh")
}

func TestIssuer_RefreshRoundTrip(t *testing.T) {
	now := time.Now()
	issuer := newIssuer(t, &now)

	tok, err := issuer.IssueRefresh(&model.UserEntity{ID: 7})
	require.NoError(t, err)

	id, err := issuer.VerifyRefresh(tok)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), id)

	_, err = issuer.VerifyAccess(tok)
	assert.ErrorIs(t, err, token.ErrInvalidToken, "refresh token must not pass as access")
}

func TestIssuer_Expiry(t *testing.T) {
	now := time.Now()
	issuer := newIssuer(t, &now)

	tok, err := issuer.IssueAccess(&model.UserEntity{ID: 1, Role: constant.RoleBuyer, Status: constant.UserStatusActive})
	require.NoError(t, err)

	now = now.Add(16 * time.Minute)
	_, err = issuer.VerifyAccess(tok)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestIssuer_Tampered(t *testing.T) {
	now := time.Now()
	issuer := newIssuer(t, &now)

	tok, err := issuer.IssueAccess(&model.UserEntity{ID: 1, Role: constant.RoleBuyer, Status: constant.UserStatusActive})
	require.NoError(t, err)

	_, err = issuer.VerifyAccess(tok + "x")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
	_, err = issuer.VerifyAccess("not-a-jwt")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestNew_Secrets(t *testing.T) {
	_, err := token.New(token.Config{AccessSecret: "same", RefreshSecret: "same"})
	assert.Error(t, err)

	_, err = token.New(token.Config{AccessSecret: "", RefreshSecret: "x"})
	assert.Error(t, err)
}
