package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/storefront/constant"
	"github.com/muhammadheryan/storefront/model"
)

// ErrInvalidToken is returned for every verification failure. Expired,
// tampered and malformed tokens are deliberately indistinguishable.
var ErrInvalidToken = errors.New("invalid token")

type Issuer interface {
	IssueAccess(user *model.UserEntity) (string, error)
	IssueRefresh(user *model.UserEntity) (string, error)
	VerifyAccess(tokenString string) (*model.AccessClaims, error)
	VerifyRefresh(tokenString string) (uint64, error)
}

type Config struct {
	AccessSecret      string
	RefreshSecret     string
	AccessExpiration  time.Duration
	RefreshExpiration time.Duration
}

type accessClaims struct {
	ID     uint64              `json:"id"`
	Role   constant.Role       `json:"role"`
	Status constant.UserStatus `json:"status"`
	jwt.RegisteredClaims
}

type refreshClaims struct {
	ID uint64 `json:"id"`
	jwt.RegisteredClaims
}

type jwtIssuer struct {
	cfg Config
	now func() time.Time
}

func New(cfg Config) (Issuer, error) {
	return NewWithClock(cfg, time.Now)
}

func NewWithClock(cfg Config, now func() time.Time) (Issuer, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, fmt.Errorf("token secrets must not be empty")
	}
	if cfg.AccessSecret == cfg.RefreshSecret {
		return nil, fmt.Errorf("access and refresh secrets must differ")
	}
	return &jwtIssuer{cfg: cfg, now: now}, nil
}

func (i *jwtIssuer) IssueAccess(user *model.UserEntity) (string, error) {
	claims := accessClaims{
		ID:               user.ID,
		Role:             user.Role,
		Status:           user.Status,
		RegisteredClaims: i.registered(user.ID, i.cfg.AccessExpiration),
	}
	return sign(claims, i.cfg.AccessSecret)
}

func (i *jwtIssuer) IssueRefresh(user *model.UserEntity) (string, error) {
	claims := refreshClaims{
		ID:               user.ID,
		RegisteredClaims: i.registered(user.ID, i.cfg.RefreshExpiration),
	}
	return sign(claims, i.cfg.RefreshSecret)
}

func (i *jwtIssuer) VerifyAccess(tokenString string) (*model.AccessClaims, error) {
	var claims accessClaims
	if err := i.parse(tokenString, &claims, i.cfg.AccessSecret); err != nil {
		return nil, err
	}
	return &model.AccessClaims{
		UserID: claims.ID,
		Role:   claims.Role,
		Status: claims.Status,
	}, nil
}

func (i *jwtIssuer) VerifyRefresh(tokenString string) (uint64, error) {
	var claims refreshClaims
	if err := i.parse(tokenString, &claims, i.cfg.RefreshSecret); err != nil {
		return 0, err
	}
	return claims.ID, nil
}

func (i *jwtIssuer) registered(userID uint64, ttl time.Duration) jwt.RegisteredClaims {
	now := i.now()
	return jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}
}

func (i *jwtIssuer) parse(tokenString string, claims jwt.Claims, secret string) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

func sign(claims jwt.Claims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}
