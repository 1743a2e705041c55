package model

import "github.com/muhammadheryan/storefront/constant"

// AccessClaims is the identity carried by an access token
type AccessClaims struct {
	UserID uint64
	Role   constant.Role
	Status constant.UserStatus
}

// RegisterRequest for user registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Year     int    `json:"year" validate:"required,gt=0"`
	RegionID uint64 `json:"region_id" validate:"required"`
	Image    string `json:"image" validate:"max=255"`
}

type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries either the token pair or, for unverified
// accounts, only a message.
type LoginResponse struct {
	Message      string `json:"message,omitempty"`
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
