package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidToken
	ErrUnverified
	ErrForbidden
	ErrNotYours
	ErrConflict
	ErrUnknownCredential
	ErrInvalidPassword
	ErrInvalidOTP
	ErrTooManyAttempts
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "token not provided",
	ErrInvalidToken:      "invalid token",
	ErrUnverified:        "account is not verified, please verify your account",
	ErrForbidden:         "not allowed",
	ErrNotYours:          "it is not your resource",
	ErrConflict:          "data already exists",
	ErrUnknownCredential: "user not found",
	ErrInvalidPassword:   "password is incorrect",
	ErrInvalidOTP:        "code is not valid or expired",
	ErrTooManyAttempts:   "too many attempts, try again later",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusNotFound,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrInvalidToken:      http.StatusUnauthorized,
	ErrUnverified:        http.StatusUnauthorized,
	ErrForbidden:         http.StatusForbidden,
	ErrNotYours:          http.StatusBadRequest,
	ErrConflict:          http.StatusConflict,
	ErrUnknownCredential: http.StatusBadRequest,
	ErrInvalidPassword:   http.StatusUnauthorized,
	ErrInvalidOTP:        http.StatusBadRequest,
	ErrTooManyAttempts:   http.StatusTooManyRequests,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrInvalidToken:      "0005",
	ErrUnverified:        "0006",
	ErrForbidden:         "0007",
	ErrNotYours:          "0008",
	ErrConflict:          "0009",
	ErrUnknownCredential: "0010",
	ErrInvalidPassword:   "0011",
	ErrInvalidOTP:        "0012",
	ErrTooManyAttempts:   "0013",
}
