package errors

import "github.com/muhammadheryan/storefront/constant"

type CustomError struct {
	errType constant.ErrorType
	detail  string
}

func (c CustomError) Error() string {
	if c.detail != "" {
		return c.detail
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorType() constant.ErrorType {
	return c.errType
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// SetCustomErrorDetail is SetCustomError with a message that replaces the
// catalogue message, e.g. the first failing validation field.
func SetCustomErrorDetail(errorType constant.ErrorType, detail string) CustomError {
	return CustomError{
		errType: errorType,
		detail:  detail,
	}
}

// Is matches any CustomError of the same type, ignoring the detail.
func (c CustomError) Is(target error) bool {
	t, ok := target.(CustomError)
	if !ok {
		return false
	}
	return t.errType == c.errType
}
