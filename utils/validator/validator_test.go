package validatorx_test

import (
	"errors"
	"sync"
	"testing"

	validatorx "github.com/muhammadheryan/storefront/utils/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin seller buyer"`
}

func TestFirstError(t *testing.T) {
	tests := []struct {
		name string
		in   signup
		want string
	}{
		{name: "required", in: signup{Password: "secret1"}, want: "email is required"},
		{name: "email", in: signup{Email: "nope", Password: "secret1"}, want: "email must be a valid email"},
		{name: "min", in: signup{Email: "a@b.co", Password: "123"}, want: "password must be at least 6"},
		{name: "oneof", in: signup{Email: "a@b.co", Password: "secret1", Role: "root"}, want: "role must be one of [admin seller buyer]"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidateStruct(tt.in)
			require.Error(t, err)
			assert.Equal(t, tt.want, validatorx.FirstError(err))
		})
	}

	assert.NoError(t, validatorx.ValidateStruct(signup{Email: "a@b.co", Password: "secret1"}))
	assert.Equal(t, "boom", validatorx.FirstError(errors.New("boom")))
}

func TestValidateStruct_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			validatorx.Init()
			assert.Error(t, validatorx.ValidateStruct(signup{}))
		}()
	}
	wg.Wait()
}
