package validator

import (
	"testing"

	"calendar-api/modules/auth/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterRequestAccepts(t *testing.T) {
	result := ValidateRegisterRequest(&dto.RegisterRequest{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Password:  "secret123",
		Birthdate: "1994-05-14",
	})

	assert.False(t, result.HasError())
}

func TestValidateRegisterRequestRejects(t *testing.T) {
	cases := []struct {
		name  string
		req   dto.RegisterRequest
		field string
	}{
		{"missing name", dto.RegisterRequest{Email: "jane@example.com", Password: "secret123", Birthdate: "1994-05-14"}, "name"},
		{"bad email", dto.RegisterRequest{Name: "Jane", Email: "not-an-email", Password: "secret123", Birthdate: "1994-05-14"}, "email"},
		{"short password", dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "abc", Birthdate: "1994-05-14"}, "password"},
		{"bad birthdate", dto.RegisterRequest{Name: "Jane", Email: "jane@example.com", Password: "secret123", Birthdate: "14/05/1994"}, "birthdate"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := ValidateRegisterRequest(&tc.req)

			require.True(t, result.HasError())
			assert.Equal(t, tc.field, result.Errors[0].Field)
		})
	}
}

func TestValidateLoginRequestRequiresBoth(t *testing.T) {
	result := ValidateLoginRequest(&dto.LoginRequest{})

	require.True(t, result.HasError())
	assert.Len(t, result.Errors, 2)
}
