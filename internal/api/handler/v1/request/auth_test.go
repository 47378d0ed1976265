package request

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignupRequest_Validate(t *testing.T) {
	valid := SignupRequest{
		Name:            "Member One",
		Email:           "army@example.com",
		Password:        "secret1234",
		ConfirmPassword: "secret1234",
	}

	tests := []struct {
		name    string
		mutate  func(r *SignupRequest)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(r *SignupRequest) {},
		},
		{
			name:    "bad email",
			mutate:  func(r *SignupRequest) { r.Email = "not-an-email" },
			wantErr: "email",
		},
		{
			name: "password too short",
			mutate: func(r *SignupRequest) {
				r.Password = "abc1"
				r.ConfirmPassword = "abc1"
			},
			wantErr: "at least 8 characters",
		},
		{
			name: "password without digits",
			mutate: func(r *SignupRequest) {
				r.Password = "onlyletters"
				r.ConfirmPassword = "onlyletters"
			},
			wantErr: "at least 8 characters",
		},
		{
			name: "password without letters",
			mutate: func(r *SignupRequest) {
				r.Password = "1234567890"
				r.ConfirmPassword = "1234567890"
			},
			wantErr: "at least 8 characters",
		},
		{
			name:    "confirm mismatch",
			mutate:  func(r *SignupRequest) { r.ConfirmPassword = "different1" },
			wantErr: "doesn't match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	require.NoError(t, (&LoginRequest{Email: "army@example.com", Password: "x"}).Validate())
	require.Error(t, (&LoginRequest{Email: "", Password: "x"}).Validate())
	require.Error(t, (&LoginRequest{Email: "army@example.com", Password: ""}).Validate())
}

func TestChangePasswordRequest_Validate(t *testing.T) {
	require.NoError(t, (&ChangePasswordRequest{CurrentPassword: "old", NewPassword: "newsecret1"}).Validate())
	require.Error(t, (&ChangePasswordRequest{CurrentPassword: "old", NewPassword: "short"}).Validate())
}
