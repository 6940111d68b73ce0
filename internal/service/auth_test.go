package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/janatafootwear/storefront/internal/tokens"
)

func newAuthEnv(t *testing.T) *AuthService {
	t.Helper()

	return &AuthService{
		Repo:        newTestRepo(t),
		JWTSecret:   []byte("test-secret"),
		DemoOTP:     "123456",
		AdminPhones: []string{"1234567890"},
	}
}

func TestLoginFlow(t *testing.T) {
	t.Parallel()

	svc := newAuthEnv(t)
	ctx := context.Background()

	require.NoError(t, svc.RequestOTP(ctx, "9876543210"))

	res, err := svc.Login(ctx, "9876543210", "123456")
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	require.Equal(t, "9876543210", res.User.Phone)
	require.Equal(t, RoleCustomer, res.User.Role)

	claims, err := tokens.AccessClaimsFromToken(res.AccessToken, svc.JWTSecret)
	require.NoError(t, err)
	require.Equal(t, res.User.ID.String(), claims.Subject)
	require.Equal(t, "9876543210", claims.Phone)
	require.Equal(t, RoleCustomer, claims.Role)

	// The code is single use.
	_, err = svc.Login(ctx, "9876543210", "123456")
	require.ErrorIs(t, err, ErrValidation)
}

func TestLoginWrongCode(t *testing.T) {
	t.Parallel()

	svc := newAuthEnv(t)
	ctx := context.Background()

	require.NoError(t, svc.RequestOTP(ctx, "9876543210"))

	_, err := svc.Login(ctx, "9876543210", "000000")
	require.ErrorIs(t, err, ErrValidation)

	// No code was ever requested for this phone.
	_, err = svc.Login(ctx, "9123456789", "123456")
	require.ErrorIs(t, err, ErrValidation)
}

func TestRequestOTPValidatesPhone(t *testing.T) {
	t.Parallel()

	svc := newAuthEnv(t)

	for _, phone := range []string{"", "12345", "abcdefghij", "+919876543210"} {
		require.ErrorIs(t, svc.RequestOTP(context.Background(), phone), ErrValidation)
	}
}

func TestAdminRoleFromConfig(t *testing.T) {
	t.Parallel()

	svc := newAuthEnv(t)
	ctx := context.Background()

	require.NoError(t, svc.RequestOTP(ctx, "1234567890"))
	res, err := svc.Login(ctx, "1234567890", "123456")
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, res.User.Role)

	claims, err := tokens.AccessClaimsFromToken(res.AccessToken, svc.JWTSecret)
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, claims.Role)
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	svc := newAuthEnv(t)
	ctx := context.Background()

	require.NoError(t, svc.RequestOTP(ctx, "9876543210"))
	res, err := svc.Login(ctx, "9876543210", "123456")
	require.NoError(t, err)
	require.Empty(t, res.User.Name)

	user, err := svc.UpdateProfile(ctx, res.User.ID, "Asha Rao", "asha@example.com")
	require.NoError(t, err)
	require.Equal(t, "Asha Rao", user.Name)
	require.Equal(t, "asha@example.com", user.Email)

	// The edit sticks; phone and role are untouched.
	got, err := svc.Profile(ctx, res.User.ID)
	require.NoError(t, err)
	require.Equal(t, "Asha Rao", got.Name)
	require.Equal(t, "asha@example.com", got.Email)
	require.Equal(t, "9876543210", got.Phone)
	require.Equal(t, RoleCustomer, got.Role)

	_, err = svc.UpdateProfile(ctx, res.User.ID, "", "asha@example.com")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.UpdateProfile(ctx, uuid.New(), "Ghost", "")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRoleRefreshOnLogin(t *testing.T) {
	t.Parallel()

	svc := newAuthEnv(t)
	ctx := context.Background()

	// First login as a customer.
	require.NoError(t, svc.RequestOTP(ctx, "9876543210"))
	res, err := svc.Login(ctx, "9876543210", "123456")
	require.NoError(t, err)
	require.Equal(t, RoleCustomer, res.User.Role)

	// Promotion lands on the next login.
	svc.AdminPhones = append(svc.AdminPhones, "9876543210")
	require.NoError(t, svc.RequestOTP(ctx, "9876543210"))
	res, err = svc.Login(ctx, "9876543210", "123456")
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, res.User.Role)
}
