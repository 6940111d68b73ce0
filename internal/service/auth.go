package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/janatafootwear/storefront/internal/hash"
	"github.com/janatafootwear/storefront/internal/logging"
	"github.com/janatafootwear/storefront/internal/models"
	"github.com/janatafootwear/storefront/internal/repo"
	"github.com/janatafootwear/storefront/internal/tokens"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"

	otpTTL     = 5 * time.Minute
	sessionTTL = 24 * time.Hour
)

// AuthService implements the demo phone+OTP login. The OTP is a fixed
// configured code (this is a prototype, nothing is sent anywhere) but
// it is stored hashed with an expiry like a real one would be. Admin
// access comes from configuration, not from a magic phone number in
// code.
type AuthService struct {
	Repo        *repo.GormRepo
	JWTSecret   []byte
	DemoOTP     string
	AdminPhones []string
}

type LoginResult struct {
	AccessToken string       `json:"access_token"`
	User        *models.User `json:"user"`
}

// RequestOTP issues a login code for the phone. The demo deployment
// logs it instead of sending an SMS.
func (s *AuthService) RequestOTP(ctx context.Context, phone string) error {
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("10-digit phone required: %w", ErrValidation)
	}

	codeHash, err := hash.HashCode(s.DemoOTP)
	if err != nil {
		return err
	}

	otp := &models.OTPCode{
		Phone:     phone,
		CodeHash:  codeHash,
		ExpiresAt: time.Now().UTC().Add(otpTTL),
	}
	if err := s.Repo.ReplaceOTP(ctx, otp); err != nil {
		return err
	}

	logging.FromContext(ctx).Info("otp_issued", "phone", phone, "demo_code", s.DemoOTP)
	return nil
}

// Login verifies the code, provisions the account on first use and
// returns a signed session token.
func (s *AuthService) Login(ctx context.Context, phone, code string) (*LoginResult, error) {
	if !phonePattern.MatchString(phone) {
		return nil, fmt.Errorf("10-digit phone required: %w", ErrValidation)
	}
	if code == "" {
		return nil, fmt.Errorf("code required: %w", ErrValidation)
	}

	otp, err := s.Repo.GetOTP(ctx, phone)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("no code requested for this phone: %w", ErrValidation)
	}
	if err != nil {
		return nil, err
	}

	if time.Now().UTC().After(otp.ExpiresAt) {
		return nil, fmt.Errorf("code expired: %w", ErrValidation)
	}
	if !hash.CheckCode(otp.CodeHash, code) {
		return nil, fmt.Errorf("wrong code: %w", ErrValidation)
	}

	user, err := s.Repo.FindOrCreateUser(ctx, phone, s.roleFor(phone))
	if err != nil {
		return nil, err
	}

	if err := s.Repo.DeleteOTP(ctx, phone); err != nil {
		return nil, err
	}

	exp := time.Now().UTC().Add(sessionTTL)
	token, err := tokens.SignAccessToken(user.ID.String(), user.Phone, user.Role, s.JWTSecret, exp)
	if err != nil {
		return nil, err
	}

	return &LoginResult{AccessToken: token, User: user}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile edits the account's display name and contact email.
// Phone and role are not editable here, phone is the login identity and
// role comes from configuration.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, name, email string) (*models.User, error) {
	if name == "" {
		return nil, fmt.Errorf("name required: %w", ErrValidation)
	}

	user, err := s.Repo.UpdateUserProfile(ctx, userID, name, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) roleFor(phone string) string {
	for _, p := range s.AdminPhones {
		if p == phone {
			return RoleAdmin
		}
	}
	return RoleCustomer
}
