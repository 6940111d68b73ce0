package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/janatafootwear/storefront/internal/models"
)

// FindOrCreateUser looks a user up by phone, creating the account with
// the given role on first login.
func (r *GormRepo) FindOrCreateUser(ctx context.Context, phone, role string) (*models.User, error) {
	var user models.User
	err := r.DB.WithContext(ctx).Where("phone = ?", phone).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{Phone: phone, Role: role}
		if err := r.DB.WithContext(ctx).Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil
	}
	if err != nil {
		return nil, err
	}

	// Role assignment is configuration; pick up changes on login.
	if user.Role != role {
		user.Role = role
		if err := r.DB.WithContext(ctx).Model(&user).Update("role", role).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}

func (r *GormRepo) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUserProfile sets the editable account fields.
func (r *GormRepo) UpdateUserProfile(ctx context.Context, id uuid.UUID, name, email string) (*models.User, error) {
	user, err := r.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Name = name
	user.Email = email
	if err := r.DB.WithContext(ctx).Model(user).
		Updates(map[string]any{"name": name, "email": email}).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// ReplaceOTP swaps any outstanding login code for the phone with a new
// hash.
func (r *GormRepo) ReplaceOTP(ctx context.Context, otp *models.OTPCode) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("phone = ?", otp.Phone).Delete(&models.OTPCode{}).Error; err != nil {
			return err
		}
		return tx.Create(otp).Error
	})
}

func (r *GormRepo) GetOTP(ctx context.Context, phone string) (*models.OTPCode, error) {
	var otp models.OTPCode
	if err := r.DB.WithContext(ctx).Where("phone = ?", phone).First(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

func (r *GormRepo) DeleteOTP(ctx context.Context, phone string) error {
	return r.DB.WithContext(ctx).Where("phone = ?", phone).Delete(&models.OTPCode{}).Error
}
