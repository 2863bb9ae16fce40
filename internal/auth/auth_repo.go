package auth

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// AuthRepository defines the interface for refresh-token persistence.
type AuthRepository interface {
	CreateRefreshToken(t *RefreshToken) error
	GetRefreshToken(token string) (*RefreshToken, error)
	RevokeRefreshToken(token string) error
	RevokeAllForUser(userID uint) error
	DeleteExpired() error
}

type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) CreateRefreshToken(t *RefreshToken) error {
	return r.db.Create(t).Error
}

func (r *authRepository) GetRefreshToken(token string) (*RefreshToken, error) {
	var rt RefreshToken
	if err := r.db.Where("token = ?", token).First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *authRepository) RevokeRefreshToken(token string) error {
	return r.db.Model(&RefreshToken{}).
		Where("token = ?", token).
		Update("revoked", true).Error
}

func (r *authRepository) RevokeAllForUser(userID uint) error {
	return r.db.Model(&RefreshToken{}).
		Where("user_id = ? AND revoked = false", userID).
		Update("revoked", true).Error
}

func (r *authRepository) DeleteExpired() error {
	return r.db.Unscoped().
		Where("expires_at < ?", time.Now()).
		Delete(&RefreshToken{}).Error
}
