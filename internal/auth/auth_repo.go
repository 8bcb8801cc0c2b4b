package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

type AuthRepository interface {
	SaveRefreshToken(ctx context.Context, token *RefreshToken) error
	// GetRefreshToken returns (nil, nil) when the digest is unknown, revoked or expired at now.
	GetRefreshToken(ctx context.Context, digest string, now time.Time) (*RefreshToken, error)
	// InvalidateRefreshToken only touches a token that belongs to userID.
	InvalidateRefreshToken(ctx context.Context, userID uint, digest string) error
	InvalidateAllRefreshTokensForUser(ctx context.Context, userID uint) error
}

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) AuthRepository {
	return &authRepository{db: db}
}

func (r *authRepository) SaveRefreshToken(ctx context.Context, token *RefreshToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *authRepository) GetRefreshToken(ctx context.Context, digest string, now time.Time) (*RefreshToken, error) {
	var rt RefreshToken
	err := r.db.WithContext(ctx).
		Where("token = ? AND expires_at > ? AND revoked = ?", digest, now, false).
		First(&rt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rt, nil
}

func (r *authRepository) InvalidateRefreshToken(ctx context.Context, userID uint, digest string) error {
	return r.db.WithContext(ctx).Model(&RefreshToken{}).
		Where("token = ? AND user_id = ?", digest, userID).
		Update("revoked", true).Error
}

func (r *authRepository) InvalidateAllRefreshTokensForUser(ctx context.Context, userID uint) error {
	result := r.db.WithContext(ctx).Model(&RefreshToken{}).
		Where("user_id = ? AND revoked = ?", userID, false).
		Update("revoked", true)
	if result.Error != nil {
		return fmt.Errorf("failed to invalidate all refresh tokens: %w", result.Error)
	}
	return nil
}
