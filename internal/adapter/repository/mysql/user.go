package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	userDomain "idcard-backend/internal/domain/user"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) Create(ctx context.Context, u *userDomain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("email = ?", email).First(&out)
	return &out, res.Error
}

func (r *UserRepository) GetByUserID(ctx context.Context, userID string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&out)
	return &out, res.Error
}

func (r *UserRepository) CreateSession(ctx context.Context, s *userDomain.Session) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *UserRepository) GetBySessionToken(ctx context.Context, token string, now time.Time) (*userDomain.User, error) {
	var s userDomain.Session
	res := r.db.WithContext(ctx).Where("token = ?", token).First(&s)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, userDomain.ErrSessionNotFound
		}
		return nil, res.Error
	}
	if now.After(s.ExpiresAt) {
		return nil, userDomain.ErrSessionExpired
	}

	var out userDomain.User
	if err := r.db.WithContext(ctx).Where("id = ?", s.UserID).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *UserRepository) DeleteSession(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&userDomain.Session{}).Error
}
