package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"idcard-backend/internal/domain/user"
	"idcard-backend/pkg/id"
)

type Usecase struct {
	users      user.Repository
	sessionTTL time.Duration
	now        func() time.Time
}

func NewUsecase(users user.Repository, sessionTTL time.Duration) *Usecase {
	return &Usecase{users: users, sessionTTL: sessionTTL, now: time.Now}
}

// Login checks the credentials and mints a bearer session token.
// Unknown email and wrong password return the same error.
func (u *Usecase) Login(ctx context.Context, in LoginInput) (*SessionDTO, error) {
	usr, err := u.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	s := &user.Session{
		Token:     id.NewID32(),
		UserID:    usr.ID,
		ExpiresAt: u.now().Add(u.sessionTTL),
	}
	if err := u.users.CreateSession(ctx, s); err != nil {
		return nil, err
	}

	return &SessionDTO{
		Token:     s.Token,
		ExpiresAt: s.ExpiresAt,
		UserID:    usr.UserID,
		Email:     usr.Email,
		FirstName: usr.FirstName,
		LastName:  usr.LastName,
		Role:      string(usr.Role),
	}, nil
}

// Authenticate resolves a bearer token to its user.
func (u *Usecase) Authenticate(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, user.ErrSessionNotFound
	}
	return u.users.GetBySessionToken(ctx, token, u.now())
}

// Logout invalidates a session token. Unknown tokens are not an error.
func (u *Usecase) Logout(ctx context.Context, token string) error {
	return u.users.DeleteSession(ctx, token)
}

// Bootstrap ensures the configured super-admin account exists, creating it
// on first startup. A no-op once the account is present.
func (u *Usecase) Bootstrap(ctx context.Context, email, password string) error {
	if _, err := u.users.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	_, err := u.Register(ctx, email, password, "System", "Administrator", user.RoleSuperAdmin)
	return err
}

// Register creates a user account with a bcrypt-hashed password. Reached via
// the startup Bootstrap path.
func (u *Usecase) Register(ctx context.Context, email, password, firstName, lastName string, role user.Role) (*user.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	usr := &user.User{
		UserID:       id.NewID32(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}
