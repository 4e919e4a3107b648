package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"idcard-backend/internal/domain/user"
	"idcard-backend/internal/testutil/usermock"
)

func adminUser(t *testing.T, password string) *user.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return &user.User{
		ID:           1,
		UserID:       "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa",
		Email:        "admin@example.test",
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	}
}

func TestLogin_Success(t *testing.T) {
	u := adminUser(t, "correct-horse-battery")

	var session *user.Session
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			if email != u.Email {
				t.Fatalf("email=%s", email)
			}
			return u, nil
		},
		CreateSessionFn: func(ctx context.Context, s *user.Session) error {
			session = s
			return nil
		},
	}
	uc := NewUsecase(users, time.Hour)

	dto, err := uc.Login(context.Background(), LoginInput{Email: u.Email, Password: "correct-horse-battery"})
	if err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if session == nil {
		t.Fatalf("session not created")
	}
	if len(dto.Token) != 32 {
		t.Fatalf("token length: %d", len(dto.Token))
	}
	if dto.Role != string(user.RoleAdmin) {
		t.Fatalf("role=%s", dto.Role)
	}
	if !session.ExpiresAt.After(time.Now()) {
		t.Fatalf("session already expired: %v", session.ExpiresAt)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	u := adminUser(t, "correct-horse-battery")
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) { return u, nil },
		CreateSessionFn: func(ctx context.Context, s *user.Session) error {
			t.Fatalf("no session on bad password")
			return nil
		},
	}
	uc := NewUsecase(users, time.Hour)

	_, err := uc.Login(context.Background(), LoginInput{Email: u.Email, Password: "guess"})
	if !errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(users, time.Hour)

	_, err := uc.Login(context.Background(), LoginInput{Email: "who@example.test", Password: "x"})
	if !errors.Is(err, user.ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthenticate_EmptyToken(t *testing.T) {
	uc := NewUsecase(&usermock.Repo{}, time.Hour)
	if _, err := uc.Authenticate(context.Background(), ""); !errors.Is(err, user.ErrSessionNotFound) {
		t.Fatalf("want ErrSessionNotFound, got %v", err)
	}
}

func TestRegister_HashesPassword(t *testing.T) {
	var created *user.User
	users := &usermock.Repo{
		CreateFn: func(ctx context.Context, u *user.User) error {
			created = u
			return nil
		},
	}
	uc := NewUsecase(users, time.Hour)

	_, err := uc.Register(context.Background(), "a@example.test", "s3cret-passphrase", "Ama", "Diallo", user.RoleUser)
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if created.PasswordHash == "s3cret-passphrase" || created.PasswordHash == "" {
		t.Fatalf("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("s3cret-passphrase")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestBootstrap_CreatesSuperAdminOnce(t *testing.T) {
	var created *user.User
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, u *user.User) error {
			created = u
			return nil
		},
	}
	uc := NewUsecase(users, time.Hour)

	if err := uc.Bootstrap(context.Background(), "root@example.test", "s3cret-passphrase"); err != nil {
		t.Fatalf("Bootstrap err: %v", err)
	}
	if created == nil || created.Role != user.RoleSuperAdmin {
		t.Fatalf("super-admin not created: %+v", created)
	}
}

func TestBootstrap_SkipsExistingAccount(t *testing.T) {
	existing := adminUser(t, "whatever")
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return existing, nil
		},
		CreateFn: func(ctx context.Context, u *user.User) error {
			t.Fatalf("Create must not be called when the account exists")
			return nil
		},
	}
	uc := NewUsecase(users, time.Hour)

	if err := uc.Bootstrap(context.Background(), existing.Email, "whatever"); err != nil {
		t.Fatalf("Bootstrap err: %v", err)
	}
}
