package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"idcard-backend/internal/domain/user"
)

type authFn func(ctx context.Context, token string) (*user.User, error)

func (f authFn) Authenticate(ctx context.Context, token string) (*user.User, error) {
	return f(ctx, token)
}

func authedEcho(auth Authenticator, adminOnly bool) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	mws := []echo.MiddlewareFunc{RequireAuth(auth)}
	if adminOnly {
		mws = append(mws, RequireAdmin())
	}
	e.GET("/protected", func(c echo.Context) error {
		u := CurrentUser(c)
		return c.JSON(http.StatusOK, map[string]string{"user_id": u.UserID})
	}, mws...)
	return e
}

func getProtected(e *echo.Echo, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	e := authedEcho(authFn(func(ctx context.Context, token string) (*user.User, error) {
		t.Fatal("authenticator must not be called without a token")
		return nil, nil
	}), false)

	if rec := getProtected(e, ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
	if rec := getProtected(e, "Basic dXNlcjpwYXNz"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("non-bearer scheme => want 401, got %d", rec.Code)
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	e := authedEcho(authFn(func(ctx context.Context, token string) (*user.User, error) {
		return nil, user.ErrSessionExpired
	}), false)

	if rec := getProtected(e, "Bearer tok-stale"); rec.Code != http.StatusUnauthorized {
		t.Fatalf("want 401, got %d", rec.Code)
	}
}

func TestRequireAuth_AttachesUser(t *testing.T) {
	e := authedEcho(authFn(func(ctx context.Context, token string) (*user.User, error) {
		if token != "tok-valid" {
			return nil, errors.New("wrong token passed through")
		}
		return &user.User{UserID: "u-1", Role: user.RoleUser}, nil
	}), false)

	rec := getProtected(e, "Bearer tok-valid")
	if rec.Code != http.StatusOK {
		t.Fatalf("want 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	if got := rec.Body.String(); got != "{\"user_id\":\"u-1\"}\n" {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestRequireAdmin_RoleGate(t *testing.T) {
	newAuth := func(role user.Role) Authenticator {
		return authFn(func(ctx context.Context, token string) (*user.User, error) {
			return &user.User{UserID: "u-1", Role: role}, nil
		})
	}

	if rec := getProtected(authedEcho(newAuth(user.RoleUser), true), "Bearer tok"); rec.Code != http.StatusForbidden {
		t.Fatalf("USER role => want 403, got %d", rec.Code)
	}
	if rec := getProtected(authedEcho(newAuth(user.RoleAdmin), true), "Bearer tok"); rec.Code != http.StatusOK {
		t.Fatalf("ADMIN role => want 200, got %d", rec.Code)
	}
	if rec := getProtected(authedEcho(newAuth(user.RoleSuperAdmin), true), "Bearer tok"); rec.Code != http.StatusOK {
		t.Fatalf("SUPER_ADMIN role => want 200, got %d", rec.Code)
	}
}

func Test_bearerToken(t *testing.T) {
	cases := map[string]string{
		"Bearer abc":   "abc",
		"bearer abc":   "abc", // scheme is case-insensitive
		"Bearer  abc ": "abc",
		"Bearer":       "",
		"Token abc":    "",
		"":             "",
	}
	for header, want := range cases {
		if got := bearerToken(header); got != want {
			t.Fatalf("bearerToken(%q) = %q, want %q", header, got, want)
		}
	}
}
