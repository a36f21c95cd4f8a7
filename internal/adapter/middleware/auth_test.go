package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"library-backend/internal/domain/user"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret, sub string, role user.Role, ttl time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": string(role),
		"exp":  time.Now().Add(ttl).Unix(),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func newAuthServer(roles ...user.Role) *echo.Echo {
	e := echo.New()
	mws := []echo.MiddlewareFunc{JWT(testSecret)}
	if len(roles) > 0 {
		mws = append(mws, RequireRole(roles...))
	}
	e.GET("/whoami", func(c echo.Context) error {
		a, _ := ActorFrom(c)
		return c.JSON(http.StatusOK, map[string]string{"id": a.ID, "role": string(a.Role)})
	}, mws...)
	return e
}

func get(e *echo.Echo, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestJWTSetsActor(t *testing.T) {
	e := newAuthServer()
	sub := strings.Repeat("a", 32)

	rec := get(e, signToken(t, testSecret, sub, user.RoleBorrower, time.Hour))
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d, body = %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), sub) {
		t.Fatalf("actor id missing from %s", rec.Body.String())
	}
}

func TestJWTRejectsBadTokens(t *testing.T) {
	e := newAuthServer()
	sub := strings.Repeat("a", 32)

	cases := []struct {
		name  string
		token string
	}{
		{"missing", ""},
		{"garbage", "not.a.jwt"},
		{"wrong secret", signToken(t, "other-secret", sub, user.RoleBorrower, time.Hour)},
		{"expired", signToken(t, testSecret, sub, user.RoleBorrower, -time.Hour)},
		{"unknown role", signToken(t, testSecret, sub, user.Role("admin"), time.Hour)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if rec := get(e, tc.token); rec.Code != http.StatusUnauthorized {
				t.Fatalf("code = %d, want 401", rec.Code)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	e := newAuthServer(user.RoleManager)
	sub := strings.Repeat("a", 32)

	if rec := get(e, signToken(t, testSecret, sub, user.RoleBorrower, time.Hour)); rec.Code != http.StatusForbidden {
		t.Fatalf("borrower on manager route code = %d, want 403", rec.Code)
	}
	if rec := get(e, signToken(t, testSecret, sub, user.RoleManager, time.Hour)); rec.Code != http.StatusOK {
		t.Fatalf("manager code = %d, want 200", rec.Code)
	}
}
