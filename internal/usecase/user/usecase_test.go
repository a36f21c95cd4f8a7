package user

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	domain "library-backend/internal/domain/user"
	"library-backend/internal/testutil/usermock"
)

func inMemoryRepo(store map[string]*domain.User) *usermock.Repo {
	return &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			if u, ok := store[email]; ok {
				return u, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, u *domain.User) error {
			store[u.Email] = u
			return nil
		},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	store := map[string]*domain.User{}
	uc := NewUsecase(inMemoryRepo(store), "secret", 24)

	out, err := uc.Register(context.Background(), RegisterInput{
		Email:    "Reader@Example.com",
		Password: "correct horse",
		Name:     "Reader",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if out.User.Role != string(domain.RoleBorrower) {
		t.Fatalf("role = %s, public registration must create borrowers", out.User.Role)
	}
	if _, ok := store["reader@example.com"]; !ok {
		t.Fatal("email must be stored lowercased")
	}
	if store["reader@example.com"].PasswordHash == "correct horse" {
		t.Fatal("password must be hashed")
	}

	// the issued token carries sub and role
	tok, err := jwt.Parse(out.Token, func(t *jwt.Token) (interface{}, error) { return []byte("secret"), nil })
	if err != nil || !tok.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["sub"] != out.User.UserID || claims["role"] != "borrower" {
		t.Fatalf("claims = %+v", claims)
	}

	if _, err := uc.Register(context.Background(), RegisterInput{Email: "reader@example.com", Password: "another pass", Name: "Dup"}); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("duplicate email err = %v, want ErrEmailTaken", err)
	}

	if _, err := uc.Login(context.Background(), LoginInput{Email: "reader@example.com", Password: "correct horse"}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := uc.Login(context.Background(), LoginInput{Email: "reader@example.com", Password: "wrong"}); !errors.Is(err, domain.ErrInvalidCreds) {
		t.Fatalf("wrong password err = %v, want ErrInvalidCreds", err)
	}
	if _, err := uc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "x"}); !errors.Is(err, domain.ErrInvalidCreds) {
		t.Fatalf("unknown email err = %v, want ErrInvalidCreds", err)
	}
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	uc := NewUsecase(inMemoryRepo(map[string]*domain.User{}), "secret", 24)

	cases := []RegisterInput{
		{Email: "", Password: "longenough", Name: "X"},
		{Email: "a@b.c", Password: "short", Name: "X"},
		{Email: "a@b.c", Password: "longenough", Name: ""},
	}
	for _, in := range cases {
		if _, err := uc.Register(context.Background(), in); err == nil {
			t.Fatalf("input %+v must be rejected", in)
		}
	}
}
