package user

import (
	"context"
	"errors"
	"strings"
	"time"

	domain "library-backend/internal/domain/user"
	"library-backend/pkg/id"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Usecase struct {
	repo     domain.Repository
	secret   string
	ttlHours int
}

func NewUsecase(repo domain.Repository, jwtSecret string, ttlHours int) *Usecase {
	return &Usecase{repo: repo, secret: jwtSecret, ttlHours: ttlHours}
}

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserDTO struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type AuthDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// Register creates a borrower account. Managers are provisioned out of
// band, never through the public endpoint.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*AuthDTO, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || len(in.Password) < 8 || in.Name == "" {
		return nil, errors.New("invalid input")
	}

	if _, err := u.repo.GetByEmail(ctx, email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usr := &domain.User{
		UserID:       id.NewID32(),
		Email:        email,
		PasswordHash: string(hashed),
		Name:         in.Name,
		Role:         domain.RoleBorrower,
	}
	if err := u.repo.Create(ctx, usr); err != nil {
		return nil, err
	}

	token, err := u.issue(usr)
	if err != nil {
		return nil, err
	}
	return &AuthDTO{Token: token, User: *toDTO(usr)}, nil
}

func (u *Usecase) Login(ctx context.Context, in LoginInput) (*AuthDTO, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	usr, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCreds
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)) != nil {
		return nil, domain.ErrInvalidCreds
	}

	token, err := u.issue(usr)
	if err != nil {
		return nil, err
	}
	return &AuthDTO{Token: token, User: *toDTO(usr)}, nil
}

func (u *Usecase) Get(ctx context.Context, userID string) (*UserDTO, error) {
	usr, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(usr), nil
}

// List pages through accounts for the manager console.
func (u *Usecase) List(ctx context.Context, page, pageSize int) ([]UserDTO, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	users, total, err := u.repo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, err
	}
	out := make([]UserDTO, 0, len(users))
	for i := range users {
		out = append(out, *toDTO(&users[i]))
	}
	return out, total, nil
}

func (u *Usecase) issue(usr *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  usr.UserID,
		"role": string(usr.Role),
		"exp":  time.Now().Add(time.Duration(u.ttlHours) * time.Hour).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(u.secret))
}

func toDTO(usr *domain.User) *UserDTO {
	return &UserDTO{
		UserID:    usr.UserID,
		Email:     usr.Email,
		Name:      usr.Name,
		Role:      string(usr.Role),
		CreatedAt: usr.CreatedAt,
	}
}
