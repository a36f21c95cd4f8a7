package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"library-backend/internal/domain/user"
)

const actorKey = "auth.actor"

// Actor is the authenticated principal a transition runs as. It is set
// by the JWT middleware and passed explicitly into usecase inputs —
// handlers never consult ambient session state.
type Actor struct {
	ID   string
	Role user.Role
}

func ActorFrom(c echo.Context) (Actor, bool) {
	a, ok := c.Get(actorKey).(Actor)
	return a, ok
}

// SetActor exists for handler tests that bypass the JWT middleware.
func SetActor(c echo.Context, a Actor) { c.Set(actorKey, a) }

// JWT verifies the Bearer token and stores the actor on the context.
func JWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := parseAuth(c.Request().Header.Get("Authorization"), secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
			}
			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

// RequireRole gates a route group to the given roles; must run after JWT.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := ActorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing authentication"})
			}
			for _, r := range roles {
				if actor.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient role"})
		}
	}
}

func parseAuth(authHeader, secret string) (Actor, error) {
	tokenStr := strings.TrimSpace(authHeader)
	if tokenStr == "" {
		return Actor{}, errors.New("missing authorization")
	}
	if strings.HasPrefix(strings.ToLower(tokenStr), "bearer ") {
		tokenStr = strings.TrimSpace(tokenStr[7:])
	}
	if tokenStr == "" {
		return Actor{}, errors.New("missing token")
	}

	tok, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return Actor{}, err
	}
	if !tok.Valid {
		return Actor{}, errors.New("invalid token")
	}

	mc, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Actor{}, errors.New("invalid claims")
	}
	sub, _ := mc["sub"].(string)
	roleStr, _ := mc["role"].(string)
	if sub == "" || roleStr == "" {
		return Actor{}, errors.New("token missing subject or role")
	}
	role := user.Role(roleStr)
	if role != user.RoleBorrower && role != user.RoleManager {
		return Actor{}, fmt.Errorf("unknown role %q", roleStr)
	}
	return Actor{ID: sub, Role: role}, nil
}
