package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hienle2703/shop-order-service/internal/entities"
	"github.com/hienle2703/shop-order-service/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

type userKey struct{}

func ContextWithUser(ctx context.Context, user entities.AuthUser) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

func UserFromContext(ctx context.Context) (entities.AuthUser, bool) {
	user, ok := ctx.Value(userKey{}).(entities.AuthUser)
	return user, ok
}

type authClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTAuth verifies the session token issued elsewhere and puts the verified
// identity into the request context. It never issues tokens.
type JWTAuth struct {
	secret []byte
}

func NewJWTAuth(secret string) *JWTAuth {
	return &JWTAuth{secret: []byte(secret)}
}

func (a *JWTAuth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie("token")
		if err != nil {
			utils.WriteError(w, "not logged in", http.StatusUnauthorized)
			return
		}

		user, err := a.verify(cookie.Value)
		if err != nil {
			utils.WriteError(w, "not logged in", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
	})
}

func (a *JWTAuth) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			utils.WriteError(w, "not logged in", http.StatusUnauthorized)
			return
		}
		if !user.IsAdmin {
			utils.WriteError(w, "only admin allowed", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *JWTAuth) verify(token string) (entities.AuthUser, error) {
	claims := new(authClaims)
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return entities.AuthUser{}, err
	}
	if !parsed.Valid || claims.Subject == "" {
		return entities.AuthUser{}, jwt.ErrTokenInvalidClaims
	}

	return entities.AuthUser{
		ID:      claims.Subject,
		IsAdmin: claims.Role == "admin",
	}, nil
}
