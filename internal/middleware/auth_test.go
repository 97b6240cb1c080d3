package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hienle2703/shop-order-service/internal/entities"
	"github.com/hienle2703/shop-order-service/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, subject, role string, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestJWTAuth_RequireAuth(t *testing.T) {
	testCases := []struct {
		name       string
		cookie     *http.Cookie
		wantStatus int
		wantUser   *entities.AuthUser
	}{
		{
			name: "valid user token",
			cookie: &http.Cookie{
				Name:  "token",
				Value: signToken(t, testSecret, "user-1", "user", time.Now().Add(time.Hour)),
			},
			wantStatus: http.StatusOK,
			wantUser:   &entities.AuthUser{ID: "user-1", IsAdmin: false},
		},
		{
			name: "valid admin token",
			cookie: &http.Cookie{
				Name:  "token",
				Value: signToken(t, testSecret, "admin-1", "admin", time.Now().Add(time.Hour)),
			},
			wantStatus: http.StatusOK,
			wantUser:   &entities.AuthUser{ID: "admin-1", IsAdmin: true},
		},
		{
			name:       "no cookie",
			cookie:     nil,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "wrong secret",
			cookie: &http.Cookie{
				Name:  "token",
				Value: signToken(t, "other-secret", "user-1", "user", time.Now().Add(time.Hour)),
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "expired token",
			cookie: &http.Cookie{
				Name:  "token",
				Value: signToken(t, testSecret, "user-1", "user", time.Now().Add(-time.Hour)),
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "missing subject",
			cookie: &http.Cookie{
				Name:  "token",
				Value: signToken(t, testSecret, "", "user", time.Now().Add(time.Hour)),
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			cookie:     &http.Cookie{Name: "token", Value: "not.a.jwt"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			auth := middleware.NewJWTAuth(testSecret)

			var gotUser *entities.AuthUser
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if user, ok := middleware.UserFromContext(r.Context()); ok {
					gotUser = &user
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.cookie != nil {
				req.AddCookie(tc.cookie)
			}
			rr := httptest.NewRecorder()

			auth.RequireAuth(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
			if tc.wantUser != nil {
				require.NotNil(t, gotUser)
				assert.Equal(t, *tc.wantUser, *gotUser)
			} else {
				assert.Nil(t, gotUser)
			}
		})
	}
}

func TestJWTAuth_RequireAdmin(t *testing.T) {
	testCases := []struct {
		name       string
		user       *entities.AuthUser
		wantStatus int
	}{
		{
			name:       "admin passes",
			user:       &entities.AuthUser{ID: "admin-1", IsAdmin: true},
			wantStatus: http.StatusOK,
		},
		{
			name:       "regular user forbidden",
			user:       &entities.AuthUser{ID: "user-1", IsAdmin: false},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no identity in context",
			user:       nil,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			auth := middleware.NewJWTAuth(testSecret)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.user != nil {
				req = req.WithContext(middleware.ContextWithUser(req.Context(), *tc.user))
			}
			rr := httptest.NewRecorder()

			auth.RequireAdmin(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantStatus, rr.Code)
		})
	}
}
