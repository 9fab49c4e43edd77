package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/ledger-api/internal/api/shared"
	"github.com/ledgerly/ledger-api/internal/service/auth"
)

type stubJWTService struct {
	claims *auth.Claims
	err    error
}

func (s *stubJWTService) GenerateToken(ctx context.Context, userID int64) (string, error) {
	return "", errors.New("not used")
}

func (s *stubJWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

func runAuthenticated(t *testing.T, jwtService auth.JWTService, header string) (*httptest.ResponseRecorder, int64, bool) {
	t.Helper()

	var gotUserID int64
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = shared.UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/entries?usuario=1", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()

	NewAuthMiddleware(jwtService).Authenticate(next).ServeHTTP(rec, req)
	return rec, gotUserID, gotOK
}

func TestAuthenticate(t *testing.T) {
	t.Run("valid token passes the user ID downstream", func(t *testing.T) {
		svc := &stubJWTService{claims: &auth.Claims{UserID: 42}}

		rec, userID, ok := runAuthenticated(t, svc, "Bearer good-token")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, ok)
		assert.Equal(t, int64(42), userID)
	})

	t.Run("missing header returns 401", func(t *testing.T) {
		rec, _, ok := runAuthenticated(t, &stubJWTService{}, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, ok)
	})

	t.Run("malformed header returns 401", func(t *testing.T) {
		for _, header := range []string{"good-token", "Basic abc", "Bearer a b"} {
			rec, _, _ := runAuthenticated(t, &stubJWTService{}, header)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
		}
	})

	t.Run("invalid token returns 401", func(t *testing.T) {
		rec, _, _ := runAuthenticated(t, &stubJWTService{err: auth.ErrInvalidToken}, "Bearer bad")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token returns 401", func(t *testing.T) {
		rec, _, _ := runAuthenticated(t, &stubJWTService{err: auth.ErrExpiredToken}, "Bearer old")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unexpected validation failure returns 500", func(t *testing.T) {
		rec, _, _ := runAuthenticated(t, &stubJWTService{err: errors.New("key store down")}, "Bearer tok")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
