package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/ledger-api/internal/domain"
	"github.com/ledgerly/ledger-api/internal/service"
	"github.com/ledgerly/ledger-api/internal/store"
)

func TestUserHandlerRegister(t *testing.T) {
	t.Run("valid registration returns 201 without the password", func(t *testing.T) {
		userSvc := newMockUserService()
		userSvc.createFn = func(ctx context.Context, name, email, password string) (*domain.User, error) {
			return &domain.User{ID: 1, Name: name, Email: email}, nil
		}
		handler := NewUserHandler(userSvc, &stubJWTService{token: "tok"}, nil)

		rec := doJSONRequest(t, http.HandlerFunc(handler.Register), http.MethodPost, "/api/users",
			`{"name":"Maria Silva","email":"maria@example.com","senha":"password123"}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var resp UserResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "maria@example.com", resp.Email)
		assert.NotContains(t, rec.Body.String(), "password123")
	})

	t.Run("duplicate email returns 400 with the exact message", func(t *testing.T) {
		userSvc := newMockUserService()
		userSvc.createFn = func(ctx context.Context, name, email, password string) (*domain.User, error) {
			return nil, domain.NewValidationError("email",
				"A user is already registered with this email.", store.ErrEmailExists)
		}
		handler := NewUserHandler(userSvc, &stubJWTService{token: "tok"}, nil)

		rec := doJSONRequest(t, http.HandlerFunc(handler.Register), http.MethodPost, "/api/users",
			`{"name":"Maria Silva","email":"maria@example.com","senha":"password123"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "A user is already registered with this email.",
			decodeErrorResponse(t, rec).Error)
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		handler := NewUserHandler(newMockUserService(), &stubJWTService{token: "tok"}, nil)

		rec := doJSONRequest(t, http.HandlerFunc(handler.Register), http.MethodPost, "/api/users",
			`{"name":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing fields fail request validation", func(t *testing.T) {
		handler := NewUserHandler(newMockUserService(), &stubJWTService{token: "tok"}, nil)

		rec := doJSONRequest(t, http.HandlerFunc(handler.Register), http.MethodPost, "/api/users",
			`{"email":"maria@example.com"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandlerAuthenticate(t *testing.T) {
	t.Run("valid credentials return the user and a token", func(t *testing.T) {
		userSvc := newMockUserService()
		userSvc.authenticateFn = func(ctx context.Context, email, password string) (*domain.User, error) {
			return &domain.User{ID: 7, Name: "Maria Silva", Email: email}, nil
		}
		handler := NewUserHandler(userSvc, &stubJWTService{token: "signed-token"}, nil)

		rec := doJSONRequest(t, http.HandlerFunc(handler.Authenticate), http.MethodPost, "/api/users/autenticar",
			`{"email":"maria@example.com","senha":"password123"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp AuthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(7), resp.ID)
		assert.Equal(t, "signed-token", resp.Token)
	})

	t.Run("unknown email returns 400 with its own message", func(t *testing.T) {
		userSvc := newMockUserService()
		userSvc.authenticateFn = func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, service.ErrUnknownEmail
		}
		handler := NewUserHandler(userSvc, &stubJWTService{token: "tok"}, nil)

		rec := doJSONRequest(t, http.HandlerFunc(handler.Authenticate), http.MethodPost, "/api/users/autenticar",
			`{"email":"nobody@example.com","senha":"password123"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "User not found for the given email.", decodeErrorResponse(t, rec).Error)
	})

	t.Run("wrong password returns 400 with its own message", func(t *testing.T) {
		userSvc := newMockUserService()
		userSvc.authenticateFn = func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, service.ErrInvalidPassword
		}
		handler := NewUserHandler(userSvc, &stubJWTService{token: "tok"}, nil)

		rec := doJSONRequest(t, http.HandlerFunc(handler.Authenticate), http.MethodPost, "/api/users/autenticar",
			`{"email":"maria@example.com","senha":"wrongpass"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid password.", decodeErrorResponse(t, rec).Error)
	})

	t.Run("store failure returns 500 without leaking details", func(t *testing.T) {
		userSvc := newMockUserService()
		userSvc.authenticateFn = func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, errors.New("pq: connection refused host=db password=secret")
		}
		handler := NewUserHandler(userSvc, &stubJWTService{token: "tok"}, nil)

		rec := doJSONRequest(t, http.HandlerFunc(handler.Authenticate), http.MethodPost, "/api/users/autenticar",
			`{"email":"maria@example.com","senha":"password123"}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password=secret")
	})

	t.Run("token generation failure returns 500", func(t *testing.T) {
		userSvc := newMockUserService()
		userSvc.authenticateFn = func(ctx context.Context, email, password string) (*domain.User, error) {
			return &domain.User{ID: 7, Email: email}, nil
		}
		handler := NewUserHandler(userSvc, &stubJWTService{err: errors.New("signing failed")}, nil)

		rec := doJSONRequest(t, http.HandlerFunc(handler.Authenticate), http.MethodPost, "/api/users/autenticar",
			`{"email":"maria@example.com","senha":"password123"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
