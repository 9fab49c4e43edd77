package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/ledgerly/ledger-api/internal/api/shared"
	"github.com/ledgerly/ledger-api/internal/domain"
	"github.com/ledgerly/ledger-api/internal/service/auth"
	"github.com/ledgerly/ledger-api/internal/store"
)

// mockUserService serves the handlers with canned users.
type mockUserService struct {
	users map[int64]*domain.User

	authenticateFn func(ctx context.Context, email, password string) (*domain.User, error)
	createFn       func(ctx context.Context, name, email, password string) (*domain.User, error)
}

func newMockUserService(users ...*domain.User) *mockUserService {
	m := &mockUserService{users: make(map[int64]*domain.User)}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	return m.authenticateFn(ctx, email, password)
}

func (m *mockUserService) Create(ctx context.Context, name, email, password string) (*domain.User, error) {
	return m.createFn(ctx, name, email, password)
}

func (m *mockUserService) ValidateEmailUnique(ctx context.Context, email string) error {
	return nil
}

func (m *mockUserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

// mockEntryService serves the handlers with canned entries.
type mockEntryService struct {
	entries map[int64]*domain.Entry

	searchFn func(ctx context.Context, filter store.EntryFilter) ([]*domain.Entry, error)
	saveFn   func(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	updateFn func(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	deleteFn func(ctx context.Context, entry *domain.Entry) error
}

func newMockEntryService(entries ...*domain.Entry) *mockEntryService {
	m := &mockEntryService{entries: make(map[int64]*domain.Entry)}
	for _, e := range entries {
		m.entries[e.ID] = e
	}
	return m
}

func (m *mockEntryService) Search(ctx context.Context, filter store.EntryFilter) ([]*domain.Entry, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, filter)
	}
	out := make([]*domain.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		out = append(out, e)
	}
	return out, nil
}

func (m *mockEntryService) GetByID(ctx context.Context, id int64) (*domain.Entry, error) {
	entry, ok := m.entries[id]
	if !ok {
		return nil, store.ErrEntryNotFound
	}
	return entry, nil
}

func (m *mockEntryService) Save(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, entry)
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	entry.ID = int64(len(m.entries) + 1)
	m.entries[entry.ID] = entry
	return entry, nil
}

func (m *mockEntryService) Update(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, entry)
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	m.entries[entry.ID] = entry
	return entry, nil
}

func (m *mockEntryService) Delete(ctx context.Context, entry *domain.Entry) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, entry)
	}
	delete(m.entries, entry.ID)
	return nil
}

func (m *mockEntryService) UpdateStatus(ctx context.Context, entry *domain.Entry, status domain.EntryStatus) (*domain.Entry, error) {
	entry.Status = status
	return m.Update(ctx, entry)
}

// stubJWTService issues a fixed token.
type stubJWTService struct {
	token string
	err   error
}

func (s *stubJWTService) GenerateToken(ctx context.Context, userID int64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.token, nil
}

func (s *stubJWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	return nil, auth.ErrInvalidToken
}

// newEntryRouter mounts the handler on the routes the server uses, so
// chi's URL parameters resolve in tests.
func newEntryRouter(h *EntryHandler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/entries", h.Search)
	r.Post("/api/entries", h.Create)
	r.Get("/api/entries/{id}", h.Get)
	r.Put("/api/entries/{id}", h.Update)
	r.Put("/api/entries/{id}/status", h.UpdateStatus)
	r.Delete("/api/entries/{id}", h.Delete)
	return r
}

func doJSONRequest(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) shared.ErrorResponse {
	t.Helper()

	var resp shared.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}
