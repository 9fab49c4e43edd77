package api

import (
	"github.com/ledgerly/ledger-api/internal/domain"
	"github.com/shopspring/decimal"
)

// RegisterUserRequest is the payload for user registration. The password
// field keeps the legacy wire name "senha".
type RegisterUserRequest struct {
	Name     string `json:"name"  validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required,min=8,max=72"`
}

// LoginRequest is the payload for the authentication endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"senha" validate:"required,min=1"`
}

// UserResponse is the user representation returned by the API. The
// password is never echoed in any form.
type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthResponse is the successful login payload: the authenticated user
// plus a bearer token for the entry endpoints.
type AuthResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// EntryRequest is the payload for creating or updating an entry.
type EntryRequest struct {
	Description string          `json:"description"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	UserID      int64           `json:"user"`
}

// UpdateStatusRequest is the payload for the status transition endpoint.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// EntryResponse is the entry representation returned by the API.
type EntryResponse struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
	UserID      int64           `json:"user"`
}

// userToResponse converts a domain.User to its API representation.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

// entryToResponse converts a domain.Entry to its API representation.
func entryToResponse(entry *domain.Entry) EntryResponse {
	return EntryResponse{
		ID:          entry.ID,
		Description: entry.Description,
		Month:       entry.Month,
		Year:        entry.Year,
		Amount:      entry.Amount,
		Type:        string(entry.Type),
		Status:      string(entry.Status),
		UserID:      entry.UserID,
	}
}

// entriesToResponse converts a slice of entries.
func entriesToResponse(entries []*domain.Entry) []EntryResponse {
	out := make([]EntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entryToResponse(entry))
	}
	return out
}
