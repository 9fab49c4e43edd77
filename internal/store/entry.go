package store

import (
	"context"
	"database/sql"

	"github.com/ledgerly/ledger-api/internal/domain"
)

// EntryFilter carries the optional search criteria for entries. Nil
// fields are ignored; the owning user is always mandatory.
type EntryFilter struct {
	Description *string
	Month       *int
	Year        *int
	UserID      int64
}

// EntryStore defines the interface for financial entry persistence.
type EntryStore interface {
	// Create saves a new entry and assigns its ID.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, entry *domain.Entry) error

	// Update saves changes to an existing entry.
	// Returns ErrEntryNotFound if the entry does not exist.
	Update(ctx context.Context, entry *domain.Entry) error

	// Delete removes an entry by its ID.
	// Returns ErrEntryNotFound if the entry does not exist.
	Delete(ctx context.Context, id int64) error

	// GetByID retrieves an entry by its unique ID.
	// Returns ErrEntryNotFound if the entry does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Entry, error)

	// FindByFilter retrieves the entries matching every non-nil filter
	// field, scoped to the filter's owner. The description matches as a
	// case-insensitive substring. Result order is not part of the
	// contract. Returns an empty slice when nothing matches.
	FindByFilter(ctx context.Context, filter EntryFilter) ([]*domain.Entry, error)

	// WithTx returns an EntryStore bound to the provided transaction.
	// The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) EntryStore
}
