package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ledgerly/ledger-api/internal/domain"
	"github.com/ledgerly/ledger-api/internal/store"
)

// EntryService provides the operations on financial entries. Every write
// path validates first; the store is never touched when validation or a
// precondition fails.
type EntryService interface {
	// Search returns the entries matching every non-nil filter field,
	// scoped to the filter's owner. Result order is store-defined.
	Search(ctx context.Context, filter store.EntryFilter) ([]*domain.Entry, error)

	// GetByID retrieves an entry by its ID.
	// Returns store.ErrEntryNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Entry, error)

	// Save validates and persists a new entry, returning it with the
	// assigned identifier. Fails with a business-rule error when
	// validation fails; persistence is never invoked in that case.
	Save(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)

	// Update validates and persists changes to an already-saved entry.
	// Returns ErrEntryNotPersisted if the entry has no identifier.
	Update(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)

	// Delete removes an already-saved entry.
	// Returns ErrEntryNotPersisted if the entry has no identifier.
	Delete(ctx context.Context, entry *domain.Entry) error

	// UpdateStatus sets the entry's status and delegates to Update, so
	// the same validation and precondition rules apply. Any status may
	// transition to any other.
	UpdateStatus(ctx context.Context, entry *domain.Entry, status domain.EntryStatus) (*domain.Entry, error)
}

// entryService implements EntryService.
type entryService struct {
	entryStore store.EntryStore
	log        *slog.Logger
}

// NewEntryService creates an EntryService backed by the given store.
func NewEntryService(entryStore store.EntryStore, log *slog.Logger) (EntryService, error) {
	if entryStore == nil {
		return nil, fmt.Errorf("entryStore cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &entryService{
		entryStore: entryStore,
		log:        log.With(slog.String("component", "entry_service")),
	}, nil
}

// Search implements EntryService.Search.
func (s *entryService) Search(ctx context.Context, filter store.EntryFilter) ([]*domain.Entry, error) {
	entries, err := s.entryStore.FindByFilter(ctx, filter)
	if err != nil {
		s.log.Error("failed to search entries",
			"error", err,
			"user_id", filter.UserID)
		return nil, fmt.Errorf("failed to search entries: %w", err)
	}

	return entries, nil
}

// GetByID implements EntryService.GetByID.
func (s *entryService) GetByID(ctx context.Context, id int64) (*domain.Entry, error) {
	entry, err := s.entryStore.GetByID(ctx, id)
	if err != nil {
		if !store.IsNotFoundError(err) {
			s.log.Error("failed to retrieve entry",
				"error", err,
				"entry_id", id)
		}
		return nil, err
	}

	return entry, nil
}

// Save implements EntryService.Save.
func (s *entryService) Save(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	if err := entry.Validate(); err != nil {
		s.log.Debug("entry validation failed during save",
			"error", err,
			"user_id", entry.UserID)
		return nil, err
	}

	if err := s.entryStore.Create(ctx, entry); err != nil {
		s.log.Error("failed to save entry",
			"error", err,
			"user_id", entry.UserID)
		return nil, err
	}

	return entry, nil
}

// Update implements EntryService.Update.
func (s *entryService) Update(ctx context.Context, entry *domain.Entry) (*domain.Entry, error) {
	if entry.ID == 0 {
		return nil, ErrEntryNotPersisted
	}

	if err := entry.Validate(); err != nil {
		s.log.Debug("entry validation failed during update",
			"error", err,
			"entry_id", entry.ID)
		return nil, err
	}

	if err := s.entryStore.Update(ctx, entry); err != nil {
		if !store.IsNotFoundError(err) {
			s.log.Error("failed to update entry",
				"error", err,
				"entry_id", entry.ID)
		}
		return nil, err
	}

	return entry, nil
}

// Delete implements EntryService.Delete.
func (s *entryService) Delete(ctx context.Context, entry *domain.Entry) error {
	if entry.ID == 0 {
		return ErrEntryNotPersisted
	}

	if err := s.entryStore.Delete(ctx, entry.ID); err != nil {
		if !store.IsNotFoundError(err) {
			s.log.Error("failed to delete entry",
				"error", err,
				"entry_id", entry.ID)
		}
		return err
	}

	return nil
}

// UpdateStatus implements EntryService.UpdateStatus.
func (s *entryService) UpdateStatus(ctx context.Context, entry *domain.Entry, status domain.EntryStatus) (*domain.Entry, error) {
	entry.Status = status
	return s.Update(ctx, entry)
}
