package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	sq "github.com/Masterminds/squirrel"
	"github.com/ledgerly/ledger-api/internal/domain"
	"github.com/ledgerly/ledger-api/internal/platform/logger"
	"github.com/ledgerly/ledger-api/internal/store"
)

// EntryStore implements store.EntryStore on PostgreSQL.
type EntryStore struct {
	db  store.DBTX
	log *slog.Logger
}

// NewEntryStore creates a PostgreSQL implementation of store.EntryStore.
// The connection (or transaction) is managed by the caller.
func NewEntryStore(db store.DBTX, log *slog.Logger) *EntryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &EntryStore{
		db:  db,
		log: log.With(slog.String("component", "entry_store")),
	}
}

var _ store.EntryStore = (*EntryStore)(nil)

// Create implements store.EntryStore.Create.
// Returns store.ErrInvalidEntity if the owner does not exist.
func (s *EntryStore) Create(ctx context.Context, entry *domain.Entry) error {
	log := logger.FromContextOrDefault(ctx, s.log)

	query := `
		INSERT INTO entries (description, month, year, amount, type, status, user_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		entry.Description,
		entry.Month,
		entry.Year,
		entry.Amount,
		entry.Type,
		entry.Status,
		entry.UserID,
		entry.CreatedAt,
	).Scan(&entry.ID)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during entry creation",
				slog.Int64("user_id", entry.UserID))
			return fmt.Errorf("%w: user with ID %d not found",
				store.ErrInvalidEntity, entry.UserID)
		}
		log.Error("failed to create entry",
			slog.String("error", err.Error()),
			slog.Int64("user_id", entry.UserID))
		return MapError(err)
	}

	log.Info("entry created",
		slog.Int64("entry_id", entry.ID),
		slog.Int64("user_id", entry.UserID))
	return nil
}

// Update implements store.EntryStore.Update.
// Returns store.ErrEntryNotFound if the entry does not exist.
func (s *EntryStore) Update(ctx context.Context, entry *domain.Entry) error {
	log := logger.FromContextOrDefault(ctx, s.log)

	query := `
		UPDATE entries
		SET description = $1, month = $2, year = $3, amount = $4, type = $5, status = $6
		WHERE id = $7
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		entry.Description,
		entry.Month,
		entry.Year,
		entry.Amount,
		entry.Type,
		entry.Status,
		entry.ID,
	)
	if err != nil {
		log.Error("failed to update entry",
			slog.String("error", err.Error()),
			slog.Int64("entry_id", entry.ID))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrEntryNotFound); err != nil {
		return err
	}

	log.Info("entry updated",
		slog.Int64("entry_id", entry.ID),
		slog.String("status", string(entry.Status)))
	return nil
}

// Delete implements store.EntryStore.Delete.
// Returns store.ErrEntryNotFound if the entry does not exist.
func (s *EntryStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.log)

	result, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete entry",
			slog.String("error", err.Error()),
			slog.Int64("entry_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrEntryNotFound); err != nil {
		return err
	}

	log.Info("entry deleted", slog.Int64("entry_id", id))
	return nil
}

// GetByID implements store.EntryStore.GetByID.
func (s *EntryStore) GetByID(ctx context.Context, id int64) (*domain.Entry, error) {
	log := logger.FromContextOrDefault(ctx, s.log)

	query := `
		SELECT id, description, month, year, amount, type, status, user_id, created_at
		FROM entries
		WHERE id = $1
	`

	entry, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrEntryNotFound
		}
		log.Error("failed to get entry by ID",
			slog.String("error", err.Error()),
			slog.Int64("entry_id", id))
		return nil, MapError(err)
	}

	return entry, nil
}

// FindByFilter implements store.EntryStore.FindByFilter. The query is
// built with squirrel so each optional criterion contributes a predicate
// only when present; the owner is always part of the WHERE clause.
func (s *EntryStore) FindByFilter(ctx context.Context, filter store.EntryFilter) ([]*domain.Entry, error) {
	log := logger.FromContextOrDefault(ctx, s.log)

	builder := sq.
		Select("id", "description", "month", "year", "amount", "type", "status", "user_id", "created_at").
		From("entries").
		Where(sq.Eq{"user_id": filter.UserID}).
		PlaceholderFormat(sq.Dollar)

	if filter.Description != nil {
		builder = builder.Where(sq.ILike{"description": "%" + *filter.Description + "%"})
	}
	if filter.Month != nil {
		builder = builder.Where(sq.Eq{"month": *filter.Month})
	}
	if filter.Year != nil {
		builder = builder.Where(sq.Eq{"year": *filter.Year})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build entry search query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to search entries",
			slog.String("error", err.Error()),
			slog.Int64("user_id", filter.UserID))
		return nil, MapError(err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	entries := []*domain.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			log.Error("failed to scan entry row",
				slog.String("error", err.Error()))
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	log.Debug("entries found",
		slog.Int64("user_id", filter.UserID),
		slog.Int("count", len(entries)))
	return entries, nil
}

// WithTx implements store.EntryStore.WithTx.
func (s *EntryStore) WithTx(tx *sql.Tx) store.EntryStore {
	return &EntryStore{
		db:  tx,
		log: s.log,
	}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*domain.Entry, error) {
	var entry domain.Entry
	var entryType, status string

	err := row.Scan(
		&entry.ID,
		&entry.Description,
		&entry.Month,
		&entry.Year,
		&entry.Amount,
		&entryType,
		&status,
		&entry.UserID,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Type = domain.EntryType(entryType)
	entry.Status = domain.EntryStatus(status)
	return &entry, nil
}
