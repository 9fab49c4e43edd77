package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies an entry as money coming in or going out.
type EntryType string

// Possible entry types.
const (
	EntryTypeIncome  EntryType = "INCOME"
	EntryTypeExpense EntryType = "EXPENSE"
)

// EntryStatus is the lifecycle marker of an entry.
type EntryStatus string

// Possible entry statuses. New entries default to PENDING; transitions
// between statuses are unrestricted.
const (
	EntryStatusPending   EntryStatus = "PENDING"
	EntryStatusConfirmed EntryStatus = "CONFIRMED"
	EntryStatusCancelled EntryStatus = "CANCELLED"
)

// Validation errors for Entry. The messages are the exact strings
// surfaced to API callers, and Validate reports only the first failing
// check, so order matters.
var (
	ErrInvalidDescription = NewValidationError("description", "Provide a valid description.", nil)
	ErrInvalidMonth       = NewValidationError("month", "Provide a valid month.", nil)
	ErrInvalidYear        = NewValidationError("year", "Provide a valid year.", nil)
	ErrMissingUser        = NewValidationError("user", "Provide a user.", nil)
	ErrInvalidAmount      = NewValidationError("amount", "Provide a valid amount.", nil)
	ErrMissingEntryType   = NewValidationError("type", "Provide an entry type.", nil)
	ErrInvalidEntryStatus = NewValidationError("status", "Send a valid status.", nil)
)

// Entry represents a recorded financial transaction owned by a user.
// The numeric ID is assigned by the store on creation; a zero ID marks
// an entry that has not been persisted yet.
type Entry struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Amount      decimal.Decimal `json:"amount"`
	Type        EntryType       `json:"type"`
	Status      EntryStatus     `json:"status"`
	UserID      int64           `json:"user_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewEntry creates an Entry owned by the given user. The status defaults
// to PENDING when left empty. The entry is not validated here; callers go
// through the entry service, which validates before any persistence.
func NewEntry(userID int64, description string, month, year int, amount decimal.Decimal, entryType EntryType) *Entry {
	return &Entry{
		Description: description,
		Month:       month,
		Year:        year,
		Amount:      amount,
		Type:        entryType,
		Status:      EntryStatusPending,
		UserID:      userID,
		CreatedAt:   time.Now().UTC(),
	}
}

// Validate runs the ordered business-rule checks and returns the first
// violation. It has no side effects and never touches a store.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return ErrInvalidDescription
	}

	if e.Month < 1 || e.Month > 12 {
		return ErrInvalidMonth
	}

	// The year must have exactly four digits. Matches the schema's check
	// constraint, so a bad year never reaches the database.
	if e.Year < 1000 || e.Year > 9999 {
		return ErrInvalidYear
	}

	if e.UserID <= 0 {
		return ErrMissingUser
	}

	if !e.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	if e.Type != EntryTypeIncome && e.Type != EntryTypeExpense {
		return ErrMissingEntryType
	}

	return nil
}

// ParseEntryType converts an enum name into an EntryType. Unknown names
// fail with the missing-type business rule.
func ParseEntryType(name string) (EntryType, error) {
	switch EntryType(name) {
	case EntryTypeIncome, EntryTypeExpense:
		return EntryType(name), nil
	default:
		return "", ErrMissingEntryType
	}
}

// ParseEntryStatus converts an enum name into an EntryStatus. Unknown
// names fail with the invalid-status business rule.
func ParseEntryStatus(name string) (EntryStatus, error) {
	switch EntryStatus(name) {
	case EntryStatusPending, EntryStatusConfirmed, EntryStatusCancelled:
		return EntryStatus(name), nil
	default:
		return "", ErrInvalidEntryStatus
	}
}
