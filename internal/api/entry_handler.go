package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ledgerly/ledger-api/internal/api/shared"
	"github.com/ledgerly/ledger-api/internal/domain"
	"github.com/ledgerly/ledger-api/internal/platform/logger"
	"github.com/ledgerly/ledger-api/internal/service"
	"github.com/ledgerly/ledger-api/internal/store"
)

// Messages surfaced by the entry endpoints.
const (
	msgEntryNotFound   = "Entry not found."
	msgUserNotFound    = "User not found."
	msgSearchUserGone  = "Could not perform the search. User not found."
	msgInvalidEntryID  = "Invalid entry ID."
	msgInvalidStatus   = "Send a valid status."
	msgInvalidRequest  = "Invalid request format"
	msgMissingSearchID = "Provide a user."
)

// EntryHandler handles financial entry HTTP requests.
type EntryHandler struct {
	entryService service.EntryService
	userService  service.UserService
	log          *slog.Logger
}

// NewEntryHandler creates an EntryHandler with the given dependencies.
func NewEntryHandler(
	entryService service.EntryService,
	userService service.UserService,
	log *slog.Logger,
) *EntryHandler {
	if log == nil {
		log = slog.Default()
	}

	return &EntryHandler{
		entryService: entryService,
		userService:  userService,
		log:          log.With(slog.String("component", "entry_handler")),
	}
}

// Search handles GET /api/entries. The owner (usuario) is mandatory and
// must resolve to an existing user; description, month and ano are
// optional criteria combined with AND semantics.
func (h *EntryHandler) Search(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.log)
	q := r.URL.Query()

	userID, err := strconv.ParseInt(q.Get("usuario"), 10, 64)
	if err != nil || userID <= 0 {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgMissingSearchID)
		return
	}

	if _, err := h.userService.GetByID(r.Context(), userID); err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusBadRequest, msgSearchUserGone)
			return
		}
		HandleServiceError(w, r, err)
		return
	}

	filter := store.EntryFilter{UserID: userID}
	if desc := q.Get("description"); desc != "" {
		filter.Description = &desc
	}
	if raw := q.Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, domain.ErrInvalidMonth.Error())
			return
		}
		filter.Month = &month
	}
	if raw := q.Get("ano"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, domain.ErrInvalidYear.Error())
			return
		}
		filter.Year = &year
	}

	entries, err := h.entryService.Search(r.Context(), filter)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	log.Debug("entry search completed",
		slog.Int64("user_id", userID),
		slog.Int("count", len(entries)))
	shared.RespondWithJSON(w, r, http.StatusOK, entriesToResponse(entries))
}

// Get handles GET /api/entries/{id}.
func (h *EntryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.entryService.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusNotFound, msgEntryNotFound)
			return
		}
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, entryToResponse(entry))
}

// Create handles POST /api/entries.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req EntryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	entry, err := h.entryFromRequest(r, &req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	saved, err := h.entryService.Save(r.Context(), entry)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, entryToResponse(saved))
}

// Update handles PUT /api/entries/{id}. An unknown entry is a 400, per
// the endpoint contract.
func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	existing, err := h.entryService.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusBadRequest, msgEntryNotFound)
			return
		}
		HandleServiceError(w, r, err)
		return
	}

	var req EntryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	entry, err := h.entryFromRequest(r, &req)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}
	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt
	if req.Status == "" {
		entry.Status = existing.Status
	}

	updated, err := h.entryService.Update(r.Context(), entry)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, entryToResponse(updated))
}

// UpdateStatus handles PUT /api/entries/{id}/status.
func (h *EntryHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.entryService.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusBadRequest, msgEntryNotFound)
			return
		}
		HandleServiceError(w, r, err)
		return
	}

	var req UpdateStatusRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidRequest)
		return
	}

	status, err := domain.ParseEntryStatus(req.Status)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidStatus)
		return
	}

	updated, err := h.entryService.UpdateStatus(r.Context(), entry, status)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, entryToResponse(updated))
}

// Delete handles DELETE /api/entries/{id}. An unknown entry is a 400,
// per the endpoint contract.
func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.entryService.GetByID(r.Context(), id)
	if err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondWithError(w, r, http.StatusBadRequest, msgEntryNotFound)
			return
		}
		HandleServiceError(w, r, err)
		return
	}

	if err := h.entryService.Delete(r.Context(), entry); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// entryFromRequest builds a domain entry from the DTO, resolving the
// owner and the enum names. An unknown owner or enum name is a
// business-rule failure.
func (h *EntryHandler) entryFromRequest(r *http.Request, req *EntryRequest) (*domain.Entry, error) {
	entry := &domain.Entry{
		Description: req.Description,
		Month:       req.Month,
		Year:        req.Year,
		Amount:      req.Amount,
	}

	if req.UserID != 0 {
		user, err := h.userService.GetByID(r.Context(), req.UserID)
		if err != nil {
			if store.IsNotFoundError(err) {
				return nil, domain.NewValidationError("user", msgUserNotFound, err)
			}
			return nil, err
		}
		entry.UserID = user.ID
	}

	if req.Type != "" {
		entryType, err := domain.ParseEntryType(req.Type)
		if err != nil {
			return nil, err
		}
		entry.Type = entryType
	}

	entry.Status = domain.EntryStatusPending
	if req.Status != "" {
		status, err := domain.ParseEntryStatus(req.Status)
		if err != nil {
			return nil, err
		}
		entry.Status = status
	}

	return entry, nil
}

// pathID extracts the numeric {id} path parameter, writing a 400 when it
// is missing or malformed.
func (h *EntryHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		h.log.Warn("invalid entry ID in path", slog.String("value", raw))
		shared.RespondWithError(w, r, http.StatusBadRequest, msgInvalidEntryID)
		return 0, false
	}
	return id, true
}
