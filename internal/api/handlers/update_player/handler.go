package update_player

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/sessions"
)

const (
	msgInvalidRequestBody   = "Invalid request body"
	msgInvalidName          = "Name must be between 2 and 100 characters"
	msgInvalidPhone         = "Please enter a valid phone number"
	msgInvalidEmail         = "Please enter a valid email address"
	msgInvalidPlayerCount   = "Please select a valid number of players"
	msgSpecialRequests      = "Special requests must be at most 500 characters"
	msgSubmissionInProgress = "Your booking is being submitted. Please wait."
)

type Handler struct {
	service   SessionService
	presenter *handlers.Presenter
	logger    Logger
}

func NewHandler(service SessionService, presenter *handlers.Presenter, logger Logger) *Handler {
	return &Handler{
		service:   service,
		presenter: presenter,
		logger:    logger,
	}
}

// Handle PUT /api/v1/sessions/{sessionId}/player
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := handlers.SessionID(w, r)
	if !ok {
		return
	}

	var req UpdatePlayerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/player - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := h.service.UpdatePlayer(r.Context(), sessionID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			handlers.RespondNotFound(w, handlers.MsgSessionNotFound)
		case errors.Is(err, sessions.ErrInvalidName):
			handlers.RespondUnprocessable(w, msgInvalidName)
		case errors.Is(err, sessions.ErrInvalidPhone):
			handlers.RespondUnprocessable(w, msgInvalidPhone)
		case errors.Is(err, sessions.ErrInvalidEmail):
			handlers.RespondUnprocessable(w, msgInvalidEmail)
		case errors.Is(err, sessions.ErrInvalidPlayerCount):
			handlers.RespondUnprocessable(w, msgInvalidPlayerCount)
		case errors.Is(err, sessions.ErrSpecialRequestsTooLong):
			handlers.RespondUnprocessable(w, msgSpecialRequests)
		case errors.Is(err, sessions.ErrSubmissionInProgress):
			handlers.RespondConflict(w, msgSubmissionInProgress)
		default:
			h.logger.Error("PUT /sessions/{id}/player - Failed to update player: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.presenter.Session(draft))
}
