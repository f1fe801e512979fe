package select_court

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/sessions"
)

const (
	msgInvalidRequestBody   = "Invalid request body"
	msgUnknownSport         = "Unknown sport"
	msgUnknownCourt         = "Unknown court for the selected sport"
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

// Handle PUT /api/v1/sessions/{sessionId}/court
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := handlers.SessionID(w, r)
	if !ok {
		return
	}

	var req SelectCourtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/court - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := h.service.SelectCourt(r.Context(), sessionID, req.Sport, req.CourtID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			handlers.RespondNotFound(w, handlers.MsgSessionNotFound)
		case errors.Is(err, sessions.ErrUnknownSport):
			handlers.RespondUnprocessable(w, msgUnknownSport)
		case errors.Is(err, sessions.ErrUnknownCourt):
			handlers.RespondUnprocessable(w, msgUnknownCourt)
		case errors.Is(err, sessions.ErrSubmissionInProgress):
			handlers.RespondConflict(w, msgSubmissionInProgress)
		default:
			h.logger.Error("PUT /sessions/{id}/court - Failed to select court: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /sessions/{id}/court - Court selected: session_id=%s, court=%s", sessionID, draft.CourtID)
	handlers.RespondJSON(w, http.StatusOK, h.presenter.Session(draft))
}
