package remove_promo

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/sessions"
)

const msgSubmissionInProgress = "Your booking is being submitted. Please wait."

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

// Handle DELETE /api/v1/sessions/{sessionId}/promo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := handlers.SessionID(w, r)
	if !ok {
		return
	}

	draft, err := h.service.RemovePromo(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			handlers.RespondNotFound(w, handlers.MsgSessionNotFound)
		case errors.Is(err, sessions.ErrSubmissionInProgress):
			handlers.RespondConflict(w, msgSubmissionInProgress)
		default:
			h.logger.Error("DELETE /sessions/{id}/promo - Failed to remove promo code: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.presenter.Session(draft))
}
