package discard_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/sessions"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := handlers.SessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.Discard(r.Context(), sessionID); err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			handlers.RespondNotFound(w, handlers.MsgSessionNotFound)
			return
		}
		h.logger.Error("DELETE /sessions/{id} - Failed to discard session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /sessions/{id} - Session discarded: session_id=%s", sessionID)
	w.WriteHeader(http.StatusNoContent)
}
