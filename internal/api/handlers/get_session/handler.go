package get_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/sessions"
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

// Handle GET /api/v1/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := handlers.SessionID(w, r)
	if !ok {
		return
	}

	draft, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, sessions.ErrSessionNotFound) {
			handlers.RespondNotFound(w, handlers.MsgSessionNotFound)
			return
		}
		h.logger.Error("GET /sessions/{id} - Failed to get session: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.presenter.Session(draft))
}
