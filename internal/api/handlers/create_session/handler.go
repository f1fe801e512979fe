package create_session

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgUnknownSport       = "Unknown sport"
	msgUnknownCourt       = "Unknown court for the selected sport"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	// пустое тело допустимо: корт выбирается позже
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrUnknownSport):
			handlers.RespondUnprocessable(w, msgUnknownSport)
		case errors.Is(err, sessions.ErrUnknownCourt):
			handlers.RespondUnprocessable(w, msgUnknownCourt)
		default:
			h.logger.Error("POST /sessions - Failed to create session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session created: session_id=%s", draft.ID)
	handlers.RespondJSON(w, http.StatusCreated, h.presenter.Session(draft))
}
