package get_slot_grid

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	getSlotGrid "github.com/m04kA/SMC-ArenaBooking/internal/usecase/get_slot_grid"
)

const (
	msgCourtNotSelected   = "Please select a court first"
	msgDateNotSelected    = "Please select a date first"
	msgBackendUnavailable = "Error loading time slots. Please try again."
)

type Handler struct {
	useCase   GetSlotGridUseCase
	presenter *handlers.Presenter
	logger    Logger
}

func NewHandler(useCase GetSlotGridUseCase, presenter *handlers.Presenter, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		presenter: presenter,
		logger:    logger,
	}
}

// Handle GET /api/v1/sessions/{sessionId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := handlers.SessionID(w, r)
	if !ok {
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlotGrid.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, getSlotGrid.ErrSessionNotFound):
			handlers.RespondNotFound(w, handlers.MsgSessionNotFound)
		case errors.Is(err, getSlotGrid.ErrCourtNotSelected):
			handlers.RespondUnprocessable(w, msgCourtNotSelected)
		case errors.Is(err, getSlotGrid.ErrDateNotSelected):
			handlers.RespondUnprocessable(w, msgDateNotSelected)
		case errors.Is(err, getSlotGrid.ErrBackendUnavailable):
			h.logger.Warn("GET /sessions/{id}/slots - Backend unavailable: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)
		default:
			h.logger.Error("GET /sessions/{id}/slots - Failed to load slots: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(h.presenter, result))
}
