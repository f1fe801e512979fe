package select_range

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	selectRange "github.com/m04kA/SMC-ArenaBooking/internal/usecase/select_range"
)

const (
	msgInvalidRequestBody   = "Invalid request body"
	msgInvalidRange         = "The selected time range is outside the operating hours"
	msgCourtNotSelected     = "Please select a court first"
	msgDateNotSelected      = "Please select a date first"
	msgSlotUnavailable      = "Part of the selected time range is already booked"
	msgSubmissionInProgress = "Your booking is being submitted. Please wait."
)

type Handler struct {
	useCase   SelectRangeUseCase
	presenter *handlers.Presenter
	logger    Logger
}

func NewHandler(useCase SelectRangeUseCase, presenter *handlers.Presenter, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		presenter: presenter,
		logger:    logger,
	}
}

// Handle PUT /api/v1/sessions/{sessionId}/range
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := handlers.SessionID(w, r)
	if !ok {
		return
	}

	var req SelectRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/range - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, selectRange.ErrSessionNotFound):
			handlers.RespondNotFound(w, handlers.MsgSessionNotFound)
		case errors.Is(err, selectRange.ErrInvalidRange):
			handlers.RespondUnprocessable(w, msgInvalidRange)
		case errors.Is(err, selectRange.ErrCourtNotSelected):
			handlers.RespondUnprocessable(w, msgCourtNotSelected)
		case errors.Is(err, selectRange.ErrDateNotSelected):
			handlers.RespondUnprocessable(w, msgDateNotSelected)
		case errors.Is(err, selectRange.ErrSlotUnavailable):
			handlers.RespondUnprocessable(w, msgSlotUnavailable)
		case errors.Is(err, selectRange.ErrSubmissionInProgress):
			handlers.RespondConflict(w, msgSubmissionInProgress)
		default:
			h.logger.Error("PUT /sessions/{id}/range - Failed to select range: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.presenter.Session(result.Draft))
}
