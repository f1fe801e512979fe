package change_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	changeDate "github.com/m04kA/SMC-ArenaBooking/internal/usecase/change_date"
)

const (
	msgInvalidRequestBody   = "Invalid request body"
	msgInvalidDate          = "Invalid date, expected YYYY-MM-DD"
	msgDateInPast           = "Please select today or a future date"
	msgDateTooFar           = "This date is too far in the future"
	msgSubmissionInProgress = "Your booking is being submitted. Please wait."
)

type Handler struct {
	useCase   ChangeDateUseCase
	presenter *handlers.Presenter
	logger    Logger
}

func NewHandler(useCase ChangeDateUseCase, presenter *handlers.Presenter, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		presenter: presenter,
		logger:    logger,
	}
}

// Handle PUT /api/v1/sessions/{sessionId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := handlers.SessionID(w, r)
	if !ok {
		return
	}

	var req ChangeDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, changeDate.ErrSessionNotFound):
			handlers.RespondNotFound(w, handlers.MsgSessionNotFound)
		case errors.Is(err, changeDate.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, changeDate.ErrDateInPast):
			handlers.RespondUnprocessable(w, msgDateInPast)
		case errors.Is(err, changeDate.ErrDateTooFarInFuture):
			handlers.RespondUnprocessable(w, msgDateTooFar)
		case errors.Is(err, changeDate.ErrSubmissionInProgress):
			handlers.RespondConflict(w, msgSubmissionInProgress)
		default:
			h.logger.Error("PUT /sessions/{id}/date - Failed to change date: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(h.presenter, result))
}
