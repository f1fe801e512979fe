package toggle_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	toggleSlot "github.com/m04kA/SMC-ArenaBooking/internal/usecase/toggle_slot"
)

const (
	msgInvalidSlot          = "Invalid time slot"
	msgCourtNotSelected     = "Please select a court first"
	msgDateNotSelected      = "Please select a date first"
	msgNotConsecutive       = "Please select consecutive time slots only. You can extend your current selection or start a new consecutive block."
	msgBreaksContiguity     = "You cannot deselect this slot as it would break the consecutive booking requirement. Please deselect from the ends only."
	msgSlotUnavailable      = "This time slot is already booked"
	msgSubmissionInProgress = "Your booking is being submitted. Please wait."
)

type Handler struct {
	useCase   ToggleSlotUseCase
	presenter *handlers.Presenter
	logger    Logger
}

func NewHandler(useCase ToggleSlotUseCase, presenter *handlers.Presenter, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		presenter: presenter,
		logger:    logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/slots/{index}/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := handlers.SessionID(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		h.logger.Warn("POST /sessions/{id}/slots/{index}/toggle - Invalid index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlot)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &toggleSlot.Request{SessionID: sessionID, Index: index})
	if err != nil {
		switch {
		case errors.Is(err, toggleSlot.ErrSessionNotFound):
			handlers.RespondNotFound(w, handlers.MsgSessionNotFound)
		case errors.Is(err, toggleSlot.ErrInvalidSlot):
			handlers.RespondBadRequest(w, msgInvalidSlot)
		case errors.Is(err, toggleSlot.ErrCourtNotSelected):
			handlers.RespondUnprocessable(w, msgCourtNotSelected)
		case errors.Is(err, toggleSlot.ErrDateNotSelected):
			handlers.RespondUnprocessable(w, msgDateNotSelected)
		case errors.Is(err, toggleSlot.ErrNotConsecutive):
			handlers.RespondUnprocessable(w, msgNotConsecutive)
		case errors.Is(err, toggleSlot.ErrBreaksContiguity):
			handlers.RespondUnprocessable(w, msgBreaksContiguity)
		case errors.Is(err, toggleSlot.ErrSlotUnavailable):
			handlers.RespondUnprocessable(w, msgSlotUnavailable)
		case errors.Is(err, toggleSlot.ErrSubmissionInProgress):
			handlers.RespondConflict(w, msgSubmissionInProgress)
		default:
			h.logger.Error("POST /sessions/{id}/slots/{index}/toggle - Failed to toggle slot: session_id=%s, index=%d, error=%v", sessionID, index, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(h.presenter, result))
}
