package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	confirmBooking "github.com/m04kA/SMC-ArenaBooking/internal/usecase/confirm_booking"
)

const (
	msgEmptySelection       = "Please select at least one time slot"
	msgBelowMinimum         = "Your selection is shorter than the minimum booking for this sport"
	msgPlayerIncomplete     = "Please enter your name and phone number"
	msgEmailRequired        = "Please enter a valid email address"
	msgPriceMissing         = "Price is not available yet. Please try again."
	msgSubmissionInProgress = "Your booking is being submitted. Please wait."
	msgConflict             = "Some of the selected slots are no longer available"
	msgRejected             = "Booking failed"
	msgBackend              = "Booking failed. Please try again."
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := handlers.SessionID(w, r)
	if !ok {
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrSessionNotFound):
			handlers.RespondNotFound(w, handlers.MsgSessionNotFound)
		case errors.Is(err, confirmBooking.ErrEmptySelection):
			handlers.RespondUnprocessable(w, msgEmptySelection)
		case errors.Is(err, confirmBooking.ErrBelowMinimum):
			handlers.RespondUnprocessable(w, msgBelowMinimum)
		case errors.Is(err, confirmBooking.ErrPlayerIncomplete):
			handlers.RespondUnprocessable(w, msgPlayerIncomplete)
		case errors.Is(err, confirmBooking.ErrEmailRequired):
			handlers.RespondUnprocessable(w, msgEmailRequired)
		case errors.Is(err, confirmBooking.ErrPriceMissing):
			handlers.RespondUnprocessable(w, msgPriceMissing)
		case errors.Is(err, confirmBooking.ErrSubmissionInProgress):
			handlers.RespondConflict(w, msgSubmissionInProgress)
		case errors.Is(err, confirmBooking.ErrConflict):
			handlers.RespondConflict(w, userMessage(err, msgConflict))
		case errors.Is(err, confirmBooking.ErrRejected):
			handlers.RespondConflict(w, userMessage(err, msgRejected))
		case errors.Is(err, confirmBooking.ErrBackend):
			h.logger.Warn("POST /sessions/{id}/confirm - Backend error: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadGateway(w, userMessage(err, msgBackend))
		default:
			h.logger.Error("POST /sessions/{id}/confirm - Failed to confirm booking: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/confirm - Booking created: session_id=%s, booking_id=%s", sessionID, result.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func userMessage(err error, fallback string) string {
	if msg, ok := confirmBooking.UserMessage(err); ok {
		return msg
	}
	return fallback
}
