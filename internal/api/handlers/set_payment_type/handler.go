package set_payment_type

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/sessions"
)

const (
	msgInvalidRequestBody   = "Invalid request body"
	msgInvalidPaymentType   = "Payment type must be advance or full"
	msgSubmissionInProgress = "Your booking is being submitted. Please wait."
)

// SetPaymentTypeRequest HTTP request model
type SetPaymentTypeRequest struct {
	PaymentType string `json:"paymentType"`
}

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

// Handle PUT /api/v1/sessions/{sessionId}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := handlers.SessionID(w, r)
	if !ok {
		return
	}

	var req SetPaymentTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := h.service.SetPaymentType(r.Context(), sessionID, req.PaymentType)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			handlers.RespondNotFound(w, handlers.MsgSessionNotFound)
		case errors.Is(err, sessions.ErrInvalidPaymentType):
			handlers.RespondUnprocessable(w, msgInvalidPaymentType)
		case errors.Is(err, sessions.ErrSubmissionInProgress):
			handlers.RespondConflict(w, msgSubmissionInProgress)
		default:
			h.logger.Error("PUT /sessions/{id}/payment - Failed to set payment type: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, h.presenter.Session(draft))
}
