package apply_promo

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/sessions"
)

const (
	msgInvalidRequestBody   = "Invalid request body"
	msgInvalidPromoCode     = "Please enter a promo code"
	msgPriceNotCalculated   = "Please select your time slots before applying a promo code"
	msgPromoRejected        = "Invalid promo code"
	msgPromoUnavailable     = "Error applying promo code. Please try again."
	msgPriceChanged         = "The price changed while applying the promo code. Please try again."
	msgSubmissionInProgress = "Your booking is being submitted. Please wait."
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

// Handle POST /api/v1/sessions/{sessionId}/promo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := handlers.SessionID(w, r)
	if !ok {
		return
	}

	var req ApplyPromoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/promo - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ApplyPromo(r.Context(), sessionID, req.PromoCode)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			handlers.RespondNotFound(w, handlers.MsgSessionNotFound)
		case errors.Is(err, sessions.ErrInvalidPromoCode):
			handlers.RespondUnprocessable(w, msgInvalidPromoCode)
		case errors.Is(err, sessions.ErrPriceNotCalculated):
			handlers.RespondUnprocessable(w, msgPriceNotCalculated)
		case errors.Is(err, sessions.ErrPromoRejected):
			msg, ok := sessions.RejectionMessage(err)
			if !ok || msg == "" {
				msg = msgPromoRejected
			}
			handlers.RespondUnprocessable(w, msg)
		case errors.Is(err, sessions.ErrPromoUnavailable):
			handlers.RespondBadGateway(w, msgPromoUnavailable)
		case errors.Is(err, sessions.ErrPriceChanged):
			handlers.RespondConflict(w, msgPriceChanged)
		case errors.Is(err, sessions.ErrSubmissionInProgress):
			handlers.RespondConflict(w, msgSubmissionInProgress)
		default:
			h.logger.Error("POST /sessions/{id}/promo - Failed to apply promo code: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/promo - Promo code applied: session_id=%s, code=%s", sessionID, result.Draft.PromoCode)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(h.presenter, result))
}
