package refresh_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	calculatePrice "github.com/m04kA/SMC-ArenaBooking/internal/usecase/calculate_price"
)

// RefreshPriceResponse HTTP response model
type RefreshPriceResponse struct {
	Session handlers.SessionResponse `json:"session"`
	Stale   bool                     `json:"stale"`
}

type Handler struct {
	useCase   CalculatePriceUseCase
	presenter *handlers.Presenter
	logger    Logger
}

func NewHandler(useCase CalculatePriceUseCase, presenter *handlers.Presenter, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		presenter: presenter,
		logger:    logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/price
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := handlers.SessionID(w, r)
	if !ok {
		return
	}

	result, err := h.useCase.Execute(r.Context(), sessionID)
	if err != nil {
		if errors.Is(err, calculatePrice.ErrSessionNotFound) {
			handlers.RespondNotFound(w, handlers.MsgSessionNotFound)
			return
		}
		h.logger.Error("POST /sessions/{id}/price - Failed to calculate price: session_id=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, RefreshPriceResponse{
		Session: h.presenter.Session(result.Draft),
		Stale:   result.Stale,
	})
}
