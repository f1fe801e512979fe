package get_sports

import (
	"net/http"

	"github.com/m04kA/SMC-ArenaBooking/internal/api/handlers"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/sessions/models"
)

// CourtResponse HTTP модель корта
type CourtResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	SharedSpace string `json:"sharedSpace,omitempty"`
}

// SportResponse HTTP модель вида спорта
type SportResponse struct {
	Name       string          `json:"name"`
	MinSlots   int             `json:"minSlots"`
	MinHours   float64         `json:"minHours"`
	HourlyRate int64           `json:"hourlyRate"`
	Courts     []CourtResponse `json:"courts"`
}

// CatalogResponse HTTP response model
type CatalogResponse struct {
	Sports            []SportResponse `json:"sports"`
	OpenHour          int             `json:"openHour"`
	CloseHour         int             `json:"closeHour"`
	SlotMinutes       int             `json:"slotMinutes"`
	BookingWindowDays int             `json:"bookingWindowDays"`
}

type Handler struct {
	service CatalogService
}

func NewHandler(service CatalogService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/sports
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(h.service.Catalog()))
}

func fromServiceResponse(c *models.CatalogResponse) CatalogResponse {
	sports := make([]SportResponse, 0, len(c.Sports))
	for _, s := range c.Sports {
		courts := make([]CourtResponse, len(s.Courts))
		for i, ct := range s.Courts {
			courts[i] = CourtResponse{ID: ct.ID, Name: ct.Name, SharedSpace: ct.SharedSpace}
		}
		sports = append(sports, SportResponse{
			Name:       s.Name,
			MinSlots:   s.MinSlots,
			MinHours:   float64(s.MinSlots*c.SlotMinutes) / 60,
			HourlyRate: s.HourlyRate,
			Courts:     courts,
		})
	}

	return CatalogResponse{
		Sports:            sports,
		OpenHour:          c.OpenHour,
		CloseHour:         c.CloseHour,
		SlotMinutes:       c.SlotMinutes,
		BookingWindowDays: c.BookingWindowDays,
	}
}
