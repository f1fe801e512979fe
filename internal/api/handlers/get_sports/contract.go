package get_sports

import "github.com/m04kA/SMC-ArenaBooking/internal/service/sessions/models"

type CatalogService interface {
	Catalog() *models.CatalogResponse
}
