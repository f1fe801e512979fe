package models

import "github.com/m04kA/SMC-ArenaBooking/internal/domain"

// CreateSessionRequest модель запроса на создание сессии; корт можно выбрать сразу
type CreateSessionRequest struct {
	Sport   string
	CourtID string
}

// PlayerRequest данные игрока с шага 3
type PlayerRequest struct {
	Name            string
	Phone           string
	Email           string
	Count           int
	SpecialRequests string
}

// ToDomainPlayer конвертирует запрос в domain.Player без нормализации
func (r *PlayerRequest) ToDomainPlayer() domain.Player {
	return domain.Player{
		Name:            r.Name,
		Phone:           r.Phone,
		Email:           r.Email,
		Count:           r.Count,
		SpecialRequests: r.SpecialRequests,
	}
}

// PromoResponse результат применения промокода
type PromoResponse struct {
	Draft        domain.Draft
	DiscountText string
	Message      string
}

// CatalogResponse каталог видов спорта и окно работы арены
type CatalogResponse struct {
	Sports            []domain.Sport
	OpenHour          int
	CloseHour         int
	SlotMinutes       int
	BookingWindowDays int
}
