package sessions

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"

	"github.com/m04kA/SMC-ArenaBooking/internal/domain"
	"github.com/m04kA/SMC-ArenaBooking/internal/service/sessions/models"
)

const (
	minNameLength  = 2
	maxPlayerCount = 20
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validatePlayer проверяет данные игрока и возвращает их в нормализованном виде:
// телефон в E.164, email в нижнем регистре, пробелы по краям удалены
func validatePlayer(req *models.PlayerRequest, region string) (domain.Player, error) {
	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) < minNameLength {
		return domain.Player{}, fmt.Errorf("%w: must be at least %d characters", ErrInvalidName, minNameLength)
	}
	if utf8.RuneCountInString(name) > domain.MaxPlayerNameLength {
		return domain.Player{}, fmt.Errorf("%w: must be at most %d characters", ErrInvalidName, domain.MaxPlayerNameLength)
	}

	phone, err := normalizePhone(req.Phone, region)
	if err != nil {
		return domain.Player{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email != "" && !emailPattern.MatchString(email) {
		return domain.Player{}, ErrInvalidEmail
	}

	count := req.Count
	if count == 0 {
		count = 2
	}
	if count < 1 || count > maxPlayerCount {
		return domain.Player{}, fmt.Errorf("%w: must be between 1 and %d", ErrInvalidPlayerCount, maxPlayerCount)
	}

	requests := strings.TrimSpace(req.SpecialRequests)
	if utf8.RuneCountInString(requests) > domain.MaxSpecialRequestsLength {
		return domain.Player{}, fmt.Errorf("%w: at most %d characters", ErrSpecialRequestsTooLong, domain.MaxSpecialRequestsLength)
	}

	return domain.Player{
		Name:            name,
		Phone:           phone,
		Email:           email,
		Count:           count,
		SpecialRequests: requests,
	}, nil
}

// normalizePhone разбирает номер с регионом по умолчанию и приводит к E.164
func normalizePhone(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: phone is required", ErrInvalidPhone)
	}

	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPhone, raw)
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

// normalizePromoCode приводит промокод к верхнему регистру
func normalizePromoCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", fmt.Errorf("%w: code is required", ErrInvalidPromoCode)
	}
	if len(code) > domain.MaxPromoCodeLength {
		return "", fmt.Errorf("%w: at most %d characters", ErrInvalidPromoCode, domain.MaxPromoCodeLength)
	}
	return code, nil
}

func parsePaymentType(s string) (domain.PaymentType, error) {
	switch pt := domain.PaymentType(s); pt {
	case domain.PaymentAdvance, domain.PaymentFull:
		return pt, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPaymentType, s)
}
