package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

var (
	// ErrInvalidTimeString возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString время суток в формате "HH:MM" (24h)
// Нулевое значение ("") означает, что время не задано
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит строку формата HH:MM (допускается H:MM)
// и возвращает нормализованное значение
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := parseMinutes(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return FromMinutes(minutes), nil
}

// FromMinutes создает TimeString из количества минут от полуночи
// Значения вне суток заворачиваются через полночь
func FromMinutes(minutes int) TimeString {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}

// MustTimeString паникует на некорректном формате, используется для констант и тестов
func MustTimeString(s string) TimeString {
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат HH:MM
func (t TimeString) Validate() error {
	_, err := parseMinutes(string(t))
	return err
}

// Minutes возвращает количество минут от полуночи
// Для некорректного значения возвращает -1
func (t TimeString) Minutes() int {
	m, err := parseMinutes(string(t))
	if err != nil {
		return -1
	}
	return m
}

// Hour возвращает час (0-23)
func (t TimeString) Hour() int {
	return t.Minutes() / 60
}

// AddMinutes прибавляет минуты, результат заворачивается через полночь
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := parseMinutes(string(t))
	if err != nil {
		return "", err
	}
	return FromMinutes(m + minutes), nil
}

// IsBefore сравнивает время суток без учета перехода через полночь
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter сравнивает время суток без учета перехода через полночь
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// Format12h возвращает время в 12-часовом формате, например "11:00 PM"
func (t TimeString) Format12h() string {
	m := t.Minutes()
	if m < 0 {
		return string(t)
	}
	hour, minute := m/60, m%60
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, minute, suffix)
}

// MarshalJSON сериализует время как строку "HH:MM"
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON парсит и нормализует строку "HH:MM"
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = ""
		return nil
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner (поддерживает TIME из postgres: "HH:MM:SS")
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) > 5 && strings.Count(s, ":") == 2 {
		s = s[:strings.LastIndex(s, ":")]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func parseMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || len(parts[1]) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return hour*60 + minute, nil
}
