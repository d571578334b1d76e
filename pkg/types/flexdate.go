package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidDateFormat возвращается при нераспознанном формате даты
	ErrInvalidDateFormat = errors.New("invalid date format")
)

// dateOnlyFormat формат календарной даты без времени
const dateOnlyFormat = "2006-01-02"

// FlexDate календарная дата, принимаемая с границы системы в трех видах:
//   - "2006-01-02" (обычная дата)
//   - полный RFC3339 timestamp ("2006-01-02T15:04:05Z07:00")
//   - объект {"seconds": N} или число (unix-секунды от старых клиентов)
//
// Все три представления нормализуются к одному и тому же локальному дню
// салона через Day(). Это ЕДИНСТВЕННОЕ место, где допускается смешение
// форматов дат - глубже границы API ходит только нормализованный time.Time
type FlexDate struct {
	instant  time.Time
	year     int
	month    time.Month
	day      int
	dateOnly bool
	set      bool
}

// secondsPayload объект timestamp-а из legacy-клиентов
type secondsPayload struct {
	Seconds *int64 `json:"seconds"`
}

// NewFlexDate создает FlexDate из готового момента времени
func NewFlexDate(t time.Time) FlexDate {
	return FlexDate{instant: t, set: true}
}

// ParseFlexDate парсит строковое представление даты (query-параметры)
func ParseFlexDate(s string) (FlexDate, error) {
	if d, err := time.Parse(dateOnlyFormat, s); err == nil {
		return FlexDate{
			year: d.Year(), month: d.Month(), day: d.Day(),
			dateOnly: true, set: true,
		}, nil
	}

	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return FlexDate{instant: ts, set: true}, nil
	}

	return FlexDate{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, s)
}

// UnmarshalJSON принимает строку, число (unix-секунды) или {"seconds": N}
func (d *FlexDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		parsed, err := ParseFlexDate(s)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	var secs int64
	if err := json.Unmarshal(data, &secs); err == nil {
		*d = FlexDate{instant: time.Unix(secs, 0), set: true}
		return nil
	}

	var payload secondsPayload
	if err := json.Unmarshal(data, &payload); err == nil && payload.Seconds != nil {
		*d = FlexDate{instant: time.Unix(*payload.Seconds, 0), set: true}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrInvalidDateFormat, string(data))
}

// MarshalJSON сериализует в каноническую форму "2006-01-02" (в UTC для timestamp-ов)
func (d FlexDate) MarshalJSON() ([]byte, error) {
	if !d.set {
		return []byte(`null`), nil
	}
	if d.dateOnly {
		return json.Marshal(fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day))
	}
	return json.Marshal(d.instant.UTC().Format(dateOnlyFormat))
}

// IsZero возвращает true, если дата не задана
func (d FlexDate) IsZero() bool {
	return !d.set
}

// Day нормализует дату к локальной полуночи в часовом поясе салона
// Для обычной даты календарный день берется как есть,
// для timestamp-ов момент сначала переводится в loc
func (d FlexDate) Day(loc *time.Location) time.Time {
	if !d.set {
		return time.Time{}
	}
	if d.dateOnly {
		return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
	}
	local := d.instant.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}
