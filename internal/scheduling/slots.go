package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// GenerateCandidates генерирует кандидатов времени начала услуги на день
// Слоты идут от открытия с фиксированным шагом intervalMinutes; кандидат
// остается, только если УСЛУГА ЦЕЛИКОМ помещается до закрытия
// (start + duration <= close) - хвостовые частичные слоты отбрасываются.
// Работа в минутном пространстве исключает переход через полночь.
//
// Для закрытого дня и для услуги длиннее рабочего окна возвращается
// пустой список, не ошибка. Результат всегда отсортирован по возрастанию
// и начинается ровно со времени открытия
func GenerateCandidates(hours domain.DayHours, durationMinutes, intervalMinutes int) ([]types.TimeString, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, durationMinutes)
	}
	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidInterval, intervalMinutes)
	}

	if !hours.IsOpen {
		return []types.TimeString{}, nil
	}

	openMin, err := hours.Open.Minutes()
	if err != nil {
		return nil, err
	}
	closeMin, err := hours.Close.Minutes()
	if err != nil {
		return nil, err
	}

	candidates := make([]types.TimeString, 0)
	for start := openMin; start < closeMin; start += intervalMinutes {
		if start+durationMinutes > closeMin {
			break
		}
		candidates = append(candidates, types.NewTimeStringFromMinutes(start))
	}

	return candidates, nil
}
