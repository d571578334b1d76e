package scheduling

import (
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// rangesOverlap проверяет пересечение двух полуинтервалов [start, end)
// Строгие неравенства: записи "впритык" (конец одной равен началу другой)
// НЕ считаются пересечением
func rangesOverlap(start1, end1, start2, end2 int) bool {
	return start1 < end2 && start2 < end1
}

// FindConflicts возвращает все активные записи, пересекающиеся с кандидатом
// [candidateStart, candidateStart+durationMinutes)
//
// Буфер расширяет границы СУЩЕСТВУЮЩЕЙ записи с обеих сторон, а не
// кандидата: запрошенный слот обязан отстоять от каждой существующей
// записи минимум на bufferMinutes. Расширение асимметричное намеренно -
// симметричное применение удвоило бы требуемый зазор между записями
//
// excludeID пропускает запись с указанным ID - используется при проверке
// переноса, чтобы запись не конфликтовала сама с собой
//
// Пустой результат означает, что слот свободен. Функция чистая: без I/O,
// входные данные не мутируются
func FindConflicts(
	candidateStart types.TimeString,
	durationMinutes int,
	existing []*domain.Appointment,
	excludeID *int64,
	bufferMinutes int,
) ([]*domain.Appointment, error) {
	startMin, err := candidateStart.Minutes()
	if err != nil {
		return nil, err
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, durationMinutes)
	}
	endMin := startMin + durationMinutes

	conflicts := make([]*domain.Appointment, 0)

	for _, appt := range existing {
		// Пропускаем неактивные записи - они не занимают слот
		if !appt.IsActive() {
			continue
		}
		if excludeID != nil && appt.ID == *excludeID {
			continue
		}

		apptStart, err := appt.StartTime.Minutes()
		if err != nil {
			// Некорректное время в хранимой записи - пропускаем, как и
			// при подсчете занятости: слот не должен блокироваться мусором
			continue
		}
		apptEnd := apptStart + appt.DurationMinutes

		// Расширяем границы существующей записи буфером
		bufferedStart := apptStart - bufferMinutes
		bufferedEnd := apptEnd + bufferMinutes

		if rangesOverlap(startMin, endMin, bufferedStart, bufferedEnd) {
			conflicts = append(conflicts, appt)
		}
	}

	return conflicts, nil
}
