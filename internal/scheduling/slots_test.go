package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func TestGenerateCandidates_MondayHourService(t *testing.T) {
	// Понедельник 09:00-19:00, услуга 60 минут, шаг 15 минут:
	// первый кандидат 09:00, последний 18:00 (18:15 уже не помещается)
	hours := domain.DayHours{IsOpen: true, Open: "09:00", Close: "19:00"}

	candidates, err := GenerateCandidates(hours, 60, 15)
	require.NoError(t, err)

	require.NotEmpty(t, candidates)
	assert.Equal(t, types.TimeString("09:00"), candidates[0])
	assert.Equal(t, types.TimeString("18:00"), candidates[len(candidates)-1])
	assert.NotContains(t, candidates, types.TimeString("18:15"))

	// 09:00..18:00 с шагом 15 минут - 37 кандидатов
	assert.Len(t, candidates, 37)
}

func TestGenerateCandidates_Sorted(t *testing.T) {
	hours := domain.DayHours{IsOpen: true, Open: "10:00", Close: "20:00"}

	candidates, err := GenerateCandidates(hours, 30, 15)
	require.NoError(t, err)

	for i := 1; i < len(candidates); i++ {
		assert.True(t, candidates[i-1].IsBefore(candidates[i]),
			"candidates must be strictly increasing: %s >= %s", candidates[i-1], candidates[i])
	}
}

func TestGenerateCandidates_ClosedDay(t *testing.T) {
	candidates, err := GenerateCandidates(domain.DayHours{IsOpen: false}, 60, 15)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestGenerateCandidates_ServiceLongerThanDay(t *testing.T) {
	// Услуга длиннее рабочего окна - пустой список, не ошибка
	hours := domain.DayHours{IsOpen: true, Open: "09:00", Close: "12:00"}

	candidates, err := GenerateCandidates(hours, 240, 15)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestGenerateCandidates_ExactFit(t *testing.T) {
	// Услуга ровно в рабочее окно - единственный кандидат на открытии
	hours := domain.DayHours{IsOpen: true, Open: "09:00", Close: "10:00"}

	candidates, err := GenerateCandidates(hours, 60, 15)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00"}, candidates)
}

func TestGenerateCandidates_HalfHourClose(t *testing.T) {
	// Пятница 09:00-18:30: услуга 60 минут, последний кандидат 17:30
	hours := domain.DayHours{IsOpen: true, Open: "09:00", Close: "18:30"}

	candidates, err := GenerateCandidates(hours, 60, 15)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("17:30"), candidates[len(candidates)-1])
}

func TestGenerateCandidates_InvalidInputs(t *testing.T) {
	hours := domain.DayHours{IsOpen: true, Open: "09:00", Close: "19:00"}

	_, err := GenerateCandidates(hours, 0, 15)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = GenerateCandidates(hours, -30, 15)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = GenerateCandidates(hours, 60, 0)
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = GenerateCandidates(domain.DayHours{IsOpen: true, Open: "9am", Close: "19:00"}, 60, 15)
	assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)
}

func TestGenerateCandidates_IntervalIndependentOfDuration(t *testing.T) {
	// Шаг сетки не зависит от длительности услуги: услуга 90 минут
	// все равно идет с шагом 30
	hours := domain.DayHours{IsOpen: true, Open: "09:00", Close: "12:00"}

	candidates, err := GenerateCandidates(hours, 90, 30)
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "09:30", "10:00", "10:30"}, candidates)
}
