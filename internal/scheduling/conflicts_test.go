package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func appt(id int64, start types.TimeString, duration int, status domain.AppointmentStatus) *domain.Appointment {
	end, _ := start.AddMinutes(duration)
	return &domain.Appointment{
		ID:              id,
		UserID:          100,
		ServiceType:     "haircut",
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: duration,
		Status:          status,
	}
}

func TestFindConflicts_Overlap(t *testing.T) {
	existing := []*domain.Appointment{
		appt(1, "10:00", 60, domain.StatusConfirmed),
	}

	tests := []struct {
		name      string
		start     types.TimeString
		duration  int
		conflicts int
	}{
		{"полное совпадение", "10:00", 60, 1},
		{"кандидат внутри записи", "10:15", 30, 1},
		{"запись внутри кандидата", "09:30", 120, 1},
		{"пересечение по началу", "09:30", 60, 1},
		{"пересечение по концу", "10:30", 60, 1},
		{"впритык до записи", "09:00", 60, 0},
		{"впритык после записи", "11:00", 60, 0},
		{"задолго до", "08:00", 60, 0},
		{"задолго после", "12:00", 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts, err := FindConflicts(tt.start, tt.duration, existing, nil, 0)
			require.NoError(t, err)
			assert.Len(t, conflicts, tt.conflicts)
		})
	}
}

func TestFindConflicts_InactiveIgnored(t *testing.T) {
	// Отмененные записи и no-show не занимают слот
	existing := []*domain.Appointment{
		appt(1, "10:00", 60, domain.StatusCancelledByClient),
		appt(2, "10:00", 60, domain.StatusCancelledBySalon),
		appt(3, "10:00", 60, domain.StatusNoShow),
	}

	conflicts, err := FindConflicts("10:00", 60, existing, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestFindConflicts_ActiveStatuses(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
	} {
		existing := []*domain.Appointment{appt(1, "10:00", 60, status)}

		conflicts, err := FindConflicts("10:30", 60, existing, nil, 0)
		require.NoError(t, err)
		assert.Len(t, conflicts, 1, "status %s must block the slot", status)
	}
}

func TestFindConflicts_ExcludeID(t *testing.T) {
	// При переносе запись не должна конфликтовать сама с собой
	existing := []*domain.Appointment{
		appt(7, "10:00", 60, domain.StatusConfirmed),
		appt(8, "11:00", 60, domain.StatusConfirmed),
	}

	excludeID := int64(7)
	conflicts, err := FindConflicts("10:00", 60, existing, &excludeID, 0)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	// Другая запись по-прежнему конфликтует
	conflicts, err = FindConflicts("10:30", 60, existing, &excludeID, 0)
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, int64(8), conflicts[0].ID)
}

func TestFindConflicts_Buffer(t *testing.T) {
	// Буфер 10 минут: запись 10:00-11:00 блокирует [09:50, 11:10)
	existing := []*domain.Appointment{
		appt(1, "10:00", 60, domain.StatusConfirmed),
	}

	// Кандидат 09:00-09:55 попадает в расширенную границу
	conflicts, err := FindConflicts("09:00", 55, existing, nil, 10)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)

	// Кандидат 09:00-09:50 - ровно до буферной границы, свободен
	conflicts, err = FindConflicts("09:00", 50, existing, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	// Кандидат с 11:10 - ровно после буфера, свободен
	conflicts, err = FindConflicts("11:10", 60, existing, nil, 10)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	// Кандидат с 11:05 - внутри буфера
	conflicts, err = FindConflicts("11:05", 60, existing, nil, 10)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}

func TestFindConflicts_BufferMonotonic(t *testing.T) {
	// Увеличение буфера не может освободить занятый слот
	existing := []*domain.Appointment{
		appt(1, "10:00", 60, domain.StatusConfirmed),
		appt(2, "14:00", 30, domain.StatusConfirmed),
	}

	free := func(buffer int) map[types.TimeString]bool {
		result := make(map[types.TimeString]bool)
		for start := 9 * 60; start < 18*60; start += 15 {
			ts := types.NewTimeStringFromMinutes(start)
			conflicts, err := FindConflicts(ts, 30, existing, nil, buffer)
			require.NoError(t, err)
			if len(conflicts) == 0 {
				result[ts] = true
			}
		}
		return result
	}

	free0 := free(0)
	free15 := free(15)
	free30 := free(30)

	for ts := range free30 {
		assert.True(t, free15[ts], "slot %s free at buffer 30 must be free at buffer 15", ts)
	}
	for ts := range free15 {
		assert.True(t, free0[ts], "slot %s free at buffer 15 must be free at buffer 0", ts)
	}
}

func TestFindConflicts_MalformedStoredTimeSkipped(t *testing.T) {
	broken := appt(1, "10:00", 60, domain.StatusConfirmed)
	broken.StartTime = "garbage"

	existing := []*domain.Appointment{
		broken,
		appt(2, "12:00", 60, domain.StatusConfirmed),
	}

	conflicts, err := FindConflicts("10:00", 60, existing, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	conflicts, err = FindConflicts("12:00", 60, existing, nil, 0)
	require.NoError(t, err)
	assert.Len(t, conflicts, 1)
}

func TestFindConflicts_InvalidInput(t *testing.T) {
	_, err := FindConflicts("10:00", 0, nil, nil, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = FindConflicts("25:00", 60, nil, nil, 0)
	assert.ErrorIs(t, err, types.ErrInvalidTimeFormat)
}

func TestConflictError_Message(t *testing.T) {
	single := &ConflictError{Conflicts: []*domain.Appointment{
		appt(42, "10:00", 60, domain.StatusConfirmed),
	}}
	assert.Contains(t, single.Error(), "id=42")
	assert.Contains(t, single.Error(), "10:00-11:00")

	multi := &ConflictError{Conflicts: []*domain.Appointment{
		appt(1, "10:00", 60, domain.StatusConfirmed),
		appt(2, "11:00", 60, domain.StatusConfirmed),
	}}
	assert.Contains(t, multi.Error(), "2 appointments")
}
