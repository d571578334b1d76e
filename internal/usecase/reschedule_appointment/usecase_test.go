package reschedule_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	storageAppt "github.com/m04kA/SMC-SalonService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonService/internal/scheduling"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments map[int64]*domain.Appointment
}

func newFakeAppointmentRepo(appts ...*domain.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{appointments: make(map[int64]*domain.Appointment)}
	for _, appt := range appts {
		repo.appointments[appt.ID] = appt
	}
	return repo
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, storageAppt.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0)
	for _, appt := range f.appointments {
		if appt.Date.Equal(date) {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) Reschedule(_ context.Context, id int64, date time.Time, startTime, endTime types.TimeString) error {
	appt, ok := f.appointments[id]
	if !ok {
		return storageAppt.ErrAppointmentNotFound
	}
	appt.Date = date
	appt.StartTime = startTime
	appt.EndTime = endTime
	return nil
}

type fakeClosureRepo struct {
	closures []*domain.ClosurePeriod
}

func (f *fakeClosureRepo) GetActive(_ context.Context, _ time.Time) ([]*domain.ClosurePeriod, error) {
	return f.closures, nil
}

type fakeConfigRepo struct {
	cfg *domain.SalonSlotsConfig
}

func (f *fakeConfigRepo) Get(_ context.Context) (*domain.SalonSlotsConfig, error) {
	return f.cfg, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func berlin(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)
	return loc
}

func newTestUseCase(t *testing.T, repo *fakeAppointmentRepo, now time.Time) *UseCase {
	t.Helper()
	engine := scheduling.NewEngine(domain.DefaultWeekSchedule(), berlin(t))
	uc := NewUseCase(repo, &fakeClosureRepo{},
		&fakeConfigRepo{cfg: domain.DefaultSlotsConfig()}, fakeTxManager{}, engine, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc
}

func mustDate(t *testing.T, s string) types.FlexDate {
	t.Helper()
	d, err := types.ParseFlexDate(s)
	require.NoError(t, err)
	return d
}

func confirmedAppt(loc *time.Location, id, userID int64, day time.Time, start types.TimeString, duration int) *domain.Appointment {
	end, _ := start.AddMinutes(duration)
	return &domain.Appointment{
		ID:              id,
		UserID:          userID,
		ServiceType:     "cut_and_style",
		Date:            day,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: duration,
		Status:          domain.StatusConfirmed,
		ServiceName:     "Стрижка и укладка",
		ServicePrice:    55.00,
	}
}

func TestExecute_MoveToAnotherDay(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)
	day := time.Date(2025, 8, 6, 0, 0, 0, 0, loc)

	repo := newFakeAppointmentRepo(confirmedAppt(loc, 5, 100, day, "10:00", 60))
	uc := newTestUseCase(t, repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 5,
		UserID:        100,
		Date:          mustDate(t, "2025-08-07"), // четверг 10:00-20:00
		StartTime:     "12:00",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), resp.ID)
	assert.Equal(t, types.TimeString("12:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("13:00"), resp.EndTime)
	assert.Equal(t, 60, resp.DurationMinutes)

	stored := repo.appointments[5]
	assert.Equal(t, time.Date(2025, 8, 7, 0, 0, 0, 0, loc), stored.Date)
	assert.Equal(t, types.TimeString("12:00"), stored.StartTime)
}

func TestExecute_SelfOverlapAllowed(t *testing.T) {
	// Перенос "10:00 -> 10:15" в тот же день не конфликтует сам с собой
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)
	day := time.Date(2025, 8, 6, 0, 0, 0, 0, loc)

	repo := newFakeAppointmentRepo(confirmedAppt(loc, 5, 100, day, "10:00", 60))
	uc := newTestUseCase(t, repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 5,
		UserID:        100,
		Date:          mustDate(t, "2025-08-06"),
		StartTime:     "10:15",
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:15"), resp.StartTime)
	assert.Equal(t, types.TimeString("11:15"), resp.EndTime)
}

func TestExecute_ConflictWithOtherAppointment(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)
	day := time.Date(2025, 8, 6, 0, 0, 0, 0, loc)

	repo := newFakeAppointmentRepo(
		confirmedAppt(loc, 5, 100, day, "10:00", 60),
		confirmedAppt(loc, 6, 200, day, "14:00", 60),
	)
	uc := newTestUseCase(t, repo, now)

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 5,
		UserID:        100,
		Date:          mustDate(t, "2025-08-06"),
		StartTime:     "14:30",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	var confErr *scheduling.ConflictError
	require.True(t, errors.As(err, &confErr))
	require.Len(t, confErr.Conflicts, 1)
	assert.Equal(t, int64(6), confErr.Conflicts[0].ID)

	// Запись осталась на прежнем месте
	assert.Equal(t, types.TimeString("10:00"), repo.appointments[5].StartTime)
}

func TestExecute_NotFound(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)

	uc := newTestUseCase(t, newFakeAppointmentRepo(), now)

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 99,
		UserID:        100,
		Date:          mustDate(t, "2025-08-06"),
		StartTime:     "10:00",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_ForeignAppointment(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)
	day := time.Date(2025, 8, 6, 0, 0, 0, 0, loc)

	repo := newFakeAppointmentRepo(confirmedAppt(loc, 5, 100, day, "10:00", 60))
	uc := newTestUseCase(t, repo, now)

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 5,
		UserID:        200,
		Date:          mustDate(t, "2025-08-06"),
		StartTime:     "12:00",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_CancelledCannotBeRescheduled(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)
	day := time.Date(2025, 8, 6, 0, 0, 0, 0, loc)

	appt := confirmedAppt(loc, 5, 100, day, "10:00", 60)
	appt.Status = domain.StatusCancelledByClient

	uc := newTestUseCase(t, newFakeAppointmentRepo(appt), now)

	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 5,
		UserID:        100,
		Date:          mustDate(t, "2025-08-06"),
		StartTime:     "12:00",
	})
	assert.ErrorIs(t, err, ErrCannotReschedule)
}

func TestExecute_TargetDayClosed(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)
	day := time.Date(2025, 8, 6, 0, 0, 0, 0, loc)

	uc := newTestUseCase(t, newFakeAppointmentRepo(confirmedAppt(loc, 5, 100, day, "10:00", 60)), now)

	// Воскресенье
	_, err := uc.Execute(context.Background(), &Request{
		AppointmentID: 5,
		UserID:        100,
		Date:          mustDate(t, "2025-08-10"),
		StartTime:     "12:00",
	})
	assert.ErrorIs(t, err, scheduling.ErrDateClosed)
}

func TestExecute_Validation(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)
	uc := newTestUseCase(t, newFakeAppointmentRepo(), now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID: 100, Date: mustDate(t, "2025-08-06"), StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{
		AppointmentID: 5, UserID: 100, Date: mustDate(t, "2025-08-06"), StartTime: "10:70",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
