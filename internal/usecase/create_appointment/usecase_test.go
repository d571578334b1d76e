package create_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
	"github.com/m04kA/SMC-SalonService/internal/scheduling"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	nextID       int64
	createErr    error
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	created := *appt
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.appointments = append(f.appointments, &created)
	return &created, nil
}

func (f *fakeAppointmentRepo) GetByDate(_ context.Context, date time.Time) ([]*domain.Appointment, error) {
	result := make([]*domain.Appointment, 0, len(f.appointments))
	for _, appt := range f.appointments {
		if appt.Date.Equal(date) {
			result = append(result, appt)
		}
	}
	return result, nil
}

type fakeClosureRepo struct {
	closures []*domain.ClosurePeriod
}

func (f *fakeClosureRepo) GetActive(_ context.Context, _ time.Time) ([]*domain.ClosurePeriod, error) {
	return f.closures, nil
}

type fakeConfigRepo struct {
	cfg *domain.SalonSlotsConfig
	err error
}

func (f *fakeConfigRepo) Get(_ context.Context) (*domain.SalonSlotsConfig, error) {
	return f.cfg, f.err
}

// fakeTxManager выполняет функцию без реальной транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
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

func newTestUseCase(
	t *testing.T,
	repo *fakeAppointmentRepo,
	closures *fakeClosureRepo,
	cfg *fakeConfigRepo,
	now time.Time,
) (*UseCase, *fakeTxManager) {
	t.Helper()
	engine := scheduling.NewEngine(domain.DefaultWeekSchedule(), berlin(t))
	tx := &fakeTxManager{}
	uc := NewUseCase(repo, closures, cfg, tx, engine, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: now}
	return uc, tx
}

func mustDate(t *testing.T, s string) types.FlexDate {
	t.Helper()
	d, err := types.ParseFlexDate(s)
	require.NoError(t, err)
	return d
}

func TestExecute_HappyPath(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)

	repo := &fakeAppointmentRepo{}
	uc, tx := newTestUseCase(t, repo, &fakeClosureRepo{},
		&fakeConfigRepo{err: configRepo.ErrConfigNotFound}, now)

	name := "Анна"
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:      100,
		ServiceType: "coloring",
		Date:        mustDate(t, "2025-08-06"),
		StartTime:   "10:00",
		ClientName:  &name,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(100), resp.UserID)
	assert.Equal(t, "coloring", resp.ServiceType)
	// Длительность и цена из каталога, конец = начало + длительность
	assert.Equal(t, 120, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, types.TimeString("12:00"), resp.EndTime)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, "Окрашивание", resp.ServiceName)
	assert.InDelta(t, 95.00, resp.ServicePrice, 0.001)
	require.NotNil(t, resp.ClientName)
	assert.Equal(t, "Анна", *resp.ClientName)

	assert.Equal(t, 1, tx.calls)
}

func TestExecute_SecondBookingSameSlotFails(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)

	repo := &fakeAppointmentRepo{}
	uc, _ := newTestUseCase(t, repo, &fakeClosureRepo{},
		&fakeConfigRepo{cfg: domain.DefaultSlotsConfig()}, now)

	first := &Request{
		UserID:      100,
		ServiceType: "cut_and_style",
		Date:        mustDate(t, "2025-08-06"),
		StartTime:   "10:00",
	}
	_, err := uc.Execute(context.Background(), first)
	require.NoError(t, err)

	// Второй клиент на тот же слот получает отказ с деталями конфликта
	second := &Request{
		UserID:      200,
		ServiceType: "haircut",
		Date:        mustDate(t, "2025-08-06"),
		StartTime:   "10:30",
	}
	_, err = uc.Execute(context.Background(), second)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	var confErr *scheduling.ConflictError
	require.True(t, errors.As(err, &confErr))
	require.Len(t, confErr.Conflicts, 1)
	assert.Equal(t, int64(1), confErr.Conflicts[0].ID)

	// В хранилище осталась только первая запись
	assert.Len(t, repo.appointments, 1)
}

func TestExecute_BackToBackAllowed(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)

	repo := &fakeAppointmentRepo{}
	uc, _ := newTestUseCase(t, repo, &fakeClosureRepo{},
		&fakeConfigRepo{cfg: domain.DefaultSlotsConfig()}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:      100,
		ServiceType: "cut_and_style",
		Date:        mustDate(t, "2025-08-06"),
		StartTime:   "10:00",
	})
	require.NoError(t, err)

	// Буфер 0: запись впритык (11:00 сразу после 10:00-11:00) проходит
	resp, err := uc.Execute(context.Background(), &Request{
		UserID:      200,
		ServiceType: "cut_and_style",
		Date:        mustDate(t, "2025-08-06"),
		StartTime:   "11:00",
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("12:00"), resp.EndTime)
}

func TestExecute_BufferBlocksAdjacent(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)

	cfg := domain.DefaultSlotsConfig()
	cfg.BufferMinutes = 15

	repo := &fakeAppointmentRepo{}
	uc, _ := newTestUseCase(t, repo, &fakeClosureRepo{}, &fakeConfigRepo{cfg: cfg}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:      100,
		ServiceType: "cut_and_style",
		Date:        mustDate(t, "2025-08-06"),
		StartTime:   "10:00",
	})
	require.NoError(t, err)

	// С буфером 15 запись на 11:00 попадает в зазор
	_, err = uc.Execute(context.Background(), &Request{
		UserID:      200,
		ServiceType: "cut_and_style",
		Date:        mustDate(t, "2025-08-06"),
		StartTime:   "11:00",
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	// 11:15 - ровно за буферной границей
	_, err = uc.Execute(context.Background(), &Request{
		UserID:      200,
		ServiceType: "cut_and_style",
		Date:        mustDate(t, "2025-08-06"),
		StartTime:   "11:15",
	})
	assert.NoError(t, err)
}

func TestExecute_ClosedDate(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)

	uc, _ := newTestUseCase(t, &fakeAppointmentRepo{},
		&fakeClosureRepo{closures: []*domain.ClosurePeriod{
			{
				ID:        1,
				StartDate: time.Date(2025, 8, 5, 0, 0, 0, 0, loc),
				EndDate:   time.Date(2025, 8, 7, 0, 0, 0, 0, loc),
			},
		}},
		&fakeConfigRepo{cfg: domain.DefaultSlotsConfig()}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:      100,
		ServiceType: "haircut",
		Date:        mustDate(t, "2025-08-06"),
		StartTime:   "10:00",
	})
	assert.ErrorIs(t, err, scheduling.ErrDateClosed)
}

func TestExecute_OutsideBusinessHours(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)

	uc, _ := newTestUseCase(t, &fakeAppointmentRepo{}, &fakeClosureRepo{},
		&fakeConfigRepo{cfg: domain.DefaultSlotsConfig()}, now)

	// Среда закрывается в 19:00: мелирование 150 минут с 17:00 не помещается
	_, err := uc.Execute(context.Background(), &Request{
		UserID:      100,
		ServiceType: "highlights",
		Date:        mustDate(t, "2025-08-06"),
		StartTime:   "17:00",
	})
	assert.ErrorIs(t, err, scheduling.ErrOutsideBusinessHours)
}

func TestExecute_TooLateToBook(t *testing.T) {
	loc := berlin(t)
	// Сегодняшний день, notice 60 минут по умолчанию
	now := time.Date(2025, 8, 6, 14, 0, 0, 0, loc)

	uc, _ := newTestUseCase(t, &fakeAppointmentRepo{}, &fakeClosureRepo{},
		&fakeConfigRepo{cfg: domain.DefaultSlotsConfig()}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:      100,
		ServiceType: "haircut",
		Date:        mustDate(t, "2025-08-06"),
		StartTime:   "14:30",
	})
	assert.ErrorIs(t, err, scheduling.ErrTooLateToBook)
}

func TestExecute_AdvanceLimit(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)

	cfg := domain.DefaultSlotsConfig()
	cfg.AdvanceBookingDays = 7

	uc, _ := newTestUseCase(t, &fakeAppointmentRepo{}, &fakeClosureRepo{},
		&fakeConfigRepo{cfg: cfg}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:      100,
		ServiceType: "haircut",
		Date:        mustDate(t, "2025-08-20"),
		StartTime:   "10:00",
	})
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_Validation(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)

	uc, _ := newTestUseCase(t, &fakeAppointmentRepo{}, &fakeClosureRepo{},
		&fakeConfigRepo{cfg: domain.DefaultSlotsConfig()}, now)

	tests := []struct {
		name string
		req  *Request
		want error
	}{
		{"нет userID", &Request{
			ServiceType: "haircut", Date: mustDate(t, "2025-08-06"), StartTime: "10:00",
		}, ErrInvalidInput},
		{"нет даты", &Request{
			UserID: 100, ServiceType: "haircut", StartTime: "10:00",
		}, ErrInvalidInput},
		{"нет типа услуги", &Request{
			UserID: 100, Date: mustDate(t, "2025-08-06"), StartTime: "10:00",
		}, ErrInvalidInput},
		{"некорректное время", &Request{
			UserID: 100, ServiceType: "haircut", Date: mustDate(t, "2025-08-06"), StartTime: "10:99",
		}, ErrInvalidInput},
		{"неизвестная услуга", &Request{
			UserID: 100, ServiceType: "massage", Date: mustDate(t, "2025-08-06"), StartTime: "10:00",
		}, ErrServiceNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExecute_CreateFailure(t *testing.T) {
	loc := berlin(t)
	now := time.Date(2025, 8, 1, 12, 0, 0, 0, loc)

	uc, _ := newTestUseCase(t,
		&fakeAppointmentRepo{createErr: assert.AnError},
		&fakeClosureRepo{},
		&fakeConfigRepo{cfg: domain.DefaultSlotsConfig()}, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:      100,
		ServiceType: "haircut",
		Date:        mustDate(t, "2025-08-06"),
		StartTime:   "10:00",
	})
	assert.ErrorIs(t, err, ErrInternal)
}
