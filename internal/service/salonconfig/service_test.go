package salonconfig

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	configRepo "github.com/m04kA/SMC-SalonService/internal/infra/storage/config"
	"github.com/m04kA/SMC-SalonService/internal/service/salonconfig/models"
	"github.com/m04kA/SMC-SalonService/pkg/ptr"
)

type fakeRepo struct {
	cfg *domain.SalonSlotsConfig
}

func (f *fakeRepo) Get(_ context.Context) (*domain.SalonSlotsConfig, error) {
	if f.cfg == nil {
		return nil, configRepo.ErrConfigNotFound
	}
	return f.cfg, nil
}

func (f *fakeRepo) Upsert(_ context.Context, cfg *domain.SalonSlotsConfig) (*domain.SalonSlotsConfig, error) {
	stored := *cfg
	stored.ID = 1
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	stored.UpdatedAt = time.Now()
	f.cfg = &stored
	return &stored, nil
}

type fakeAdmin struct{}

func (fakeAdmin) IsAdmin(userID int64) bool {
	return userID == 1
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGet_DefaultsWhenAbsent(t *testing.T) {
	svc := NewService(&fakeRepo{}, fakeAdmin{}, nopLogger{})

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSlotIntervalMinutes, resp.SlotIntervalMinutes)
	assert.Equal(t, domain.DefaultBufferMinutes, resp.BufferMinutes)
	assert.Equal(t, domain.DefaultAdvanceBookingDays, resp.AdvanceBookingDays)
	assert.Equal(t, domain.DefaultMinBookingNoticeMinutes, resp.MinBookingNoticeMinutes)
	// У конфигурации по умолчанию нет временных меток
	assert.Nil(t, resp.CreatedAt)
	assert.Nil(t, resp.UpdatedAt)
}

func TestGet_AdminOnly(t *testing.T) {
	svc := NewService(&fakeRepo{}, fakeAdmin{}, nopLogger{})

	_, err := svc.Get(context.Background(), 100)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_PartialMerge(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, fakeAdmin{}, nopLogger{})

	// Первое обновление поверх значений по умолчанию
	resp, err := svc.Update(context.Background(), &models.UpdateConfigRequest{
		UserID:        1,
		BufferMinutes: ptr.Ptr(15),
	})
	require.NoError(t, err)
	assert.Equal(t, 15, resp.BufferMinutes)
	assert.Equal(t, domain.DefaultSlotIntervalMinutes, resp.SlotIntervalMinutes)

	// Второе обновление не трогает буфер
	resp, err = svc.Update(context.Background(), &models.UpdateConfigRequest{
		UserID:             1,
		AdvanceBookingDays: ptr.Ptr(30),
	})
	require.NoError(t, err)
	assert.Equal(t, 15, resp.BufferMinutes)
	assert.Equal(t, 30, resp.AdvanceBookingDays)
	assert.NotNil(t, resp.UpdatedAt)
}

func TestUpdate_AdminOnly(t *testing.T) {
	svc := NewService(&fakeRepo{}, fakeAdmin{}, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateConfigRequest{
		UserID:        100,
		BufferMinutes: ptr.Ptr(15),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{}, fakeAdmin{}, nopLogger{})

	tests := []struct {
		name string
		req  *models.UpdateConfigRequest
	}{
		{"нулевой шаг сетки", &models.UpdateConfigRequest{
			UserID: 1, SlotIntervalMinutes: ptr.Ptr(0),
		}},
		{"слишком большой шаг сетки", &models.UpdateConfigRequest{
			UserID: 1, SlotIntervalMinutes: ptr.Ptr(500),
		}},
		{"отрицательный буфер", &models.UpdateConfigRequest{
			UserID: 1, BufferMinutes: ptr.Ptr(-5),
		}},
		{"отрицательная глубина записи", &models.UpdateConfigRequest{
			UserID: 1, AdvanceBookingDays: ptr.Ptr(-1),
		}},
		{"отрицательный notice", &models.UpdateConfigRequest{
			UserID: 1, MinBookingNoticeMinutes: ptr.Ptr(-10),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
