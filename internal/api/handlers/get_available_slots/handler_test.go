package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type fakeUseCase struct {
	gotReq *getAvailableSlots.Request
	resp   *getAvailableSlots.Response
	err    error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{
		resp: &getAvailableSlots.Response{
			Date:            time.Date(2025, 8, 6, 0, 0, 0, 0, time.UTC),
			ServiceType:     "haircut",
			ServiceName:     "Стрижка",
			DurationMinutes: 30,
			Slots:           []types.TimeString{"09:00", "09:15"},
		},
	}
	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2025-08-06&serviceType=haircut", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2025-08-06", resp.Date)
	assert.Equal(t, "haircut", resp.ServiceType)
	assert.Equal(t, []string{"09:00", "09:15"}, resp.Slots)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "haircut", uc.gotReq.ServiceType)
	assert.Zero(t, uc.gotReq.DurationMinutes)
}

func TestHandle_ExplicitDuration(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{}}
	handler := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/availability?date=2025-08-06&serviceType=haircut&durationMinutes=45", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, 45, uc.gotReq.DurationMinutes)
}

func TestHandle_MissingParams(t *testing.T) {
	handler := NewHandler(&fakeUseCase{}, nopLogger{})

	tests := []struct {
		name string
		url  string
	}{
		{"нет даты", "/api/v1/availability?serviceType=haircut"},
		{"нет типа услуги", "/api/v1/availability?date=2025-08-06"},
		{"мусор в дате", "/api/v1/availability?date=tomorrow&serviceType=haircut"},
		{"мусор в длительности", "/api/v1/availability?date=2025-08-06&serviceType=haircut&durationMinutes=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.Handle(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_UseCaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"неизвестная услуга", getAvailableSlots.ErrServiceNotFound, http.StatusNotFound},
		{"некорректная длительность", getAvailableSlots.ErrInvalidDuration, http.StatusBadRequest},
		{"дата слишком далеко", getAvailableSlots.ErrDateTooFarInFuture, http.StatusBadRequest},
		{"внутренняя ошибка", getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2025-08-06&serviceType=haircut", nil)
			rec := httptest.NewRecorder()

			handler.Handle(rec, req)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
