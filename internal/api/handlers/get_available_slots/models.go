package get_available_slots

import (
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string   `json:"date"`
	ServiceType     string   `json:"serviceType"`
	ServiceName     string   `json:"serviceName"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"` // ["09:00", "09:15", ...]
}

// ToUseCaseRequest создает запрос use case из query параметров
// Дата принимается в любом из поддерживаемых форматов (YYYY-MM-DD,
// RFC3339 timestamp)
func ToUseCaseRequest(dateStr, serviceType, durationStr string) (*getAvailableSlots.Request, error) {
	date, err := types.ParseFlexDate(dateStr)
	if err != nil {
		return nil, err
	}

	duration := 0
	if durationStr != "" {
		duration, err = strconv.Atoi(durationStr)
		if err != nil {
			return nil, err
		}
	}

	return &getAvailableSlots.Request{
		Date:            date,
		ServiceType:     serviceType,
		DurationMinutes: duration,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceType:     resp.ServiceType,
		ServiceName:     resp.ServiceName,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}
