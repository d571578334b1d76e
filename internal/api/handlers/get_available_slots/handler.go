package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate        = "дата обязательна"
	msgMissingServiceType = "тип услуги обязателен"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD или RFC3339"
	msgInvalidDuration    = "некорректная длительность услуги"
	msgServiceNotFound    = "услуга не найдена"
	msgDateTooFar         = "дата слишком далеко в будущем"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required), serviceType (required), durationMinutes (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	serviceType := query.Get("serviceType")
	if serviceType == "" {
		h.logger.Warn("GET /availability - Missing service type")
		handlers.RespondBadRequest(w, msgMissingServiceType)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, serviceType, query.Get("durationMinutes"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid request params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /availability - Service not found: service_type=%s", serviceType)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /availability - Invalid duration: service_type=%s", serviceType)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /availability - Date too far in future: date=%s", dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability - Failed to get slots: date=%s, service_type=%s, error=%v",
				dateStr, serviceType, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - Slots retrieved successfully: date=%s, service_type=%s, slots_count=%d",
		dateStr, serviceType, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
