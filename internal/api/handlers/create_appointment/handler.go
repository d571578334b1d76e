package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/scheduling"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidDate        = "некорректный формат даты"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidDuration    = "некорректная длительность услуги"
	msgSalonClosed        = "салон закрыт в выбранную дату"
	msgDateInPast         = "дата записи уже прошла"
	msgOutsideHours       = "время находится вне рабочих часов салона"
	msgDateTooFar         = "дата записи слишком далеко в будущем"
	msgTooLateToBook      = "слишком поздно для записи на этот слот"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: user_id=%d, start=%s", userID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: user_id=%d, service_type=%s", userID, req.ServiceType)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrInvalidDuration),
			errors.Is(err, scheduling.ErrInvalidDuration):
			h.logger.Warn("POST /appointments - Invalid duration: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far in future: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, scheduling.ErrDateClosed):
			h.logger.Warn("POST /appointments - Salon closed: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, scheduling.ErrDateInPast):
			h.logger.Warn("POST /appointments - Date in past: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, scheduling.ErrOutsideBusinessHours):
			h.logger.Warn("POST /appointments - Outside business hours: user_id=%d, start=%s", userID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, scheduling.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: user_id=%d, start=%s", userID, req.StartTime)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, types.ErrInvalidDateFormat):
			h.logger.Warn("POST /appointments - Invalid date format: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, types.ErrInvalidTimeFormat):
			h.logger.Warn("POST /appointments - Invalid time format: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, user_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
