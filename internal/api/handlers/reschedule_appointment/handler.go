package reschedule_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/scheduling"
	rescheduleAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/reschedule_appointment"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTime          = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidDate          = "некорректный формат даты"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgCannotReschedule     = "запись нельзя перенести"
	msgSlotNotAvailable     = "выбранный временной слот недоступен"
	msgSalonClosed          = "салон закрыт в выбранную дату"
	msgDateInPast           = "дата записи уже прошла"
	msgOutsideHours         = "время находится вне рабочих часов салона"
	msgDateTooFar           = "дата записи слишком далеко в будущем"
	msgTooLateToBook        = "слишком поздно для записи на этот слот"
)

type Handler struct {
	useCase RescheduleAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/appointments/{appointmentId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	appointmentIDStr := vars["appointmentId"]

	appointmentID, err := strconv.ParseInt(appointmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id}/reschedule - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /appointments/{id}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /appointments/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(appointmentID, userID)
	if err != nil {
		h.logger.Warn("PUT /appointments/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleAppointment.ErrAccessDenied):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Access denied: appointment_id=%d, user_id=%d",
				appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleAppointment.ErrCannotReschedule):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Cannot reschedule: appointment_id=%d", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgCannotReschedule)

		case errors.Is(err, rescheduleAppointment.ErrSlotNotAvailable):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Slot not available: appointment_id=%d, start=%s",
				appointmentID, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, rescheduleAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Date too far in future: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, scheduling.ErrDateClosed):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Salon closed: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, scheduling.ErrDateInPast):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Date in past: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, scheduling.ErrOutsideBusinessHours):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Outside business hours: appointment_id=%d, start=%s",
				appointmentID, req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, scheduling.ErrTooLateToBook):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Too late to book: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgTooLateToBook)

		case errors.Is(err, types.ErrInvalidDateFormat):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Invalid date format: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, types.ErrInvalidTimeFormat):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Invalid time format: appointment_id=%d", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, rescheduleAppointment.ErrInvalidInput):
			h.logger.Warn("PUT /appointments/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /appointments/{id}/reschedule - Failed to reschedule: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /appointments/{id}/reschedule - Appointment rescheduled successfully: appointment_id=%d, user_id=%d",
		appointmentID, userID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
