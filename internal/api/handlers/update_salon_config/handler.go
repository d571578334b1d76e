package update_salon_config

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/salonconfig"
	"github.com/m04kA/SMC-SalonService/internal/service/salonconfig/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidConfig      = "некорректные значения конфигурации"
)

// UpdateConfigRequest HTTP request model
// Все поля опциональны - обновляются только переданные значения
type UpdateConfigRequest struct {
	SlotIntervalMinutes     *int `json:"slotIntervalMinutes,omitempty"`
	BufferMinutes           *int `json:"bufferMinutes,omitempty"`
	AdvanceBookingDays      *int `json:"advanceBookingDays,omitempty"`
	MinBookingNoticeMinutes *int `json:"minBookingNoticeMinutes,omitempty"`
}

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.UpdateConfigRequest{
		UserID:                  userID,
		SlotIntervalMinutes:     req.SlotIntervalMinutes,
		BufferMinutes:           req.BufferMinutes,
		AdvanceBookingDays:      req.AdvanceBookingDays,
		MinBookingNoticeMinutes: req.MinBookingNoticeMinutes,
	}

	result, err := h.service.Update(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, salonconfig.ErrAccessDenied):
			h.logger.Warn("PUT /config - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, salonconfig.ErrInvalidInput):
			h.logger.Warn("PUT /config - Invalid config values: %v", err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /config - Failed to update config: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /config - Config updated successfully: user_id=%d", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
