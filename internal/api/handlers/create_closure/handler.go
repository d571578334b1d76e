package create_closure

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/closures"
	"github.com/m04kA/SMC-SalonService/internal/service/closures/models"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgClosureOverlaps    = "период закрытия пересекается с существующим"
)

// CreateClosureRequest HTTP request model
type CreateClosureRequest struct {
	StartDate types.FlexDate `json:"startDate"`
	EndDate   types.FlexDate `json:"endDate"`
	Reason    string         `json:"reason,omitempty"`
}

type Handler struct {
	service ClosureService
	logger  Logger
}

func NewHandler(service ClosureService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/closures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /closures - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateClosureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /closures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.CreateClosureRequest{
		UserID:    userID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, closures.ErrAccessDenied):
			h.logger.Warn("POST /closures - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, closures.ErrClosureOverlaps):
			h.logger.Warn("POST /closures - Closure overlaps: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgClosureOverlaps)

		case errors.Is(err, closures.ErrInvalidInput):
			h.logger.Warn("POST /closures - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /closures - Failed to create closure: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /closures - Closure created successfully: closure_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
