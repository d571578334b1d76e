package delete_closure

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/closures"
	"github.com/m04kA/SMC-SalonService/internal/service/closures/models"
)

const (
	msgInvalidClosureID = "некорректный ID периода закрытия"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "доступ запрещен"
	msgNotFound         = "период закрытия не найден"
)

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

// Handle DELETE /api/v1/closures/{closureId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	closureIDStr := vars["closureId"]

	closureID, err := strconv.ParseInt(closureIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /closures/{id} - Invalid closure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClosureID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /closures/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	req := &models.DeleteClosureRequest{
		UserID:    userID,
		ClosureID: closureID,
	}

	if err := h.service.Delete(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, closures.ErrClosureNotFound):
			h.logger.Warn("DELETE /closures/{id} - Closure not found: closure_id=%d", closureID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, closures.ErrAccessDenied):
			h.logger.Warn("DELETE /closures/{id} - Access denied: closure_id=%d, user_id=%d", closureID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /closures/{id} - Failed to delete closure: closure_id=%d, error=%v", closureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /closures/{id} - Closure deleted successfully: closure_id=%d, user_id=%d", closureID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
