package list_closures

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/closures/models"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

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

// Handle GET /api/v1/closures
// Query params: from (optional, YYYY-MM-DD; по умолчанию - сегодня)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListClosuresRequest{}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			h.logger.Warn("GET /closures - Invalid from date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.From = &from
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /closures - Failed to list closures: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /closures - Closures retrieved successfully: count=%d", len(result.Closures))
	handlers.RespondJSON(w, http.StatusOK, result)
}
