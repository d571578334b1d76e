package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
}

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// ServiceResponse элемент каталога услуг
type ServiceResponse struct {
	Type            string  `json:"type"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ServiceListResponse ответ с каталогом услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	catalog := domain.ServiceCatalog()

	services := make([]ServiceResponse, len(catalog))
	for i, svc := range catalog {
		services[i] = ServiceResponse{
			Type:            svc.Type,
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		}
	}

	h.logger.Info("GET /services - Catalog retrieved: services_count=%d", len(services))
	handlers.RespondJSON(w, http.StatusOK, ServiceListResponse{Services: services})
}
