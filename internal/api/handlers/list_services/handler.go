package list_services

import (
	"net/http"

	"github.com/premium-barber/booking-service/internal/api/handlers"
	"github.com/premium-barber/booking-service/internal/domain"
)

type Handler struct {
	catalog *domain.ServiceCatalog
	logger  Logger
}

func NewHandler(catalog *domain.ServiceCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// ServiceResponse is one catalog entry.
type ServiceResponse struct {
	Name            string `json:"name"`
	Category        string `json:"category"`
	DurationMinutes int    `json:"durationMinutes"`
	PriceMinorUnits int64  `json:"priceMinorUnits"`
}

// ServiceListResponse wraps the catalog listing.
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	defs := h.catalog.Services()

	out := make([]ServiceResponse, len(defs))
	for i, def := range defs {
		out[i] = ServiceResponse{
			Name:            def.Name,
			Category:        string(def.Category),
			DurationMinutes: def.DurationMinutes,
			PriceMinorUnits: def.PriceMinorUnits,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, ServiceListResponse{Services: out})
}
