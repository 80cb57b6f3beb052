package rest

import (
	"errors"
	"listing-service/internal/adapters/content_client"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ContentHandler обслуживает данные из контент-сервиса.
type ContentHandler struct {
	heroUC usecases_port.GetHeroStatsUseCase
	listUC usecases_port.ListContentPropertiesUseCase
	getUC  usecases_port.GetContentPropertyUseCase
}

func NewContentHandler(heroUC usecases_port.GetHeroStatsUseCase,
	listUC usecases_port.ListContentPropertiesUseCase,
	getUC usecases_port.GetContentPropertyUseCase) *ContentHandler {
	return &ContentHandler{
		heroUC: heroUC,
		listUC: listUC,
		getUC:  getUC,
	}
}

// writeRemoteError отвечает 502: ошибка пришла от контент-сервиса или по дороге к нему.
func writeRemoteError(w http.ResponseWriter, logger port.LoggerPort, err error) {
	fields := port.Fields{}
	var statusErr *content_client.StatusError
	if errors.As(err, &statusErr) {
		fields["upstream_status"] = statusErr.StatusCode
	}
	logger.Error("Content service request failed", err, fields)
	WriteJSONError(w, http.StatusBadGateway, "Content service is unavailable")
}

// GetHero обрабатывает GET /api/v1/content/hero
func (h *ContentHandler) GetHero(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetHero"})

	stats, err := h.heroUC.Execute(r.Context())
	if err != nil {
		writeRemoteError(w, logger, err)
		return
	}

	RespondWithJSON(w, http.StatusOK, HeroStatsResponse{
		ListedProperties: stats.ListedProperties,
		HappyCustomers:   stats.HappyCustomers,
		Awards:           stats.Awards,
	})
}

// ListProperties обрабатывает GET /api/v1/content/properties
func (h *ContentHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListContentProperties"})

	query := r.URL.Query()
	var (
		filters domain.ContentFilters
		err     error
	)
	if filters.MinPrice, err = parseInt(query, "minPrice"); err == nil {
		if filters.MaxPrice, err = parseInt(query, "maxPrice"); err == nil {
			filters.Featured, err = parseBool(query, "featured")
		}
	}
	if err != nil {
		logger.Warn("Invalid query parameter", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondWithList(w, r, logger, filters)
}

// ListFeatured обрабатывает GET /api/v1/content/properties/featured
func (h *ContentHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListFeaturedProperties"})
	featured := true
	h.respondWithList(w, r, logger, domain.ContentFilters{Featured: &featured})
}

func (h *ContentHandler) respondWithList(w http.ResponseWriter, r *http.Request, logger port.LoggerPort, filters domain.ContentFilters) {
	properties, err := h.listUC.Execute(r.Context(), filters)
	if err != nil {
		writeRemoteError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toPropertiesResponse(properties))
}

// GetProperty обрабатывает GET /api/v1/content/properties/{propertyID}
func (h *ContentHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "GetContentProperty",
		"property_id": propertyID,
	})

	property, err := h.getUC.Execute(r.Context(), propertyID)
	if err != nil {
		writeRemoteError(w, logger, err)
		return
	}
	if property == nil {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}
