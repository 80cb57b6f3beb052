package rest

import (
	"errors"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler обслуживает каталог объектов (мок или PostgreSQL).
type CatalogHandler struct {
	listUC usecases_port.ListPropertiesUseCase
	getUC  usecases_port.GetPropertyByIDUseCase
	findUC usecases_port.FindPropertiesUseCase
}

func NewCatalogHandler(listUC usecases_port.ListPropertiesUseCase,
	getUC usecases_port.GetPropertyByIDUseCase,
	findUC usecases_port.FindPropertiesUseCase) *CatalogHandler {
	return &CatalogHandler{
		listUC: listUC,
		getUC:  getUC,
		findUC: findUC,
	}
}

func parsePropertyFilters(query url.Values) (domain.PropertyFilters, error) {
	var (
		filters domain.PropertyFilters
		err     error
	)
	if filters.MinPrice, err = parseInt(query, "minPrice"); err != nil {
		return filters, err
	}
	if filters.MaxPrice, err = parseInt(query, "maxPrice"); err != nil {
		return filters, err
	}
	if filters.MinBedrooms, err = parseInt(query, "minBedrooms"); err != nil {
		return filters, err
	}
	if filters.MinBathrooms, err = parseInt(query, "minBathrooms"); err != nil {
		return filters, err
	}
	if filters.MinSizeSqm, err = parseFloat(query, "minSizeSqm"); err != nil {
		return filters, err
	}
	if filters.MaxSizeSqm, err = parseFloat(query, "maxSizeSqm"); err != nil {
		return filters, err
	}
	filters.State = parseString(query, "state")
	return filters, nil
}

// ListProperties обрабатывает GET /api/v1/properties
// Без query-параметров возвращается весь каталог, иначе - отфильтрованный.
func (h *CatalogHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ListProperties"})

	filters, err := parsePropertyFilters(r.URL.Query())
	if err != nil {
		var parseErr *queryParseError
		if errors.As(err, &parseErr) {
			logger.Warn("Invalid query parameter", port.Fields{"param": parseErr.param, "value": parseErr.value})
		}
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	var properties []domain.Property
	if filters.IsEmpty() {
		properties, err = h.listUC.Execute(r.Context())
	} else {
		properties, err = h.findUC.Execute(r.Context(), filters)
	}
	if err != nil {
		logger.Error("Catalog use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve properties")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertiesResponse(properties))
}

// GetProperty обрабатывает GET /api/v1/properties/{propertyID}
func (h *CatalogHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	propertyID := chi.URLParam(r, "propertyID")
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler":     "GetProperty",
		"property_id": propertyID,
	})

	property, err := h.getUC.Execute(r.Context(), propertyID)
	if err != nil {
		logger.Error("Get property use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Failed to retrieve property")
		return
	}
	if property == nil {
		WriteJSONError(w, http.StatusNotFound, "Property not found")
		return
	}

	RespondWithJSON(w, http.StatusOK, toPropertyResponse(*property))
}
