package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type FindPropertiesUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewFindPropertiesUseCase(catalog port.PropertyCatalogPort) *FindPropertiesUseCase {
	return &FindPropertiesUseCase{catalog: catalog}
}

func (uc *FindPropertiesUseCase) Execute(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "FindProperties",
		"filters":  filters,
	})

	ucLogger.Info("Use case started", nil)

	properties, err := uc.catalog.ListFiltered(ctx, filters)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err // Просто пробрасываем ошибку дальше
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(properties)})
	return properties, nil
}
