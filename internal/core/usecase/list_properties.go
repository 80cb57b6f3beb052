package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type ListPropertiesUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewListPropertiesUseCase(catalog port.PropertyCatalogPort) *ListPropertiesUseCase {
	return &ListPropertiesUseCase{catalog: catalog}
}

func (uc *ListPropertiesUseCase) Execute(ctx context.Context) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListProperties",
	})

	ucLogger.Info("Use case started", nil)

	properties, err := uc.catalog.ListAll(ctx)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(properties)})
	return properties, nil
}
