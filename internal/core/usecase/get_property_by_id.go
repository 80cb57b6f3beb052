package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetPropertyByIDUseCase struct {
	catalog port.PropertyCatalogPort
}

func NewGetPropertyByIDUseCase(catalog port.PropertyCatalogPort) *GetPropertyByIDUseCase {
	return &GetPropertyByIDUseCase{catalog: catalog}
}

// Execute возвращает (nil, nil), если объекта нет: для каталога это обычный исход, а не ошибка.
func (uc *GetPropertyByIDUseCase) Execute(ctx context.Context, id string) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetPropertyByID",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	property, err := uc.catalog.GetByID(ctx, id)
	if err != nil {
		ucLogger.Error("Catalog returned an error", err, nil)
		return nil, err
	}

	if property == nil {
		ucLogger.Info("Property not found", nil)
		return nil, nil
	}

	ucLogger.Info("Use case finished successfully", nil)
	return property, nil
}
