package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// ListContentPropertiesUseCase покрывает все списки из контент-сервиса:
// весь каталог (пустой фильтр), featured-объекты и объекты "в бюджете".
type ListContentPropertiesUseCase struct {
	content port.ContentRepositoryPort
}

func NewListContentPropertiesUseCase(content port.ContentRepositoryPort) *ListContentPropertiesUseCase {
	return &ListContentPropertiesUseCase{content: content}
}

func (uc *ListContentPropertiesUseCase) Execute(ctx context.Context, filters domain.ContentFilters) ([]domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "ListContentProperties",
		"filters":  filters,
	})

	ucLogger.Info("Use case started", nil)

	properties, err := uc.content.ListProperties(ctx, filters)
	if err != nil {
		ucLogger.Error("Content repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"total_found": len(properties)})
	return properties, nil
}
