package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetContentPropertyUseCase struct {
	content port.ContentRepositoryPort
}

func NewGetContentPropertyUseCase(content port.ContentRepositoryPort) *GetContentPropertyUseCase {
	return &GetContentPropertyUseCase{content: content}
}

func (uc *GetContentPropertyUseCase) Execute(ctx context.Context, id string) (*domain.Property, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "GetContentProperty",
		"property_id": id,
	})

	ucLogger.Info("Use case started", nil)

	property, err := uc.content.GetPropertyByID(ctx, id)
	if err != nil {
		ucLogger.Error("Content repository returned an error", err, nil)
		return nil, err
	}
	if property == nil {
		ucLogger.Info("Property not found in content service", nil)
		return nil, nil
	}

	ucLogger.Info("Use case finished successfully", nil)
	return property, nil
}
