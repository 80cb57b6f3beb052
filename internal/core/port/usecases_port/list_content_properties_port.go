package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type ListContentPropertiesUseCase interface {
	Execute(ctx context.Context, filters domain.ContentFilters) ([]domain.Property, error)
}
