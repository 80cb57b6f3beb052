package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type ListPropertiesUseCase interface {
	Execute(ctx context.Context) ([]domain.Property, error)
}
