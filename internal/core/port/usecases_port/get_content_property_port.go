package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type GetContentPropertyUseCase interface {
	Execute(ctx context.Context, id string) (*domain.Property, error)
}
