package usecases_port

import (
	"context"
	"listing-service/internal/core/domain"
)

type GetHeroStatsUseCase interface {
	Execute(ctx context.Context) (*domain.HeroStats, error)
}
