package usecase

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

type GetHeroStatsUseCase struct {
	content port.ContentRepositoryPort
}

func NewGetHeroStatsUseCase(content port.ContentRepositoryPort) *GetHeroStatsUseCase {
	return &GetHeroStatsUseCase{content: content}
}

func (uc *GetHeroStatsUseCase) Execute(ctx context.Context) (*domain.HeroStats, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetHeroStats",
	})

	ucLogger.Info("Use case started", nil)

	stats, err := uc.content.GetHeroStats(ctx)
	if err != nil {
		ucLogger.Error("Content repository returned an error", err, nil)
		return nil, err
	}

	ucLogger.Info("Use case finished successfully", port.Fields{
		"listed_properties": stats.ListedProperties,
		"happy_customers":   stats.HappyCustomers,
		"awards":            stats.Awards,
	})
	return stats, nil
}
