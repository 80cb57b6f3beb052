package port

import (
	"context"
	"listing-service/internal/core/domain"
)

// ContentRepositoryPort - контракт адаптера над headless контент-сервисом.
// Ошибки клиента (сеть, авторизация, битый ответ) пробрасываются как есть.
type ContentRepositoryPort interface {
	GetHeroStats(ctx context.Context) (*domain.HeroStats, error)
	ListProperties(ctx context.Context, filters domain.ContentFilters) ([]domain.Property, error)
	// GetPropertyByID возвращает nil без ошибки, если запись не найдена.
	GetPropertyByID(ctx context.Context, id string) (*domain.Property, error)
}
