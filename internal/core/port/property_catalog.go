package port

import (
	"context"
	"listing-service/internal/core/domain"
)

// PropertyCatalogPort - контракт каталога объектов (мок-набор или Postgres).
type PropertyCatalogPort interface {
	ListAll(ctx context.Context) ([]domain.Property, error)
	// GetByID возвращает nil без ошибки, если объекта нет.
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	ListFiltered(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error)
}
