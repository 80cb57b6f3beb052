package mockcatalog

import (
	"context"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"time"
)

// Latency - искусственные задержки, имитирующие сетевой бэкенд.
type Latency struct {
	ListAll      time.Duration
	GetByID      time.Duration
	ListFiltered time.Duration
}

// DefaultLatency совпадает с задержками демо-сайта.
var DefaultLatency = Latency{
	ListAll:      150 * time.Millisecond,
	GetByID:      120 * time.Millisecond,
	ListFiltered: 180 * time.Millisecond,
}

// Catalog - каталог в памяти поверх фиксированного набора.
// Набор не меняется после создания, поэтому блокировки не нужны.
type Catalog struct {
	properties []domain.Property
	latency    Latency
}

// NewCatalog - конструктор. Срез копируется, чтобы внешний код не мог поменять набор.
func NewCatalog(properties []domain.Property, latency Latency) *Catalog {
	owned := make([]domain.Property, len(properties))
	copy(owned, properties)
	return &Catalog{properties: owned, latency: latency}
}

func (c *Catalog) ListAll(ctx context.Context) ([]domain.Property, error) {
	if err := wait(ctx, c.latency.ListAll); err != nil {
		return nil, err
	}
	return domain.FilterProperties(c.properties, domain.PropertyFilters{}), nil
}

func (c *Catalog) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	if err := wait(ctx, c.latency.GetByID); err != nil {
		return nil, err
	}

	property, ok := domain.FindByID(c.properties, id)
	if !ok {
		contextkeys.LoggerFromContext(ctx).Debug("Property not found in mock catalog", port.Fields{
			"component":   "MockCatalog",
			"property_id": id,
		})
		return nil, nil
	}
	return &property, nil
}

func (c *Catalog) ListFiltered(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	if err := wait(ctx, c.latency.ListFiltered); err != nil {
		return nil, err
	}
	return domain.FilterProperties(c.properties, filters), nil
}

// wait выдерживает задержку, но не дольше, чем живет контекст.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
