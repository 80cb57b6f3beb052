package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:embed schema.sql
var schemaSQL string

const selectColumns = `p.id, p.title, p.price_usd, p.city, p.state, p.bedrooms, p.bathrooms, p.size_sqm, p.image_url, p.description`

// DB - часть *pgxpool.Pool, нужная каталогу.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// PropertyCatalogAdapter - каталог объектов в PostgreSQL.
// Порядок выдачи задается колонкой position, как порядок записей в фикстуре.
type PropertyCatalogAdapter struct {
	db DB
}

func NewPropertyCatalogAdapter(db DB) (*PropertyCatalogAdapter, error) {
	if db == nil {
		return nil, fmt.Errorf("database pool cannot be nil")
	}
	return &PropertyCatalogAdapter{db: db}, nil
}

// EnsureSchema создает таблицу properties, если ее еще нет.
func (a *PropertyCatalogAdapter) EnsureSchema(ctx context.Context) error {
	if _, err := a.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply properties schema: %w", err)
	}
	return nil
}

// Seed загружает объекты, если таблица пуста. Позиция берется из порядка в срезе.
func (a *PropertyCatalogAdapter) Seed(ctx context.Context, properties []domain.Property) (int, error) {
	logger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "PostgresPropertyCatalog",
		"method":    "Seed",
	})

	var count int
	if err := a.db.QueryRow(ctx, `SELECT COUNT(*) FROM properties`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	if count > 0 {
		logger.Info("Properties table is not empty, skipping seed", port.Fields{"existing": count})
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i, p := range properties {
		batch.Queue(`
			INSERT INTO properties (id, position, title, price_usd, city, state, bedrooms, bathrooms, size_sqm, image_url, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			ON CONFLICT (id) DO NOTHING`,
			p.ID, i+1, p.Title, p.PriceUSD, p.City, p.State, p.Bedrooms, p.Bathrooms, p.SizeSqm, p.ImageURL, p.Description,
		)
	}

	results := a.db.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range properties {
		tag, err := results.Exec()
		if err != nil {
			return inserted, fmt.Errorf("failed to seed properties: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}

	logger.Info("Properties table seeded", port.Fields{"inserted": inserted})
	return inserted, nil
}

func (a *PropertyCatalogAdapter) ListAll(ctx context.Context) ([]domain.Property, error) {
	return a.ListFiltered(ctx, domain.PropertyFilters{})
}

func (a *PropertyCatalogAdapter) ListFiltered(ctx context.Context, filters domain.PropertyFilters) ([]domain.Property, error) {
	whereClause, args := applyFilters(filters)
	query := fmt.Sprintf(`SELECT %s FROM properties p %s ORDER BY p.position ASC`, selectColumns, whereClause)

	contextkeys.LoggerFromContext(ctx).Debug("Querying properties", port.Fields{
		"component": "PostgresPropertyCatalog",
		"where":     whereClause,
	})

	rows, err := a.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := make([]domain.Property, 0)
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate properties: %w", err)
	}
	return properties, nil
}

func (a *PropertyCatalogAdapter) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties p WHERE p.id = $1`, selectColumns)

	p, err := scanProperty(a.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func scanProperty(row pgx.Row) (domain.Property, error) {
	var p domain.Property
	err := row.Scan(&p.ID, &p.Title, &p.PriceUSD, &p.City, &p.State, &p.Bedrooms, &p.Bathrooms, &p.SizeSqm, &p.ImageURL, &p.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Property{}, err
		}
		return domain.Property{}, fmt.Errorf("failed to scan property: %w", err)
	}
	return p, nil
}
