package content_repository

import (
	"context"
	"encoding/json"
	"fmt"
	"listing-service/internal/adapters/content_client"
	"listing-service/internal/constants"
	"listing-service/internal/contextkeys"
	"listing-service/internal/contracts"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
)

// ContentClient - то, что репозиторию нужно от клиента контент-сервиса.
type ContentClient interface {
	GetContent(ctx context.Context, key string) (json.RawMessage, error)
	ListCollection(ctx context.Context, name string, filter *content_client.Expr) ([]json.RawMessage, error)
	GetCollectionEntry(ctx context.Context, name, id string) (json.RawMessage, bool, error)
}

// Repository реализует port.ContentRepositoryPort поверх контент-сервиса.
// Состояния нет: каждый вызов - один запрос к сервису.
type Repository struct {
	client ContentClient
}

func NewRepository(client ContentClient) *Repository {
	return &Repository{client: client}
}

func (r *Repository) GetHeroStats(ctx context.Context) (*domain.HeroStats, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ContentRepository",
		"method":    "GetHeroStats",
	})

	body, err := r.client.GetContent(ctx, constants.HeroContentKey)
	if err != nil {
		return nil, err
	}

	if err := contracts.Validate(contracts.HeroContentKey, body); err != nil {
		repoLogger.Error("Hero content does not match contract", err, nil)
		return nil, fmt.Errorf("invalid %s: %w", constants.HeroContentKey, err)
	}

	var dto heroDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", constants.HeroContentKey, err)
	}

	stats := toDomainHero(dto)
	return &stats, nil
}

func (r *Repository) ListProperties(ctx context.Context, filters domain.ContentFilters) ([]domain.Property, error) {
	repoLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ContentRepository",
		"method":    "ListProperties",
	})

	entries, err := r.client.ListCollection(ctx, constants.PropertiesCollectionName, BuildPropertyFilter(filters))
	if err != nil {
		return nil, err
	}

	properties := make([]domain.Property, 0, len(entries))
	for i, entry := range entries {
		property, err := decodeProperty(entry)
		if err != nil {
			repoLogger.Error("Failed to decode collection entry", err, port.Fields{"index": i})
			return nil, fmt.Errorf("entry %d of collection %q: %w", i, constants.PropertiesCollectionName, err)
		}
		properties = append(properties, property)
	}

	repoLogger.Debug("Properties mapped", port.Fields{"count": len(properties)})
	return properties, nil
}

func (r *Repository) GetPropertyByID(ctx context.Context, id string) (*domain.Property, error) {
	entry, found, err := r.client.GetCollectionEntry(ctx, constants.PropertiesCollectionName, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	property, err := decodeProperty(entry)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to decode collection entry", err, port.Fields{
			"component":   "ContentRepository",
			"method":      "GetPropertyByID",
			"property_id": id,
		})
		return nil, fmt.Errorf("entry %q of collection %q: %w", id, constants.PropertiesCollectionName, err)
	}
	return &property, nil
}

func decodeProperty(entry json.RawMessage) (domain.Property, error) {
	if err := contracts.Validate(contracts.PropertyContentKey, entry); err != nil {
		return domain.Property{}, err
	}
	var dto propertyDTO
	if err := json.Unmarshal(entry, &dto); err != nil {
		return domain.Property{}, fmt.Errorf("failed to decode property: %w", err)
	}
	return toDomainProperty(dto)
}
