package content_repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"listing-service/internal/core/domain"
	"math"
	"strings"

	"github.com/google/uuid"
)

func toDomainHero(dto heroDTO) domain.HeroStats {
	return domain.HeroStats{
		ListedProperties: wholeNumber(dto.ListedProperties),
		HappyCustomers:   wholeNumber(dto.HappyCustomers),
		Awards:           wholeNumber(dto.Awards),
	}
}

func toDomainProperty(dto propertyDTO) (domain.Property, error) {
	imageURL, err := flattenImage(dto.Image)
	if err != nil {
		return domain.Property{}, err
	}

	id := dto.ID
	if id == "" {
		// Без плагина with-id у записей нет идентификатора
		id = uuid.NewString()
	}

	city, state := splitLocation(dto.Location)

	return domain.Property{
		ID:          id,
		Title:       dto.Name,
		PriceUSD:    wholeNumber(dto.Price),
		City:        city,
		State:       state,
		Bedrooms:    wholeNumber(dto.Bedrooms),
		Bathrooms:   wholeNumber(dto.Bathrooms),
		SizeSqm:     dto.Size,
		ImageURL:    imageURL,
		Description: dto.Description,
		Featured:    dto.Featured,
	}, nil
}

// wholeNumber переводит проверенное схемой целое (в том числе 890000.0) в int.
func wholeNumber(v float64) int {
	return int(math.Round(v))
}

// flattenImage сводит поле image к одной строке URL.
func flattenImage(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}

	if raw[0] == '"' {
		var url string
		if err := json.Unmarshal(raw, &url); err != nil {
			return "", fmt.Errorf("failed to decode image url: %w", err)
		}
		return url, nil
	}

	var image imageDTO
	if err := json.Unmarshal(raw, &image); err != nil {
		return "", fmt.Errorf("failed to decode image object: %w", err)
	}
	if image.URL != "" {
		return image.URL, nil
	}
	return image.Src, nil
}

// splitLocation разбирает строку вида "Palo Alto, CA".
// Штатом считается часть после последней запятой.
func splitLocation(location string) (city, state string) {
	idx := strings.LastIndex(location, ",")
	if idx < 0 {
		return strings.TrimSpace(location), ""
	}
	return strings.TrimSpace(location[:idx]), strings.TrimSpace(location[idx+1:])
}
