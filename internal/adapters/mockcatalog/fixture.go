package mockcatalog

import (
	_ "embed"
	"fmt"
	"listing-service/internal/core/domain"

	"gopkg.in/yaml.v2"
)

//go:embed properties.yaml
var fixtureYAML []byte

type fixtureRecord struct {
	ID          string  `yaml:"id"`
	Title       string  `yaml:"title"`
	PriceUSD    int     `yaml:"price_usd"`
	City        string  `yaml:"city"`
	State       string  `yaml:"state"`
	Bedrooms    int     `yaml:"bedrooms"`
	Bathrooms   int     `yaml:"bathrooms"`
	SizeSqm     float64 `yaml:"size_sqm"`
	ImageURL    string  `yaml:"image_url"`
	Description string  `yaml:"description"`
}

// LoadFixture разбирает встроенный набор объектов.
// Каждый вызов возвращает новый срез, так что вызывающий владеет своей копией.
func LoadFixture() ([]domain.Property, error) {
	return parseFixture(fixtureYAML)
}

func parseFixture(data []byte) ([]domain.Property, error) {
	var records []fixtureRecord
	if err := yaml.UnmarshalStrict(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode property fixture: %w", err)
	}

	seen := make(map[string]struct{}, len(records))
	properties := make([]domain.Property, 0, len(records))
	for i, r := range records {
		if r.ID == "" {
			return nil, fmt.Errorf("fixture record %d has empty id", i)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("fixture record %d: duplicate id %q", i, r.ID)
		}
		seen[r.ID] = struct{}{}

		if r.PriceUSD < 0 || r.Bedrooms < 0 || r.Bathrooms < 0 || r.SizeSqm < 0 {
			return nil, fmt.Errorf("fixture record %q has negative numeric field", r.ID)
		}
		if !isStateCode(r.State) {
			return nil, fmt.Errorf("fixture record %q: state must be a 2-letter code, got %q", r.ID, r.State)
		}

		properties = append(properties, domain.Property{
			ID:          r.ID,
			Title:       r.Title,
			PriceUSD:    r.PriceUSD,
			City:        r.City,
			State:       r.State,
			Bedrooms:    r.Bedrooms,
			Bathrooms:   r.Bathrooms,
			SizeSqm:     r.SizeSqm,
			ImageURL:    r.ImageURL,
			Description: r.Description,
		})
	}

	return properties, nil
}

// isStateCode - ровно две латинские буквы.
func isStateCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c < 'a' || c > 'z' {
			return false
		}
	}
	return true
}
