package content_repository

import "encoding/json"

// heroDTO - содержимое hero.json
type heroDTO struct {
	ListedProperties float64 `json:"listedProperties"`
	HappyCustomers   float64 `json:"happyCustomers"`
	Awards           float64 `json:"awards"`
}

// propertyDTO - запись коллекции properties.
// image приходит либо строкой (плагин static-url), либо объектом изображения.
// Целые поля читаются как float64: сервис может прислать 890000.0, схема такое пропускает.
type propertyDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Image       json.RawMessage `json:"image"`
	Price       float64         `json:"price"`
	Location    string          `json:"location"`
	Bedrooms    float64         `json:"bedrooms"`
	Bathrooms   float64         `json:"bathrooms"`
	Size        float64         `json:"size"`
	Description string          `json:"description"`
	Featured    bool            `json:"featured"`
}

type imageDTO struct {
	URL string `json:"url"`
	Src string `json:"src"`
}
