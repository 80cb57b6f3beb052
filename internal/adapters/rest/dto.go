package rest

import "listing-service/internal/core/domain"

// PropertyResponse - карточка объекта в ответе.
type PropertyResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	PriceUSD    int     `json:"price_usd"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Bedrooms    int     `json:"bedrooms"`
	Bathrooms   int     `json:"bathrooms"`
	SizeSqm     float64 `json:"size_sqm"`
	ImageURL    string  `json:"image_url"`
	Description string  `json:"description,omitempty"`
	Featured    bool    `json:"featured"`
}

type PropertiesResponse struct {
	Data  []PropertyResponse `json:"data"`
	Total int                `json:"total"`
}

type HeroStatsResponse struct {
	ListedProperties int `json:"listed_properties"`
	HappyCustomers   int `json:"happy_customers"`
	Awards           int `json:"awards"`
}

// ErrorResponse - стандартная структура для ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

func toPropertyResponse(p domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID,
		Title:       p.Title,
		PriceUSD:    p.PriceUSD,
		City:        p.City,
		State:       p.State,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		SizeSqm:     p.SizeSqm,
		ImageURL:    p.ImageURL,
		Description: p.Description,
		Featured:    p.Featured,
	}
}

func toPropertiesResponse(properties []domain.Property) PropertiesResponse {
	response := PropertiesResponse{
		Data:  make([]PropertyResponse, len(properties)),
		Total: len(properties),
	}
	for i, p := range properties {
		response.Data[i] = toPropertyResponse(p)
	}
	return response
}
