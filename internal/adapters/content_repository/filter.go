package content_repository

import (
	"listing-service/internal/adapters/content_client"
	"listing-service/internal/core/domain"
)

// Имена полей в схеме коллекции properties
const (
	fieldPrice    = "price"
	fieldFeatured = "featured"
)

// BuildPropertyFilter переводит ContentFilters в выражение контент-сервиса.
// nil означает "без фильтра". Все заданные ограничения объединяются через And.
func BuildPropertyFilter(filters domain.ContentFilters) *content_client.Expr {
	var exprs []content_client.Expr

	if filters.MinPrice != nil {
		exprs = append(exprs, content_client.GreaterOrEqual(fieldPrice, *filters.MinPrice))
	}
	if filters.MaxPrice != nil {
		exprs = append(exprs, content_client.LessOrEqual(fieldPrice, *filters.MaxPrice))
	}
	if filters.Featured != nil {
		exprs = append(exprs, content_client.Equals(fieldFeatured, *filters.Featured))
	}

	if len(exprs) == 0 {
		return nil
	}
	expr := content_client.And(exprs...)
	return &expr
}
