package domain

import (
	"golang.org/x/text/cases"
)

// PropertyFilters - критерии поиска по каталогу.
// Любое поле может быть не задано (nil или пустая строка) - тогда по этому измерению ограничения нет.
// Границы включительные. Min > Max не считается ошибкой, просто ничего не найдется.
type PropertyFilters struct {
	MinPrice     *int
	MaxPrice     *int
	MinBedrooms  *int
	MinBathrooms *int
	MinSizeSqm   *float64
	MaxSizeSqm   *float64
	State        string // точное совпадение без учета регистра
}

// ContentFilters - критерии для коллекции properties в контент-сервисе.
// Набор полей отличается от PropertyFilters: у контент-сервиса есть флаг featured,
// но нет штата и площади в фильтрах.
type ContentFilters struct {
	MinPrice *int
	MaxPrice *int
	Featured *bool
}

// IsEmpty - true, если не задано ни одного ограничения.
func (f PropertyFilters) IsEmpty() bool {
	return f.MinPrice == nil && f.MaxPrice == nil &&
		f.MinBedrooms == nil && f.MinBathrooms == nil &&
		f.MinSizeSqm == nil && f.MaxSizeSqm == nil &&
		f.State == ""
}

func (f ContentFilters) IsEmpty() bool {
	return f.MinPrice == nil && f.MaxPrice == nil && f.Featured == nil
}

// Matches проверяет, что объект удовлетворяет всем заданным ограничениям (логическое И).
func (f PropertyFilters) Matches(p Property) bool {
	if f.MinPrice != nil && p.PriceUSD < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && p.PriceUSD > *f.MaxPrice {
		return false
	}
	if f.MinBedrooms != nil && p.Bedrooms < *f.MinBedrooms {
		return false
	}
	if f.MinBathrooms != nil && p.Bathrooms < *f.MinBathrooms {
		return false
	}
	if f.MinSizeSqm != nil && p.SizeSqm < *f.MinSizeSqm {
		return false
	}
	if f.MaxSizeSqm != nil && p.SizeSqm > *f.MaxSizeSqm {
		return false
	}
	if f.State != "" && !SameState(p.State, f.State) {
		return false
	}
	return true
}

// FilterProperties возвращает подпоследовательность объектов, прошедших фильтр,
// в исходном порядке. Входной срез не меняется, результат - всегда новый срез.
func FilterProperties(properties []Property, filters PropertyFilters) []Property {
	result := make([]Property, 0, len(properties))
	for _, p := range properties {
		if filters.Matches(p) {
			result = append(result, p)
		}
	}
	return result
}

// FoldState приводит код штата к виду для сравнения без учета регистра.
// Хранимые коды - две ASCII-буквы, для них результат совпадает с lower() в PostgreSQL.
// cases.Caser хранит состояние, поэтому создаем его на каждый вызов.
func FoldState(state string) string {
	return cases.Fold().String(state)
}

// SameState сравнивает коды штатов без учета регистра.
func SameState(a, b string) bool {
	return FoldState(a) == FoldState(b)
}
