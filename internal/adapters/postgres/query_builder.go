package postgres

import (
	"fmt"
	"listing-service/internal/core/domain"
	"strings"
)

type queryBuilder struct {
	conditions []string
	args       []interface{}
	argId      int
}

func newQueryBuilder() *queryBuilder {
	return &queryBuilder{
		argId: 1,
		args:  make([]interface{}, 0),
	}
}

func (qb *queryBuilder) addCondition(condition string, fieldName string, arg interface{}) {
	qb.conditions = append(qb.conditions, fmt.Sprintf(condition, fieldName, qb.argId))
	qb.args = append(qb.args, arg)
	qb.argId++
}

// AddFloatFilter добавляет включительные границы. nil - граница не задана.
func (qb *queryBuilder) AddFloatFilter(fieldName string, min *float64, max *float64) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) AddIntFilter(fieldName string, min *int, max *int) {
	if min != nil {
		qb.addCondition("%s >= $%d", fieldName, *min)
	}
	if max != nil {
		qb.addCondition("%s <= $%d", fieldName, *max)
	}
}

func (qb *queryBuilder) build() (string, []interface{}) {
	whereClause := ""
	if len(qb.conditions) > 0 {
		whereClause = "WHERE " + strings.Join(qb.conditions, " AND ")
	}
	return whereClause, qb.args
}

// applyFilters строит WHERE с той же семантикой, что и domain.PropertyFilters.Matches.
func applyFilters(filters domain.PropertyFilters) (string, []interface{}) {
	qb := newQueryBuilder()

	qb.AddIntFilter("p.price_usd", filters.MinPrice, filters.MaxPrice)
	qb.AddIntFilter("p.bedrooms", filters.MinBedrooms, nil)
	qb.AddIntFilter("p.bathrooms", filters.MinBathrooms, nil)
	qb.AddFloatFilter("p.size_sqm", filters.MinSizeSqm, filters.MaxSizeSqm)

	// Штат - точное совпадение без учета регистра. Значение запроса сворачиваем так же,
	// как domain.SameState, а колонку - через lower(): в ней только ASCII-коды.
	if filters.State != "" {
		qb.addCondition("lower(%s) = $%d", "p.state", domain.FoldState(filters.State))
	}

	return qb.build()
}
