package domain

// Property - объект недвижимости в том виде, в котором его получает сайт.
// Одна и та же структура используется и для мок-каталога, и для данных из контент-сервиса.
type Property struct {
	ID          string
	Title       string
	PriceUSD    int
	City        string
	State       string // двухбуквенный код штата
	Bedrooms    int
	Bathrooms   int
	SizeSqm     float64
	ImageURL    string
	Description string
	Featured    bool // есть только в схеме контент-сервиса
}

// HeroStats - статистика для главного экрана (контент hero.json).
type HeroStats struct {
	ListedProperties int
	HappyCustomers   int
	Awards           int
}

// FindByID ищет объект линейным проходом.
// Второе значение false означает, что объекта с таким ID нет.
func FindByID(properties []Property, id string) (Property, bool) {
	for _, p := range properties {
		if p.ID == id {
			return p, true
		}
	}
	return Property{}, false
}
