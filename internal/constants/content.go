package constants

// Имена в контент-сервисе
const (
	HeroContentKey           = "hero.json"
	PropertiesCollectionName = "properties"
)

// PreviewKeyQueryParam - query-параметр, в котором сайт передает ключ предпросмотра черновиков.
const PreviewKeyQueryParam = "amaPreviewKey"

// Плагины контент-сервиса: with-id добавляет id записям коллекции,
// static-url превращает объекты изображений в готовые URL.
var DefaultContentPlugins = []string{"with-id", "static-url"}
