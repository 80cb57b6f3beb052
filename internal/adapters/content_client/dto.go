package content_client

import "encoding/json"

// collectionResponse - ответ на запрос списка записей коллекции.
type collectionResponse struct {
	Data []json.RawMessage `json:"data"`
}

// entryResponse - ответ на запрос одной записи или блоба контента.
type entryResponse struct {
	Data json.RawMessage `json:"data"`
}
