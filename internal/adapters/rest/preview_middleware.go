package rest

import (
	"listing-service/internal/constants"
	"listing-service/internal/contextkeys"
	"net/http"
)

// PreviewMiddleware переносит ключ предпросмотра из query-параметра в контекст,
// откуда его забирает клиент контент-сервиса.
func PreviewMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get(constants.PreviewKeyQueryParam)
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}
		ctx := contextkeys.ContextWithPreviewKey(r.Context(), key)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
