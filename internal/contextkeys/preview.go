package contextkeys

import (
	"context"
)

type previewKeyType struct{}

var previewKey = previewKeyType{}

// ContextWithPreviewKey кладет ключ предпросмотра контент-сервиса (amaPreviewKey) в контекст.
// Пустой ключ не сохраняется.
func ContextWithPreviewKey(ctx context.Context, key string) context.Context {
	if key == "" {
		return ctx
	}
	return context.WithValue(ctx, previewKey, key)
}

func PreviewKeyFromContext(ctx context.Context) string {
	if key, ok := ctx.Value(previewKey).(string); ok {
		return key
	}
	return ""
}
