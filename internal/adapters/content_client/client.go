package content_client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
	"net/http"
	"net/url"
	"strings"
)

// Client - клиент headless контент-сервиса.
// Таймаутов и ретраев нет: запрос живет столько, сколько живет контекст вызывающего.
type Client struct {
	baseURL    string // Например, "http://localhost:8282/v0/projects/nexnest-website"
	apiKey     string
	plugins    []string
	httpClient *http.Client
}

// NewClient - конструктор.
func NewClient(baseURL, apiKey string, plugins []string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		plugins:    append([]string(nil), plugins...),
		httpClient: &http.Client{},
	}
}

// doRequest - внутренний хелпер для выполнения запросов
func (c *Client) doRequest(ctx context.Context, method, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if traceID := contextkeys.TraceIDFromContext(ctx); traceID != "" {
		req.Header.Set("X-Trace-ID", traceID)
	}
	// Ключ превью приходит из входящего запроса сайта
	if previewKey := contextkeys.PreviewKeyFromContext(ctx); previewKey != "" {
		req.Header.Set("X-Ama-Preview-Key", previewKey)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	if len(c.plugins) > 0 {
		req.Header.Set("X-Ama-Plugins", strings.Join(c.plugins, ","))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request to content service: %w", err)
	}
	return resp, nil
}

// readBody читает тело ответа, превращая не-2xx статус в *StatusError.
func (c *Client) readBody(resp *http.Response, method, rawURL string) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from content service: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Method:     method,
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}
	return body, nil
}

// GetContent возвращает содержимое именованного блоба (например, hero.json),
// снятое с конверта {"data": ...}, как и у записей коллекций.
func (c *Client) GetContent(ctx context.Context, key string) (json.RawMessage, error) {
	clientLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component": "ContentClient",
		"method":    "GetContent",
		"key":       key,
	})

	rawURL := c.baseURL + "/storage/content/" + url.PathEscape(key)
	resp, err := c.doRequest(ctx, http.MethodGet, rawURL)
	if err != nil {
		clientLogger.Error("Failed to perform request to content service", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.readBody(resp, http.MethodGet, rawURL)
	if err != nil {
		clientLogger.Error("Received non-OK response from content service", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var apiResponse entryResponse
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		clientLogger.Error("Failed to decode content response", err, nil)
		return nil, fmt.Errorf("failed to decode content %q: %w", key, err)
	}
	if len(apiResponse.Data) == 0 || string(apiResponse.Data) == "null" {
		return nil, fmt.Errorf("content %q has no data", key)
	}

	clientLogger.Debug("Content received", port.Fields{"bytes": len(apiResponse.Data)})
	return apiResponse.Data, nil
}

// ListCollection возвращает записи коллекции. filter == nil означает "без фильтра".
func (c *Client) ListCollection(ctx context.Context, name string, filter *Expr) ([]json.RawMessage, error) {
	clientLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":  "ContentClient",
		"method":     "ListCollection",
		"collection": name,
	})

	rawURL := c.baseURL + "/collections/" + url.PathEscape(name) + "/entries"
	if filter != nil {
		encoded, err := json.Marshal(filter)
		if err != nil {
			clientLogger.Error("Failed to encode collection filter", err, nil)
			return nil, fmt.Errorf("failed to encode collection filter: %w", err)
		}
		rawURL += "?" + url.Values{"filter": []string{string(encoded)}}.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, rawURL)
	if err != nil {
		clientLogger.Error("Failed to perform request to content service", err, nil)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := c.readBody(resp, http.MethodGet, rawURL)
	if err != nil {
		clientLogger.Error("Received non-OK response from content service", err, port.Fields{"status_code": resp.StatusCode})
		return nil, err
	}

	var apiResponse collectionResponse
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		clientLogger.Error("Failed to decode collection response", err, nil)
		return nil, fmt.Errorf("failed to decode collection %q: %w", name, err)
	}

	clientLogger.Debug("Collection received", port.Fields{"entries": len(apiResponse.Data)})
	if apiResponse.Data == nil {
		return []json.RawMessage{}, nil
	}
	return apiResponse.Data, nil
}

// GetCollectionEntry возвращает одну запись коллекции.
// Второе значение false означает, что записи нет (сервис ответил 404).
func (c *Client) GetCollectionEntry(ctx context.Context, name, id string) (json.RawMessage, bool, error) {
	clientLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"component":  "ContentClient",
		"method":     "GetCollectionEntry",
		"collection": name,
		"entry_id":   id,
	})

	rawURL := c.baseURL + "/collections/" + url.PathEscape(name) + "/entries/" + url.PathEscape(id)
	resp, err := c.doRequest(ctx, http.MethodGet, rawURL)
	if err != nil {
		clientLogger.Error("Failed to perform request to content service", err, nil)
		return nil, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		clientLogger.Debug("Collection entry not found", nil)
		return nil, false, nil
	}

	body, err := c.readBody(resp, http.MethodGet, rawURL)
	if err != nil {
		clientLogger.Error("Received non-OK response from content service", err, port.Fields{"status_code": resp.StatusCode})
		return nil, false, err
	}

	var apiResponse entryResponse
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		clientLogger.Error("Failed to decode collection entry", err, nil)
		return nil, false, fmt.Errorf("failed to decode entry %q of collection %q: %w", id, name, err)
	}
	if len(apiResponse.Data) == 0 || string(apiResponse.Data) == "null" {
		return nil, false, nil
	}

	return apiResponse.Data, true, nil
}
