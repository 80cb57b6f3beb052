package content_client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"listing-service/internal/contextkeys"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", "secret", []string{"with-id", "static-url"}), srv
}

func TestClient_GetContent_SendsHeaders(t *testing.T) {
	var got *http.Request
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		_, _ = w.Write([]byte(`{"data":{"listedProperties":120}}`))
	})

	ctx := contextkeys.ContextWithTraceID(context.Background(), "trace-1")
	ctx = contextkeys.ContextWithPreviewKey(ctx, "preview-1")

	body, err := client.GetContent(ctx, "hero.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"listedProperties":120}`, string(body))

	require.NotNil(t, got)
	assert.Equal(t, "/storage/content/hero.json", got.URL.Path)
	assert.Equal(t, "Bearer secret", got.Header.Get("Authorization"))
	assert.Equal(t, "trace-1", got.Header.Get("X-Trace-ID"))
	assert.Equal(t, "preview-1", got.Header.Get("X-Ama-Preview-Key"))
	assert.Equal(t, "with-id,static-url", got.Header.Get("X-Ama-Plugins"))
}

func TestClient_GetContent_NoPreviewHeaderWithoutKey(t *testing.T) {
	var header http.Header
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Clone()
		_, _ = w.Write([]byte(`{"data":{}}`))
	})

	_, err := client.GetContent(context.Background(), "hero.json")
	require.NoError(t, err)
	assert.Empty(t, header.Get("X-Ama-Preview-Key"))
	assert.Empty(t, header.Get("X-Trace-ID"))
}

func TestClient_GetContent_StatusError(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusServiceUnavailable)
	})

	_, err := client.GetContent(context.Background(), "hero.json")
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "upstream exploded")
}

func TestClient_GetContent_Envelope(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"no data", `{}`, "has no data"},
		{"null data", `{"data":null}`, "has no data"},
		{"not json", `<html>`, "failed to decode content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetContent(context.Background(), "hero.json")
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestClient_ListCollection_WithFilter(t *testing.T) {
	var rawFilter string
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collections/properties/entries", r.URL.Path)
		rawFilter = r.URL.Query().Get("filter")
		_, _ = w.Write([]byte(`{"data":[{"id":"a"},{"id":"b"}]}`))
	})

	filter := And(GreaterOrEqual("price", 100), LessOrEqual("price", 200))
	entries, err := client.ListCollection(context.Background(), "properties", &filter)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	assert.JSONEq(t, `{"op":"and","exprs":[
		{"op":"gte","field":"price","value":100},
		{"op":"lte","field":"price","value":200}
	]}`, rawFilter)
}

func TestClient_ListCollection_WithoutFilter(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"data":null}`))
	})

	entries, err := client.ListCollection(context.Background(), "properties", nil)
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestClient_ListCollection_BadJSON(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	})

	_, err := client.ListCollection(context.Background(), "properties", nil)
	assert.Error(t, err)
}

func TestClient_GetCollectionEntry(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/collections/properties/entries/known":
			_, _ = w.Write([]byte(`{"data":{"id":"known"}}`))
		case "/collections/properties/entries/broken":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	})

	entry, found, err := client.GetCollectionEntry(context.Background(), "properties", "known")
	require.NoError(t, err)
	require.True(t, found)
	var decoded map[string]string
	require.NoError(t, json.Unmarshal(entry, &decoded))
	assert.Equal(t, "known", decoded["id"])

	entry, found, err = client.GetCollectionEntry(context.Background(), "properties", "missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, entry)

	_, _, err = client.GetCollectionEntry(context.Background(), "properties", "broken")
	var statusErr *StatusError
	assert.ErrorAs(t, err, &statusErr)
}

func TestClient_CancelledContext(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetContent(ctx, "hero.json")
	assert.ErrorIs(t, err, context.Canceled)
}
