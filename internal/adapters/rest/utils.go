package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// queryParseError - query-параметр есть, но не разбирается.
type queryParseError struct {
	param string
	value string
}

func (e *queryParseError) Error() string {
	return fmt.Sprintf("invalid value %q for query parameter %q", e.value, e.param)
}

// parseInt возвращает nil, если параметра нет.
func parseInt(query url.Values, key string) (*int, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &queryParseError{param: key, value: raw}
	}
	return &v, nil
}

func parseFloat(query url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &queryParseError{param: key, value: raw}
	}
	return &v, nil
}

func parseBool(query url.Values, key string) (*bool, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, &queryParseError{param: key, value: raw}
	}
	return &v, nil
}

func parseString(query url.Values, key string) string {
	return strings.TrimSpace(query.Get(key))
}
