package content_client

import "fmt"

// StatusError - контент-сервис ответил не 2xx.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("content service returned status %d for %s %s, body: %s", e.StatusCode, e.Method, e.URL, e.Body)
}
