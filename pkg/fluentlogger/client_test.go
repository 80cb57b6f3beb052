package fluentlogger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(Config{Host: "127.0.0.1", Port: 24224})
	assert.ErrorContains(t, err, "tag prefix")

	_, err = NewClient(Config{Host: "127.0.0.1", TagPrefix: "listing-service"})
	assert.ErrorContains(t, err, "port")
}

func TestNewClient_AsyncDoesNotDial(t *testing.T) {
	client, err := NewClient(Config{Host: "127.0.0.1", Port: 1, TagPrefix: "listing-service"})
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.NoError(t, client.Close())
}
