package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServerBaseURL_DefaultsToListenAddress(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	assert.Equal(t, "http://localhost:8080", cfg.ServerBaseURL())
}

func TestServerBaseURL_UsesConfiguredValue(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Server.BaseURL = "https://alumlink.example.com/"

	assert.Equal(t, "https://alumlink.example.com", cfg.ServerBaseURL())
}
