package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	cfg := &Config{Port: "8080", StorePath: "data/store.yaml", JWTSecret: "s3cret"}
	assert.NoError(t, cfg.Validate())

	t.Run("missing secret is fatal", func(t *testing.T) {
		cfg := &Config{Port: "8080", StorePath: "data/store.yaml"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing store path is fatal", func(t *testing.T) {
		cfg := &Config{Port: "8080", JWTSecret: "s3cret"}
		assert.Error(t, cfg.Validate())
	})
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.NotEmpty(t, cfg.Port)
	assert.NotEmpty(t, cfg.StorePath)
}
