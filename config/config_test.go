package config

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	var cfg Config
	_, err := toml.Decode(`
[App]
Port = 3000
[Redis]
TTL = "2m"
`, &cfg)
	require.NoError(t, err)
	assert.Equal(t, "2m0s", cfg.Redis.TTL.String())
	assert.EqualError(t, cfg.Validate(), "auth: JWTSecret is empty")

	cfg.Auth.JWTSecret = "secret"
	assert.NoError(t, cfg.Validate())
}
