package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"grid too small", func(c *Config) { c.GridSize = 2 }},
		{"zero speed", func(c *Config) { c.InitialSpeed = 0 }},
		{"negative speed", func(c *Config) { c.InitialSpeed = -1 }},
		{"negative increment", func(c *Config) { c.SpeedIncrement = -0.1 }},
		{"max below initial", func(c *Config) { c.MaxSpeed = 1; c.InitialSpeed = 2 }},
		{"zero retry bound", func(c *Config) { c.FoodRetryBound = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
