package server

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zucenko/snaker/model"
)

func TestConfigFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"GRID_SIZE", "INITIAL_SPEED", "SPEED_INCREMENT", "MAX_SPEED", "FOOD_RETRY_BOUND"} {
		os.Unsetenv(key)
	}
	assert.Equal(t, model.DefaultConfig(), ConfigFromEnv())
}

func TestConfigFromEnvOverrides(t *testing.T) {
	os.Setenv("GRID_SIZE", "30")
	os.Setenv("MAX_SPEED", "25.5")
	os.Setenv("INITIAL_SPEED", "not-a-number")
	defer func() {
		os.Unsetenv("GRID_SIZE")
		os.Unsetenv("MAX_SPEED")
		os.Unsetenv("INITIAL_SPEED")
	}()

	cfg := ConfigFromEnv()
	assert.Equal(t, 30, cfg.GridSize)
	assert.Equal(t, 25.5, cfg.MaxSpeed)
	assert.Equal(t, model.DefaultConfig().InitialSpeed, cfg.InitialSpeed, "bad value falls back to default")
	require.NoError(t, cfg.Validate())
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "GS_NEW", GS_NEW.Name())
	assert.Equal(t, "GS_PLAY", GS_PLAY.Name())
	assert.Equal(t, "GS_OVER", GS_OVER.Name())
	assert.Equal(t, "GS_ERR", GS_ERR.Name())
}

func TestResponseCodeToHttp(t *testing.T) {
	assert.Equal(t, HTTP_SUCCESS, GAME_READY.ToHttp())
	assert.Equal(t, HTTP_NOT_FOUND, GAME_NOT_FOUND.ToHttp())
	assert.Equal(t, HTTP_BAD_REQUEST, GAME_INVALIDE.ToHttp())
}

func TestSessionFailSignalsOnce(t *testing.T) {
	gs := &GameSession{Errors: make(chan struct{}, 1)}
	gs.fail()
	gs.fail() // second failure is a consequence, must not block
	select {
	case <-gs.Errors:
	default:
		t.Fatal("expected one error signal")
	}
}
