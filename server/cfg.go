package server

import (
	"fmt"
	"os"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/zucenko/snaker/model"
)

const HTTP_SUCCESS = 200
const HTTP_BAD_REQUEST = 400
const HTTP_NOT_FOUND = 404
const HTTP_TIMEOUT = 408
const HTTP_SERVER_ERR = 503

type ResponseCode int

const (
	GAME_READY ResponseCode = iota
	GAME_NOT_FOUND
	GAME_INVALIDE
)

func (h ResponseCode) ToHttp() int {
	switch h {
	case GAME_READY:
		return HTTP_SUCCESS
	case GAME_NOT_FOUND:
		return HTTP_NOT_FOUND
	case GAME_INVALIDE:
		return HTTP_BAD_REQUEST
	default:
		panic(h)
	}
}

func (gss GameSessionState) Name() string {
	switch gss {
	case GS_NEW:
		return "GS_NEW"
	case GS_PLAY:
		return "GS_PLAY"
	case GS_OVER:
		return "GS_OVER"
	case GS_ERR:
		return "GS_ERR"
	default:
		return fmt.Sprintf("n/a:%d", gss)
	}
}

type GameContextAwaiting struct {
	ResponseCode ResponseCode
	GameSession  *GameSession
}

type GameRequest struct {
	GameContextAwaiting chan GameContextAwaiting
}

// ConfigFromEnv starts from the defaults and lets the environment override
// single values. Bad values are logged and skipped rather than guessed at.
func ConfigFromEnv() model.Config {
	cfg := model.DefaultConfig()
	if v, ok := envInt("GRID_SIZE"); ok {
		cfg.GridSize = v
	}
	if v, ok := envFloat("INITIAL_SPEED"); ok {
		cfg.InitialSpeed = v
	}
	if v, ok := envFloat("SPEED_INCREMENT"); ok {
		cfg.SpeedIncrement = v
	}
	if v, ok := envFloat("MAX_SPEED"); ok {
		cfg.MaxSpeed = v
	}
	if v, ok := envInt("FOOD_RETRY_BOUND"); ok {
		cfg.FoodRetryBound = v
	}
	return cfg
}

func envInt(key string) (int, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		log.Warnf("ignoring %s=%q: %v", key, s, err)
		return 0, false
	}
	return v, true
}

func envFloat(key string) (float64, bool) {
	s := os.Getenv(key)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Warnf("ignoring %s=%q: %v", key, s, err)
		return 0, false
	}
	return v, true
}
