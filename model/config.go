package model

import "fmt"

// Config is fixed at construction, not reconfigurable mid-session. Speed is
// in moves per second.
type Config struct {
	GridSize       int
	InitialSpeed   float64
	SpeedIncrement float64
	MaxSpeed       float64
	FoodRetryBound int
}

func DefaultConfig() Config {
	return Config{
		GridSize:       20,
		InitialSpeed:   6,
		SpeedIncrement: 0.5,
		MaxSpeed:       15,
		FoodRetryBound: 1000,
	}
}

// Validate fails fast on programmer errors. A bad Config is never a runtime
// condition.
func (c Config) Validate() error {
	if c.GridSize < 3 {
		return fmt.Errorf("config: GridSize %d, need at least 3", c.GridSize)
	}
	if c.InitialSpeed <= 0 {
		return fmt.Errorf("config: InitialSpeed %v, must be positive", c.InitialSpeed)
	}
	if c.SpeedIncrement < 0 {
		return fmt.Errorf("config: SpeedIncrement %v, must not be negative", c.SpeedIncrement)
	}
	if c.MaxSpeed < c.InitialSpeed {
		return fmt.Errorf("config: MaxSpeed %v below InitialSpeed %v", c.MaxSpeed, c.InitialSpeed)
	}
	if c.FoodRetryBound < 1 {
		return fmt.Errorf("config: FoodRetryBound %d, need at least 1", c.FoodRetryBound)
	}
	return nil
}
