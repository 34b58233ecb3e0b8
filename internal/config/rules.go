package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Rules holds the gameplay constants: snake size, speed progression and
// the food placement retry budget.
type Rules struct {
	InitialSpeed  int `yaml:"initial_speed"`   // Ticks per second after reset
	MaxSpeed      int `yaml:"max_speed"`       // Speed never grows past this
	SpeedUpEvery  int `yaml:"speed_up_every"`  // Speed +1 whenever score is a multiple of this
	MinIntervalMS int `yaml:"min_interval_ms"` // Floor for the tick interval
	FoodAttempts  int `yaml:"food_attempts"`   // Random samples before accepting an occupied cell
	InitialLength int `yaml:"initial_length"`  // Segments after reset
}

// DefaultRules returns the classic rules: speed 6..20, +1 every 3 points,
// 60ms interval floor, 2000 food samples, 3 segments.
func DefaultRules() Rules {
	return Rules{
		InitialSpeed:  6,
		MaxSpeed:      20,
		SpeedUpEvery:  3,
		MinIntervalMS: 60,
		FoodAttempts:  2000,
		InitialLength: 3,
	}
}

// Validate reports rules the engine cannot run with.
func (r Rules) Validate() error {
	var errs []error
	if r.InitialSpeed <= 0 {
		errs = append(errs, fmt.Errorf("initial_speed must be positive, got %d", r.InitialSpeed))
	}
	if r.MaxSpeed < r.InitialSpeed {
		errs = append(errs, fmt.Errorf("max_speed %d is below initial_speed %d", r.MaxSpeed, r.InitialSpeed))
	}
	if r.SpeedUpEvery <= 0 {
		errs = append(errs, fmt.Errorf("speed_up_every must be positive, got %d", r.SpeedUpEvery))
	}
	if r.MinIntervalMS < 0 {
		errs = append(errs, fmt.Errorf("min_interval_ms must not be negative, got %d", r.MinIntervalMS))
	}
	if r.FoodAttempts <= 0 {
		errs = append(errs, fmt.Errorf("food_attempts must be positive, got %d", r.FoodAttempts))
	}
	if r.InitialLength < 1 {
		errs = append(errs, fmt.Errorf("initial_length must be at least 1, got %d", r.InitialLength))
	}
	if len(errs) > 0 {
		return fmt.Errorf("rules: %w", errors.Join(errs...))
	}
	return nil
}

// NextSpeed returns the speed after the score has just become score.
// changed is false when the speed stays the same.
func (r Rules) NextSpeed(speed, score int) (next int, changed bool) {
	if score <= 0 || score%r.SpeedUpEvery != 0 {
		return speed, false
	}
	next = min(r.MaxSpeed, speed+1)
	return next, next != speed
}

// SpeedFor returns the speed reached after eating score food items from a
// fresh start.
func (r Rules) SpeedFor(score int) int {
	return min(r.MaxSpeed, r.InitialSpeed+max(0, score)/r.SpeedUpEvery)
}

// Interval converts a speed in ticks per second to a tick period:
// max(min_interval, round(1000/speed)) milliseconds.
func (r Rules) Interval(speed int) time.Duration {
	floor := time.Duration(r.MinIntervalMS) * time.Millisecond
	if speed <= 0 {
		return max(floor, time.Second)
	}
	ms := math.Round(1000 / float64(speed))
	return max(floor, time.Duration(ms)*time.Millisecond)
}
