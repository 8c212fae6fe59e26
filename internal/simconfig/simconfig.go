// Package simconfig holds the simulation's startup tunables and the persisted
// display preferences. Tunables default to the demo's canonical constants and
// can be overridden per-run through SIM_* environment variables (a .env file
// in the working directory is honored).
package simconfig

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Params are the startup tunables. Fixed for the lifetime of a run; the
// simulation never reloads them.
type Params struct {
	// Step is the fixed physics step in time-units.
	Step float32
	// Speed is the magnitude of the moving body's initial velocity per axis
	// (it starts moving down-left at (-Speed, -Speed)).
	Speed float32
	// BoundX/BoundY are the world limits the moving body bounces off.
	BoundX float32
	BoundY float32
	// StillScale/MovingScale are half extents of the two squares.
	StillScale  float32
	MovingScale float32
	// MovingStart is the moving body's initial position; the still body sits
	// at the origin.
	MovingStart [2]float32
}

// Default returns the canonical demo parameters.
func Default() Params {
	return Params{
		Step:        0.012,
		Speed:       0.9,
		BoundX:      0.9,
		BoundY:      0.8,
		StillScale:  0.25,
		MovingScale: 0.05,
		MovingStart: [2]float32{0.7, 0.7},
	}
}

// Load returns the defaults with any SIM_* environment overrides applied.
// A missing .env file is fine; an unparsable or out-of-range override is an
// error, and startup should fail on it rather than simulate with garbage.
func Load() (Params, error) {
	_ = godotenv.Load()

	p := Default()
	for _, v := range []struct {
		key string
		dst *float32
	}{
		{"SIM_STEP", &p.Step},
		{"SIM_SPEED", &p.Speed},
		{"SIM_BOUND_X", &p.BoundX},
		{"SIM_BOUND_Y", &p.BoundY},
	} {
		if err := floatEnv(v.key, v.dst); err != nil {
			return Params{}, err
		}
	}
	if err := p.validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// floatEnv overwrites dst with the named env var when it is set.
func floatEnv(key string, dst *float32) error {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = float32(f)
	return nil
}

func (p Params) validate() error {
	if p.Step <= 0 {
		return fmt.Errorf("SIM_STEP must be positive, got %v", p.Step)
	}
	if p.Speed <= 0 {
		return fmt.Errorf("SIM_SPEED must be positive, got %v", p.Speed)
	}
	if p.BoundX <= 0 || p.BoundY <= 0 {
		return fmt.Errorf("bounds must be positive, got (%v, %v)", p.BoundX, p.BoundY)
	}
	return nil
}
