// Package config supplies the CLI defaults, overridable through BOMBS_*
// environment variables, and the clamping the game core expects its caller
// to have done.
package config

import (
	"os"
	"strconv"
)

const (
	DefaultRows       = 8
	DefaultCols       = 8
	DefaultLikelihood = 0.12

	MaxRows = 10
	MaxCols = 10

	// MaxLikelihood keeps boards playable; denser grids are mostly noise.
	MaxLikelihood = 0.5
)

func Rows() int {
	return intEnv("BOMBS_ROWS", DefaultRows)
}

func Cols() int {
	return intEnv("BOMBS_COLS", DefaultCols)
}

func Likelihood() float64 {
	return floatEnv("BOMBS_LIKELIHOOD", DefaultLikelihood)
}

func LogPath() string {
	if path := os.Getenv("BOMBS_LOG_PATH"); path != "" {
		return path
	}
	return "bombs.log"
}

// Clamp forces the game parameters into their supported ranges: dimensions
// into [1, 10], bomb likelihood into [0, 0.5]. The core never re-checks.
func Clamp(rows, cols int, likelihood float64) (int, int, float64) {
	rows = min(max(rows, 1), MaxRows)
	cols = min(max(cols, 1), MaxCols)
	likelihood = min(max(likelihood, 0), MaxLikelihood)
	return rows, cols, likelihood
}

func intEnv(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return fallback
}

func floatEnv(key string, fallback float64) float64 {
	if s := os.Getenv(key); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			return v
		}
	}
	return fallback
}
