// Package numerator provides document auto-numbering.
// Counters live in memory and restart with the process.
package numerator

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Generator hands out document numbers.
type Generator interface {
	GetNextNumber(ctx context.Context, cfg Config, period time.Time) (string, error)
	SetNextNumber(ctx context.Context, cfg Config, period time.Time, value int64) error
}

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g., "ORD")
	Prefix string

	// IncludeYear adds year to the number
	IncludeYear bool

	// PadWidth is the minimum number width (default 5)
	PadWidth int

	// ResetPeriod: "year", "month", "never"
	ResetPeriod string
}

// DefaultConfig returns sensible defaults.
func DefaultConfig(prefix string) Config {
	return Config{
		Prefix:      prefix,
		IncludeYear: true,
		PadWidth:    5,
		ResetPeriod: "year",
	}
}

// Service keeps one counter per prefix and period.
type Service struct {
	mu       sync.Mutex
	counters map[string]int64
}

// New creates a numerator with all counters at zero.
func New() *Service {
	return &Service{
		counters: make(map[string]int64),
	}
}

// GetNextNumber generates the next document number.
// Pattern: PREFIX-YEAR-XXXXX (e.g., ORD-2026-00001)
func (s *Service) GetNextNumber(ctx context.Context, cfg Config, period time.Time) (string, error) {
	if s == nil {
		return "", fmt.Errorf("numerator service is not initialized")
	}
	if cfg.Prefix == "" {
		return "", fmt.Errorf("numerator prefix is empty")
	}

	key := buildKey(cfg, period)

	s.mu.Lock()
	s.counters[key]++
	num := s.counters[key]
	s.mu.Unlock()

	return formatNumber(cfg, period, num), nil
}

// SetNextNumber marks value as issued, so the next call returns at least value+1.
// Counters never move backwards.
func (s *Service) SetNextNumber(ctx context.Context, cfg Config, period time.Time, value int64) error {
	if value < 0 {
		return fmt.Errorf("numerator value %d is negative", value)
	}

	key := buildKey(cfg, period)

	s.mu.Lock()
	defer s.mu.Unlock()
	if value > s.counters[key] {
		s.counters[key] = value
	}
	return nil
}

// buildKey creates the sequence key based on config and period.
func buildKey(cfg Config, period time.Time) string {
	switch cfg.ResetPeriod {
	case "month":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006_01"))
	case "year":
		return fmt.Sprintf("%s_%s", cfg.Prefix, period.Format("2006"))
	default:
		return cfg.Prefix
	}
}

// formatNumber creates the final number string.
func formatNumber(cfg Config, period time.Time, num int64) string {
	padWidth := cfg.PadWidth
	if padWidth == 0 {
		padWidth = 5
	}

	if cfg.IncludeYear {
		return fmt.Sprintf("%s-%s-%0*d", cfg.Prefix, period.Format("2006"), padWidth, num)
	}
	return fmt.Sprintf("%s-%0*d", cfg.Prefix, padWidth, num)
}

// ParseNumber extracts numeric part from formatted number.
// Returns -1 if parsing fails.
func ParseNumber(formatted string) int64 {
	idx := strings.LastIndex(formatted, "-")
	if idx <= 0 {
		return -1
	}
	num, err := strconv.ParseInt(formatted[idx+1:], 10, 64)
	if err != nil || num < 0 {
		return -1
	}
	return num
}
