// Package maintenance holds the process-wide maintenance switch. Enabling it
// releases the database pool so the whole backend degrades to the fixed 503
// response; disabling re-acquires the pool and resumes service.
package maintenance

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// DatabaseGate is the slice of the connection pool the switch drives.
type DatabaseGate interface {
	Open() error
	Close() error
}

// Switch is the process-wide maintenance flag. Reads are lock-free; state
// transitions serialize so the flag and the pool never disagree for long.
// The flag is process-local: each backend instance gates independently.
type Switch struct {
	gate   DatabaseGate
	logger *slog.Logger

	mu      sync.Mutex
	enabled atomic.Bool
}

// NewSwitch creates a switch in the disabled state.
func NewSwitch(gate DatabaseGate, logger *slog.Logger) *Switch {
	return &Switch{gate: gate, logger: logger}
}

// Enabled reports whether maintenance mode is active.
func (s *Switch) Enabled() bool {
	return s.enabled.Load()
}

// SetEnabled transitions maintenance mode. Setting the current state again is
// a no-op, so repeated POSTs from operator tooling are harmless. Enabling
// closes the database pool; disabling reopens it. When reopening fails the
// switch stays enabled so the gate keeps answering 503 instead of surfacing
// connection errors.
func (s *Switch) SetEnabled(enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.enabled.Load() == enabled {
		return nil
	}

	if enabled {
		if err := s.gate.Close(); err != nil {
			return err
		}
		s.enabled.Store(true)
		s.logger.Info("maintenance mode enabled, database pool released")
		return nil
	}

	if err := s.gate.Open(); err != nil {
		return err
	}
	s.enabled.Store(false)
	s.logger.Info("maintenance mode disabled, database pool restored")
	return nil
}
