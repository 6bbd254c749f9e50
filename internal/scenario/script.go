package scenario

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultTick is the simulated time between controller ticks.
const DefaultTick = time.Millisecond

// Script is a timed bench session.
type Script struct {
	Name     string        `yaml:"name"`
	Duration time.Duration `yaml:"duration"`
	Tick     time.Duration `yaml:"tick,omitempty"`
	Steps    []Step        `yaml:"steps"`
}

// Step is applied to the board once the session reaches At. Unset fields
// leave the board alone.
type Step struct {
	At     time.Duration `yaml:"at"`
	Weight *float64      `yaml:"weight,omitempty"` // grams on the pan
	Ready  *bool         `yaml:"ready,omitempty"`  // load cell answering
	Press  bool          `yaml:"press,omitempty"`  // click the knob
	Turn   int           `yaml:"turn,omitempty"`   // detents, negative turns down
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if s.Tick == 0 {
		s.Tick = DefaultTick
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks step ordering and timing.
func (s *Script) Validate() error {
	if s.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if s.Tick <= 0 {
		return fmt.Errorf("tick must be positive")
	}
	var prev time.Duration
	for i, step := range s.Steps {
		if step.At < 0 || step.At > s.Duration {
			return fmt.Errorf("step %d at %v outside [0, %v]", i+1, step.At, s.Duration)
		}
		if step.At < prev {
			return fmt.Errorf("step %d at %v is before step %d at %v", i+1, step.At, i, prev)
		}
		prev = step.At
	}
	return nil
}
