package scale

import (
	"time"

	"github.com/muurk/smartscale/internal/hal"
)

// Sampler reads the load cell at a fixed cadence.
type Sampler struct {
	sensor   hal.Sensor
	interval time.Duration
	samples  int
	last     time.Time
	started  bool
}

// NewSampler creates a sampler that averages samples conversions per read.
func NewSampler(sensor hal.Sensor, interval time.Duration, samples int) *Sampler {
	return &Sampler{sensor: sensor, interval: interval, samples: samples}
}

// Sample returns a new weight and true if a sample was due and the sensor
// had one. A due sample is consumed even when the sensor is not ready; the
// caller keeps its previous weight.
func (s *Sampler) Sample(now time.Time) (float64, bool) {
	if s.started && now.Sub(s.last) < s.interval {
		return 0, false
	}
	s.last = now
	s.started = true

	if !s.sensor.IsReady() {
		return 0, false
	}
	return s.sensor.ReadUnits(s.samples), true
}
