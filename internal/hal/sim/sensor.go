package sim

import "sync"

// Sensor models a load-cell amplifier. The raw reading is
// zero + load*countsPerGram; ReadUnits returns (raw-offset)/scale the way a
// real driver does after Tare and SetScale.
type Sensor struct {
	mu            sync.Mutex
	countsPerGram float64
	zero          float64
	load          float64
	ready         bool
	offset        float64
	scale         float64
	reads         int
	tares         int
}

// NewSensor creates a ready sensor with an empty pan.
func NewSensor(countsPerGram, zero float64) *Sensor {
	return &Sensor{
		countsPerGram: countsPerGram,
		zero:          zero,
		ready:         true,
		scale:         1,
	}
}

func (s *Sensor) raw() float64 {
	return s.zero + s.load*s.countsPerGram
}

// IsReady reports whether the sensor answers; see SetReady.
func (s *Sensor) IsReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ready
}

// ReadUnits returns the tared, scaled load. The simulated reading is
// noise free, so samples does not change the result.
func (s *Sensor) ReadUnits(samples int) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reads++
	return (s.raw() - s.offset) / s.scale
}

// Tare records the current raw reading as the zero offset.
func (s *Sensor) Tare(samples int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offset = s.raw()
	s.tares++
}

// SetScale sets the counts-per-gram divisor. Zero is ignored.
func (s *Sensor) SetScale(factor float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if factor != 0 {
		s.scale = factor
	}
}

// Place sets the mass on the pan in grams.
func (s *Sensor) Place(grams float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load = grams
}

// Add changes the mass on the pan by delta grams.
func (s *Sensor) Add(delta float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load += delta
}

// Load returns the mass on the pan in grams.
func (s *Sensor) Load() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load
}

// SetReady controls IsReady.
func (s *Sensor) SetReady(ready bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = ready
}

// Reads returns the number of ReadUnits calls.
func (s *Sensor) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

// Tares returns the number of Tare calls.
func (s *Sensor) Tares() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tares
}
