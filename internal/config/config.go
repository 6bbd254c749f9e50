package config

import "time"

// Config is the complete board configuration.
type Config struct {
	Version int           `yaml:"version"`
	Pins    Pins          `yaml:"pins"`
	Display DisplayConfig `yaml:"display"`
	LEDs    LEDConfig     `yaml:"leds"`
	Sensor  SensorConfig  `yaml:"sensor"`
	Input   InputConfig   `yaml:"input"`
	Target  TargetConfig  `yaml:"target"`
	Startup StartupConfig `yaml:"startup"`
}

// Pins records the GPIO wiring of the reference board.
type Pins struct {
	SensorData  int `yaml:"sensor_data"`  // HX711 DOUT
	SensorClock int `yaml:"sensor_clock"` // HX711 SCK
	EncoderCLK  int `yaml:"encoder_clk"`
	EncoderDT   int `yaml:"encoder_dt"`
	EncoderSW   int `yaml:"encoder_sw"` // push switch, active low
	I2CSDA      int `yaml:"i2c_sda"`
	I2CSCL      int `yaml:"i2c_scl"`
	LEDData     int `yaml:"led_data"`
}

// DisplayConfig describes the OLED panel.
type DisplayConfig struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Address uint16 `yaml:"address"` // I2C address
}

// LEDConfig describes the LED bar.
type LEDConfig struct {
	Count      int   `yaml:"count"`
	Brightness uint8 `yaml:"brightness"` // 0-255, fixed for the process lifetime
}

// SensorConfig controls weight acquisition.
type SensorConfig struct {
	CalibrationFactor float64       `yaml:"calibration_factor"` // raw counts per gram
	SampleInterval    time.Duration `yaml:"sample_interval"`
	SampleCount       int           `yaml:"sample_count"` // conversions averaged per sample
	TareSamples       int           `yaml:"tare_samples"`
}

// InputConfig controls the knob and button.
type InputConfig struct {
	DebounceWindow time.Duration `yaml:"debounce_window"`
}

// TargetConfig bounds the target weight in grams.
type TargetConfig struct {
	Min     int `yaml:"min"`
	Max     int `yaml:"max"`
	Initial int `yaml:"initial"`
}

// StartupConfig times the one-off startup sequence.
type StartupConfig struct {
	IntroDuration time.Duration `yaml:"intro_duration"` // rainbow animation before tare
	IntroFrame    time.Duration `yaml:"intro_frame"`
	ReadyHold     time.Duration `yaml:"ready_hold"` // "ready" screen before the loop starts
}

// Default returns the compiled-in configuration of the reference board.
func Default() *Config {
	return &Config{
		Version: 1,
		Pins: Pins{
			SensorData:  5,
			SensorClock: 18,
			EncoderCLK:  19,
			EncoderDT:   32,
			EncoderSW:   33,
			I2CSDA:      21,
			I2CSCL:      22,
			LEDData:     23,
		},
		Display: DisplayConfig{
			Width:   128,
			Height:  64,
			Address: 0x3C,
		},
		LEDs: LEDConfig{
			Count:      10,
			Brightness: 50,
		},
		Sensor: SensorConfig{
			CalibrationFactor: 393,
			SampleInterval:    150 * time.Millisecond,
			SampleCount:       1,
			TareSamples:       10,
		},
		Input: InputConfig{
			DebounceWindow: 200 * time.Millisecond,
		},
		Target: TargetConfig{
			Min:     1,
			Max:     999,
			Initial: 10,
		},
		Startup: StartupConfig{
			IntroDuration: 3 * time.Second,
			IntroFrame:    10 * time.Millisecond,
			ReadyHold:     time.Second,
		},
	}
}
