// Package config holds the board configuration for the scale controller.
//
// The appliance has no file system and no settings storage: every value it
// runs with is compiled in and returned by Default. Pin assignments are
// recorded for reference; the drivers own the pins.
//
// # Bench Profiles
//
// On a workstation the simulator and the headless runner accept an optional
// YAML bench profile that overrides any subset of the defaults. Nothing is
// ever written back.
//
//	# slow-sampler.yaml
//	sensor:
//	  sample_interval: 500ms
//	startup:
//	  intro_duration: 0s
//
// Load applies a profile on top of Default and validates the result:
//
//	cfg, err := config.Load("slow-sampler.yaml")
//	if err != nil {
//	    return err
//	}
//
// Unknown keys are rejected so typos do not silently fall back to defaults.
package config
