// Package sim implements every hal driver contract in memory.
//
// The simulated drivers stand in for the board on a workstation: tests use
// them as fakes, the headless runner feeds them from a scenario script, and
// the terminal simulator reads them back to draw the front panel. All of
// them are safe for concurrent use so a front panel can read while the
// control loop writes.
package sim
