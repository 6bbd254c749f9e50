// Package scenario drives the scale controller from a scripted bench
// session.
//
// A script is a YAML list of timed steps applied to a simulated board: put
// weight on the pan, make the load cell stop answering, click or turn the
// knob. The runner advances a manual clock one tick at a time, applies each
// step when its time comes and ticks the controller, so a multi-second
// session runs instantly and reproducibly.
//
//	name: pour-to-target
//	duration: 4s
//	steps:
//	  - at: 500ms
//	    press: true
//	  - at: 700ms
//	    turn: 40
//	  - at: 1s
//	    press: true
//	  - at: 1200ms
//	    weight: 25.4
package scenario
