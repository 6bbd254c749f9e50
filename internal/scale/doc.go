// Package scale is the control loop of the kitchen scale.
//
// An App owns all mutable state and advances it one Tick at a time:
//
//  1. read the button and derive a debounced press edge
//  2. toggle between measuring and setting mode on an edge
//  3. measuring: sample the load cell at most once per interval;
//     setting: read and clamp the encoder into the target range
//  4. redraw the display if what it shows has changed
//  5. update the LED bar if the truncated weight has changed
//
// Timing is done by comparing against the driver clock, never by sleeping,
// so the loop answers the button within one tick. The only blocking code
// is Start, the one-off startup sequence that tares the load cell.
//
// The LED bar shows progress toward the target as green segments, one per
// 10%. Past the target, every 10% of overshoot turns one segment red,
// starting from the first segment. See Segments.
package scale
