// Package hal defines the narrow driver contracts the scale controller is
// written against.
//
// The controller never touches a bus or a pin directly. Each piece of
// hardware on the board sits behind one small interface:
//
//   - Sensor: the load-cell amplifier (HX711 class). Raw acquisition, tare
//     and the calibration factor live in the driver.
//   - Display: a 128x64 monochrome pixel display with text primitives and an
//     explicit Flush.
//   - Encoder and Button: the rotary knob's quadrature count and its
//     push-switch level.
//   - LEDStrip: the addressable LED bar with per-segment colour and Show.
//   - Clock: a monotonic time source with a blocking Sleep used only during
//     startup.
//
// Package sim provides in-memory implementations of every contract for
// tests, the headless runner and the terminal simulator.
package hal
