// Package cipher exposes the indicator protocol keyed by date: resolve the
// day setting, then frame or unframe a message with the three-tier indicator
// scheme.
package cipher
