// Package indicator implements the three-tier re-keying protocol operators
// used to exchange a message key under cover of the shared daily key.
//
// A transmitted frame is prefix1 || prefix2 || body with no delimiter, both
// prefixes exactly one letter per rotor wide. Prefix1 is the
// indicator-indicator encrypted under the day setting; prefix2 is the message
// indicator encrypted under the setting keyed by the indicator-indicator; the
// body is encrypted under the setting keyed by the message indicator. The
// cipher being reciprocal, decoding runs the same transformation with the
// keys recovered segment by segment.
package indicator
