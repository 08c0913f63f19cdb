// Package machine implements the cryptographic core of the rotor cipher:
// the plugboard, the stepping rotor stack with its reflector, character and
// message encoding, and re-keying a setting from an indicator string.
//
// All functions are pure with respect to their inputs: a setting passed in is
// never mutated, stepping and re-keying return fresh snapshots. The cipher is
// reciprocal, so encoding ciphertext from the same starting setting yields the
// original plaintext.
package machine
