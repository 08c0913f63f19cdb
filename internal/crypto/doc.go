// Package crypto holds the small primitives that sit beside the cipher:
// short setting fingerprints for key verification between operators.
package crypto
