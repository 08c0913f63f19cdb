// Package setting resolves a dated codebook entry and the rotor catalog into
// a ready machine setting.
package setting
