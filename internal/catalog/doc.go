// Package catalog resolves rotor and reflector definitions by name.
//
// A Memory catalog ships with the historical wheel set and can be extended
// from a YAML file. Entries are validated on insertion: a wiring must be a
// 26-letter permutation of the alphabet and notches must be single letters.
package catalog
