// Package app wires application dependencies for the binaries.
//
// It loads Config from file and environment, then builds the catalog,
// codebook and high-level services, exposing them via the Wire struct for
// commands to use.
package app
