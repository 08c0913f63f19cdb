// Package commands defines the enigma CLI and wires dependencies for subcommands.
//
// Commands
//
//   - encode       Frame a message under a day's setting
//   - decode       Recover the plaintext of a received frame
//   - rotors       List the known rotors and reflectors
//   - codebook     Show the codebook entry for a day
//   - seal         Encrypt a plaintext codebook with a passphrase
//   - fingerprint  Print a short digest of a day's keyed setting
//
// # Implementation
//
// The root command loads configuration and builds the dependency graph
// (catalog, codebook, services) before any subcommand runs, so handlers share
// one app context. With --api set the catalog and codebook come from a
// running daemon instead of local files.
package commands
