// Package codebook loads the daily key settings operators share out of band.
//
// A codebook is a YAML file of dated entries. Because a codebook is secret
// key material it can also be carried sealed: the YAML encrypted under a
// passphrase with scrypt-derived ChaCha20-Poly1305, recognised by the .enc
// extension.
package codebook
