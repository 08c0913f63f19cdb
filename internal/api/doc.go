// Package api is the HTTP surface: an echo server publishing the catalog,
// codebook and cipher, and a thin client that mirrors the catalog and
// codebook interfaces over the wire.
package api
