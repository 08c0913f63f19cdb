// Command enigmad serves the rotor catalog, codebook and cipher over HTTP so
// operators can share one codebook without copying files around.
package main
