// Package crypto derives short fingerprints of sensor packages.
//
// A fingerprint is a keyless BLAKE2b digest over a canonical encoding of the
// package (length-prefixed code, then each value in shortest round-trip form),
// truncated to 10 bytes and hex-encoded. Two uploads of the same reading share
// a fingerprint, which makes duplicates easy to spot in logs.
package crypto
