// Package cobs provides a Go implementation of Consistent Overhead Byte
// Stuffing (COBS).  Encoding rewrites an arbitrary byte buffer into an
// equivalent buffer containing no zero bytes, with a small bounded size
// overhead, so that a single zero byte can be used as an unambiguous frame
// delimiter on top of arbitrary binary payloads.  Decoding reconstructs the
// original buffer exactly.
package cobs
