// Package store persists response matrices, simulated-particle counts and
// reference spectra.
//
// A container is a single SQLite database file holding named numeric
// objects. Each object is either a 1-D array or a square matrix; matrix rows
// are stored as little-endian IEEE-754 blobs so a write followed by a read
// reproduces every finite value bit for bit.
//
// The package also reads and writes the plain-text side files used around a
// response-matrix workflow: parameter/limit vectors, text spectra and
// correlation matrices.
package store
