// Package binned provides the fixed-length numeric containers shared by the
// response-matrix packages: a 1-D [Array] of bin contents and a square
// [Matrix] indexed by true energy (row) and observed energy (column).
//
// Bins are numbered 1..N to match the energy axis (bin i covers roughly
// i keV before rebinning). Reads outside that range return 0, so bin 0 and
// bin N+1 behave as empty underflow and overflow bins. Names and labels are
// kept out of band by callers; the containers only carry shape and content.
package binned
