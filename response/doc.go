// Package response assembles detector response matrices from a library of
// mono-energetic reference simulations.
//
// For every energy bin i the [Builder] picks the simulation whose energy is
// closest to i, loads its simulated spectrum and shifts it by the truncated
// signed distance so the full-energy peak lands in bin i. The result is an
// N×N matrix whose row i is the detector response to gamma rays of energy i,
// plus the number of simulated particles behind each row.
//
// [Builder.Update] merges a matrix built from an older library with a newer
// library: only rows for which the newer library has a strictly closer
// simulation are rebuilt, all other rows are copied from the old matrix.
//
// Bins are independent of each other. By default they are processed in order
// on the calling goroutine; [WithWorkers] spreads them over several
// goroutines with identical results.
package response
