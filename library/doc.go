// Package library describes a set of mono-energetic reference simulations
// and finds, for each energy bin, the simulation whose energy lies closest.
//
// A library descriptor is a plain text file with one simulation per line:
//
//	<source> <energy> <simulated-particles>
//
// Fields are whitespace separated. Blank lines and lines starting with '#'
// are skipped.
package library
