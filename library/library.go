package library

import (
	"errors"
	"math"
)

// Errors returned by nearest-match searches.
var (
	// ErrEmptyLibrary is returned when a nearest-match search has no entries.
	ErrEmptyLibrary = errors.New("library: no simulations available")

	// ErrNoFiniteEnergy is returned when no entry has a finite energy.
	ErrNoFiniteEnergy = errors.New("library: no simulation with a finite energy")
)

// Entry is one reference simulation.
type Entry struct {
	Source    string  // identifier of the container holding the simulated spectrum
	Energy    float64 // simulated gamma-ray energy in keV
	Particles float64 // number of simulated primary particles
}

// Library is an ordered collection of reference simulations. Order only
// matters when two entries are equally close to a bin: the first one wins.
type Library []Entry

// Match is the result of a nearest-energy search for one bin.
type Match struct {
	Index    int     // position of the winning entry in the library
	Distance float64 // signed distance Energy - bin of the winning entry
}

// Shift returns the signed distance truncated toward zero. It is the number
// of bins a spectrum simulated at the matched energy must be moved so its
// full-energy peak lands on the requested bin.
func (m Match) Shift() int {
	return int(m.Distance)
}

// Found reports whether the search selected an entry.
func (m Match) Found() bool {
	return m.Index >= 0
}

// Abs returns |Distance|.
func (m Match) Abs() float64 {
	return math.Abs(m.Distance)
}

// Nearest returns the entry whose energy is closest to bin. The sign of the
// distance is kept so the caller can shift the spectrum in the right
// direction. Ties are resolved in favour of the earlier entry. Entries with a
// non-finite energy never match.
//
// Without a match the result has Index -1 and an infinite distance.
func (l Library) Nearest(bin int) (Match, error) {
	best := Match{Index: -1, Distance: math.Inf(1)}
	if len(l) == 0 {
		return best, ErrEmptyLibrary
	}

	for j, e := range l {
		dist := e.Energy - float64(bin)
		if math.IsNaN(dist) || math.IsInf(dist, 0) {
			continue
		}
		if math.Abs(dist) < best.Abs() {
			best = Match{Index: j, Distance: dist}
		}
	}
	if !best.Found() {
		return best, ErrNoFiniteEnergy
	}
	return best, nil
}

// Energies returns the simulated energies in library order.
func (l Library) Energies() []float64 {
	out := make([]float64, len(l))
	for i, e := range l {
		out[i] = e.Energy
	}
	return out
}
