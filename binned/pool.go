package binned

import "sync"

// Pool provides sync.Pool-based Array reuse for scratch spectra that are
// loaded, consumed and discarded once per bin.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Array{}
			},
		},
	}
}

// Get returns a zeroed Array with n bins.
// Callers must return it via Put when done.
func (p *Pool) Get(n int) *Array {
	a := p.pool.Get().(*Array)
	a.Resize(n)
	return a
}

// Put returns an Array to the pool for reuse.
// The caller must not use the array after calling Put.
func (p *Pool) Put(a *Array) {
	if a == nil {
		return
	}
	p.pool.Put(a)
}
