package response_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-rema/internal/testutil"
	"github.com/cwbudde/algo-rema/library"
	"github.com/cwbudde/algo-rema/response"
	"github.com/cwbudde/algo-rema/store"
)

func writeSimulation(t *testing.T, dir, source string, n int, energy float64) {
	t.Helper()
	ctx := context.Background()
	c, err := store.Create(ctx, filepath.Join(dir, source))
	require.NoError(t, err)
	require.NoError(t, c.PutArray(ctx, "edep", testutil.MonoEnergetic(n, energy, 1000)))
	require.NoError(t, c.Close())
}

func TestBuildPersistUpdateWithContainers(t *testing.T) {
	const n = 96
	ctx := context.Background()
	dir := t.TempDir()

	oldLib := library.Library{
		{Source: "sim_20.db", Energy: 20, Particles: 1e5},
		{Source: "sim_70.db", Energy: 70, Particles: 2e5},
	}
	newLib := library.Library{
		{Source: "sim_45.db", Energy: 45, Particles: 3e5},
	}
	for _, e := range append(append(library.Library{}, oldLib...), newLib...) {
		writeSimulation(t, dir, e.Source, n, e.Energy)
	}

	b := response.NewBuilder(store.SpectrumLoader{Dir: dir}, response.WithBins(n), response.WithWorkers(4))

	m, particles, err := b.Build(ctx, oldLib, "edep")
	require.NoError(t, err)

	// The full-energy peak of every row sits on the diagonal.
	for i := 1; i <= n; i++ {
		peak := 1
		for j := 2; j <= n; j++ {
			if m.At(i, j) > m.At(i, peak) {
				peak = j
			}
		}
		if m.At(i, peak) > 0 && peak != i {
			t.Fatalf("row %d: peak in column %d", i, peak)
		}
	}

	path := filepath.Join(dir, "rema.db")
	require.NoError(t, store.WriteMatrix(ctx, path, m, particles))

	oldM, oldP, err := store.ReadMatrix(ctx, path)
	require.NoError(t, err)
	require.True(t, particles.Equal(oldP))

	updated, updatedP, err := b.Update(ctx, oldLib, oldM, newLib, "edep")
	require.NoError(t, err)
	require.Equal(t, 3e5, updatedP.At(45))
	require.Equal(t, 1e5, updatedP.At(32))
	require.Equal(t, oldM.Row(10), updated.Row(10))

	full, _, err := b.Build(ctx, append(append(library.Library{}, oldLib...), newLib...), "edep")
	require.NoError(t, err)
	for i := 1; i <= n; i++ {
		require.Equalf(t, full.Row(i), updated.Row(i), "row %d", i)
	}
}

func TestBuildMissingSpectrumInContainer(t *testing.T) {
	dir := t.TempDir()
	writeSimulation(t, dir, "sim.db", 8, 4)

	b := response.NewBuilder(store.SpectrumLoader{Dir: dir}, response.WithBins(8))
	_, _, err := b.Build(context.Background(), library.Library{{Source: "sim.db", Energy: 4}}, "other")
	require.True(t, errors.Is(err, store.ErrObjectNotFound))
}
