package errchain_test

import (
	"math/rand"
	"testing"

	"codeberg.org/verist/errkit/errchain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaReleaseIsIdempotent(t *testing.T) {
	arena := errchain.NewArena(nil)

	released := 0
	h := arena.Acquire(func() { released++ })
	require.Equal(t, 1, arena.Live())

	arena.Release(h)
	arena.Release(h)
	arena.Release(errchain.NoHandle)

	assert.Equal(t, 1, released, "Expected the resource to be released exactly once")
	assert.Equal(t, 0, arena.Live())
}

func TestFactoryReleaseWalksChain(t *testing.T) {
	arena := errchain.NewArena(nil)
	f := errchain.NewFactory(arena)

	released := make(map[string]int)
	inner := f.Adopt("E2", "retry exhausted", arena.Acquire(func() { released["inner"]++ }))
	outer := f.Adopt("E1", "disk full", arena.Acquire(func() { released["outer"]++ }))

	c := f.Chain(inner, outer)
	f.Release(c)

	assert.Equal(t, 1, released["inner"])
	assert.Equal(t, 1, released["outer"])
	assert.Equal(t, 0, arena.Live())

	// The superseded inputs share handles with the composite; releasing
	// them afterwards must not double-free.
	f.Release(inner)
	f.Release(outer)
	assert.Equal(t, 1, released["inner"])
	assert.Equal(t, 1, released["outer"])
}

func TestAdoptOKReleasesImmediately(t *testing.T) {
	arena := errchain.NewArena(nil)
	f := errchain.NewFactory(arena)

	released := false
	c := f.Adopt(errchain.OK, "", arena.Acquire(func() { released = true }))

	assert.True(t, c.IsOK())
	assert.True(t, released, "Expected a success value to own nothing")
	assert.Equal(t, 0, arena.Live())
}

func TestReleaseDoesNotAffectIndependentChains(t *testing.T) {
	arena := errchain.NewArena(nil)
	f := errchain.NewFactory(arena)

	aReleased := false
	bReleased := false
	a := f.Adopt("EA", "first", arena.Acquire(func() { aReleased = true }))
	b := f.Adopt("EB", "second", arena.Acquire(func() { bReleased = true }))

	f.Release(a)

	assert.True(t, aReleased)
	assert.False(t, bReleased, "Expected an independently owned chain to survive")
	assert.Equal(t, "second [EB]", f.Render(b))
}

func TestArenaReleaseAll(t *testing.T) {
	arena := errchain.NewArena(nil)

	released := 0
	for i := 0; i < 8; i++ {
		arena.Acquire(func() { released++ })
	}

	arena.ReleaseAll()
	assert.Equal(t, 8, released)
	assert.Equal(t, 0, arena.Live())

	arena.ReleaseAll()
	assert.Equal(t, 8, released)
}

// Randomly constructs, chains and discards values in varied orders and
// checks that every resource is released exactly once.
func TestRandomChainAndDiscard(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for iter := 0; iter < 200; iter++ {
		arena := errchain.NewArena(nil)
		f := errchain.NewFactory(arena)

		counts := make([]int, 0, 16)
		chains := make([]*errchain.Chain, 0, 16)

		for i := 0; i < 16; i++ {
			switch rng.Intn(3) {
			case 0:
				idx := len(counts)
				counts = append(counts, 0)
				h := arena.Acquire(func() { counts[idx]++ })
				chains = append(chains, f.Adopt(errchain.Code("E"), "step", h))
			case 1:
				if len(chains) >= 2 {
					x := rng.Intn(len(chains))
					y := rng.Intn(len(chains))
					if x != y {
						merged := f.Chain(chains[x], chains[y])
						// Drop the inputs; the composite is authoritative.
						chains = append(chains[:max(x, y)], chains[max(x, y)+1:]...)
						chains = append(chains[:min(x, y)], chains[min(x, y)+1:]...)
						chains = append(chains, merged)
					}
				}
			case 2:
				if len(chains) > 0 {
					x := rng.Intn(len(chains))
					f.Release(chains[x])
					chains = append(chains[:x], chains[x+1:]...)
				}
			}
		}

		for _, c := range chains {
			require.NotEmpty(t, f.Render(c), "Expected live chains to stay renderable")
			f.Release(c)
		}

		require.Equal(t, 0, arena.Live(), "Expected no leaked resources")
		for i, n := range counts {
			require.Equal(t, 1, n, "Expected resource %d to be released exactly once", i)
		}
	}
}
