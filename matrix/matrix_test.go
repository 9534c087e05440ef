// SPDX-License-Identifier: MIT

// Package matrix_test verifies the boolean-grid representation:
// construction-time validation, the shared operation contract, and the
// canonical constructors.
package matrix_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/finpos/matrix"
	"github.com/katalvlaran/finpos/poset"
)

// vee builds the 3-element poset 0 ≤ 1, 0 ≤ 2 with 1 and 2 incomparable.
func vee(t *testing.T) *matrix.Poset {
	t.Helper()
	p, err := matrix.New([][]bool{
		{true, true, true},
		{false, true, false},
		{false, false, true},
	})
	require.NoError(t, err)
	return p
}

func TestNew_RejectsMalformedGrids(t *testing.T) {
	cases := []struct {
		name string
		grid [][]bool
	}{
		{"Ragged", [][]bool{{true, true}, {true}}},
		{"NonReflexive", [][]bool{{true, false}, {false, false}}},
		{"NonAntisymmetric", [][]bool{{true, true}, {true, true}}},
		{"NonTransitive", [][]bool{
			{true, true, false},
			{false, true, true},
			{false, false, true},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.New(tc.grid)
			require.ErrorIs(t, err, poset.ErrMalformedRelation)
		})
	}
}

func TestNewChain(t *testing.T) {
	want, err := matrix.New([][]bool{
		{true, true, true},
		{false, true, true},
		{false, false, true},
	})
	require.NoError(t, err)
	require.True(t, matrix.NewChain(3).Eq(want))
}

func TestNewAntichain(t *testing.T) {
	want, err := matrix.New([][]bool{
		{true, false, false},
		{false, true, false},
		{false, false, true},
	})
	require.NoError(t, err)
	require.True(t, matrix.NewAntichain(3).Eq(want))
}

func TestLeq(t *testing.T) {
	p := matrix.NewChain(3)

	ok, err := p.Leq(0, 2)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = p.Leq(2, 0)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = p.Leq(0, 3)
	require.ErrorIs(t, err, poset.ErrIndexOutOfRange)
	_, err = p.Leq(-1, 0)
	require.ErrorIs(t, err, poset.ErrIndexOutOfRange)
}

func TestElements_Restartable(t *testing.T) {
	p := matrix.NewChain(3)
	seq := p.Elements()
	require.Equal(t, []poset.Element{0, 1, 2}, slices.Collect(seq))
	// A second range over the same sequence starts over.
	require.Equal(t, []poset.Element{0, 1, 2}, slices.Collect(seq))
}

func TestFindBot_FindTop_Chain(t *testing.T) {
	p := matrix.NewChain(3)
	p.FindBot()
	p.FindTop()

	b, err := p.Meta().Bot()
	require.NoError(t, err)
	require.Equal(t, poset.Known(0), b)

	tp, err := p.Meta().Top()
	require.NoError(t, err)
	require.Equal(t, poset.Known(2), tp)
}

func TestFindMinimals_FindMaximals(t *testing.T) {
	p := matrix.NewChain(3)
	p.FindMinimals()
	p.FindMaximals()
	mins, err := p.Meta().Minimals()
	require.NoError(t, err)
	require.Equal(t, []poset.Element{0}, mins.Sorted())
	maxs, err := p.Meta().Maximals()
	require.NoError(t, err)
	require.Equal(t, []poset.Element{2}, maxs.Sorted())

	q := matrix.NewAntichain(3)
	q.FindMinimals()
	q.FindMaximals()
	mins, err = q.Meta().Minimals()
	require.NoError(t, err)
	require.Equal(t, []poset.Element{0, 1, 2}, mins.Sorted())
	maxs, err = q.Meta().Maximals()
	require.NoError(t, err)
	require.Equal(t, []poset.Element{0, 1, 2}, maxs.Sorted())
}

// TestAntichain_NoBotNoTop: with n > 1 both universal elements are
// provably absent — computed, but not present.
func TestAntichain_NoBotNoTop(t *testing.T) {
	p := matrix.NewAntichain(3)
	p.FindBot()
	p.FindTop()

	b, err := p.Meta().Bot()
	require.NoError(t, err)
	require.False(t, b.Exists())

	tp, err := p.Meta().Top()
	require.NoError(t, err)
	require.False(t, tp.Exists())
}

func TestVee(t *testing.T) {
	p := vee(t)
	p.FindBot()
	p.FindTop()
	p.FindMinimals()
	p.FindMaximals()

	b, err := p.Meta().Bot()
	require.NoError(t, err)
	require.Equal(t, poset.Known(0), b)

	tp, err := p.Meta().Top()
	require.NoError(t, err)
	require.False(t, tp.Exists())

	mins, err := p.Meta().Minimals()
	require.NoError(t, err)
	require.Equal(t, []poset.Element{0}, mins.Sorted())

	maxs, err := p.Meta().Maximals()
	require.NoError(t, err)
	require.Equal(t, []poset.Element{1, 2}, maxs.Sorted())
}

func TestOp_Vee(t *testing.T) {
	want, err := matrix.New([][]bool{
		{true, false, false},
		{true, true, false},
		{true, false, true},
	})
	require.NoError(t, err)
	require.True(t, vee(t).Op().Eq(want))
}

func TestOp_Involution(t *testing.T) {
	for _, p := range []*matrix.Poset{matrix.NewChain(4), matrix.NewAntichain(3), vee(t)} {
		require.True(t, p.Op().Op().Eq(p))
	}
}

// TestOp_SwapsExtremes: the dual of the vee has its extremes mirrored.
func TestOp_SwapsExtremes(t *testing.T) {
	d := vee(t).Op()
	d.FindBot()
	d.FindTop()
	d.FindMinimals()
	d.FindMaximals()

	b, err := d.Meta().Bot()
	require.NoError(t, err)
	require.False(t, b.Exists())

	tp, err := d.Meta().Top()
	require.NoError(t, err)
	require.Equal(t, poset.Known(0), tp)

	mins, err := d.Meta().Minimals()
	require.NoError(t, err)
	require.Equal(t, []poset.Element{1, 2}, mins.Sorted())

	maxs, err := d.Meta().Maximals()
	require.NoError(t, err)
	require.Equal(t, []poset.Element{0}, maxs.Sorted())
}

func TestAdjoinBot(t *testing.T) {
	p := matrix.NewChain(2)
	p.AdjoinBot()

	require.Equal(t, 3, p.Meta().Len())
	b, err := p.Meta().Bot()
	require.NoError(t, err)
	require.Equal(t, poset.Known(2), b)
	mins, err := p.Meta().Minimals()
	require.NoError(t, err)
	require.Equal(t, []poset.Element{2}, mins.Sorted())

	// The new element sits below everything, including the old bottom.
	for _, x := range []poset.Element{0, 1, 2} {
		ok, err := p.Leq(2, x)
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, err := p.Leq(0, 2)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestAdjoinTop(t *testing.T) {
	p := matrix.NewAntichain(2)
	p.AdjoinTop()

	require.Equal(t, 3, p.Meta().Len())
	tp, err := p.Meta().Top()
	require.NoError(t, err)
	require.Equal(t, poset.Known(2), tp)
	maxs, err := p.Meta().Maximals()
	require.NoError(t, err)
	require.Equal(t, []poset.Element{2}, maxs.Sorted())

	for _, x := range []poset.Element{0, 1, 2} {
		ok, err := p.Leq(x, 2)
		require.NoError(t, err)
		require.True(t, ok)
	}
}

func TestNewCorolla(t *testing.T) {
	n := 3
	c := matrix.NewCorolla(n)
	require.Equal(t, n+1, c.Meta().Len())

	c.FindTop()
	c.FindMaximals()
	c.FindMinimals()

	b, err := c.Meta().Bot()
	require.NoError(t, err, "AdjoinBot records the bottom as part of the mutation")
	require.Equal(t, poset.Known(n), b)

	tp, err := c.Meta().Top()
	require.NoError(t, err)
	require.False(t, tp.Exists())

	mins, err := c.Meta().Minimals()
	require.NoError(t, err)
	require.Equal(t, 1, mins.Len())

	maxs, err := c.Meta().Maximals()
	require.NoError(t, err)
	require.Equal(t, n, maxs.Len())
}

func TestSub_PreservesIdentifiersAndRelation(t *testing.T) {
	p := matrix.NewChain(3)
	s, err := p.Sub(poset.NewElementSet(0, 2))
	require.NoError(t, err)

	require.Equal(t, 2, s.Meta().Len())
	require.Equal(t, []poset.Element{0, 2}, slices.Collect(s.Elements()))

	// The induced relation agrees with the original on the selection.
	ok, err := s.Leq(0, 2)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = s.Leq(2, 0)
	require.NoError(t, err)
	require.False(t, ok)

	// Dropped elements are no longer addressable.
	_, err = s.Leq(1, 2)
	require.ErrorIs(t, err, poset.ErrIndexOutOfRange)
}

func TestSub_UnknownSelector(t *testing.T) {
	_, err := matrix.NewChain(2).Sub(poset.NewElementSet(0, 5))
	require.ErrorIs(t, err, poset.ErrIndexOutOfRange)
}

func TestEmptyPoset(t *testing.T) {
	p := matrix.NewChain(0)
	require.Equal(t, 0, p.Meta().Len())
	p.FindBot()
	p.FindMinimals()

	b, err := p.Meta().Bot()
	require.NoError(t, err)
	require.False(t, b.Exists())

	mins, err := p.Meta().Minimals()
	require.NoError(t, err)
	require.Equal(t, 0, mins.Len())

	// Adjoining onto the empty poset yields the singleton with id 0.
	p.AdjoinBot()
	require.Equal(t, 1, p.Meta().Len())
	b, err = p.Meta().Bot()
	require.NoError(t, err)
	require.Equal(t, poset.Known(0), b)
}

// TestSingleton: for n = 1 chain, antichain and corolla-with-0-leaves
// coincide, and the sole element is both bottom and top.
func TestSingleton(t *testing.T) {
	p := matrix.NewChain(1)
	require.True(t, p.Eq(matrix.NewAntichain(1)))
	require.True(t, p.Eq(matrix.NewCorolla(0)))

	p.FindBot()
	p.FindTop()
	b, err := p.Meta().Bot()
	require.NoError(t, err)
	require.Equal(t, poset.Known(0), b)
	tp, err := p.Meta().Top()
	require.NoError(t, err)
	require.Equal(t, poset.Known(0), tp)
}

// TestMetadata_IsSnapshot: mutating the relation does not invalidate
// previously computed fields; they keep the old snapshot until the
// corresponding Find* runs again.
func TestMetadata_IsSnapshot(t *testing.T) {
	p := matrix.NewChain(2)
	p.FindMaximals()
	p.AdjoinBot()

	maxs, err := p.Meta().Maximals()
	require.NoError(t, err)
	require.Equal(t, []poset.Element{1}, maxs.Sorted(), "stale snapshot survives the mutation")

	p.FindMaximals()
	maxs, err = p.Meta().Maximals()
	require.NoError(t, err)
	require.Equal(t, []poset.Element{1}, maxs.Sorted(), "the chain's top is still the sole maximal")
}

func TestGrid_ReturnsCopy(t *testing.T) {
	p := matrix.NewChain(2)
	g := p.Grid()
	g[0][1] = false

	ok, err := p.Leq(0, 1)
	require.NoError(t, err)
	require.True(t, ok)
}
