// SPDX-License-Identifier: MIT

package poset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/finpos/poset"
)

func TestElementSet_Basics(t *testing.T) {
	s := poset.NewElementSet(2, 0, 2)
	require.Equal(t, 2, s.Len(), "duplicates must collapse")
	require.True(t, s.Has(0))
	require.True(t, s.Has(2))
	require.False(t, s.Has(1))

	s.Add(1)
	require.Equal(t, 3, s.Len())
	require.Equal(t, []poset.Element{0, 1, 2}, s.Sorted())
}

func TestElementSet_CloneIsIndependent(t *testing.T) {
	s := poset.NewElementSet(0, 1)
	c := s.Clone()
	c.Add(7)
	require.False(t, s.Has(7))
	require.True(t, c.Has(7))
}

func TestElementSet_Intersect(t *testing.T) {
	cases := []struct {
		name string
		a, b poset.ElementSet
		want poset.ElementSet
	}{
		{"Overlap", poset.NewElementSet(0, 1, 2), poset.NewElementSet(1, 2, 3), poset.NewElementSet(1, 2)},
		{"Disjoint", poset.NewElementSet(0), poset.NewElementSet(1), poset.NewElementSet()},
		{"Empty", poset.NewElementSet(), poset.NewElementSet(0, 1), poset.NewElementSet()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.a.Intersect(tc.b)
			require.True(t, got.Equal(tc.want), "got %v, want %v", got.Sorted(), tc.want.Sorted())
		})
	}
}

func TestElementSet_Equal(t *testing.T) {
	require.True(t, poset.NewElementSet(1, 2).Equal(poset.NewElementSet(2, 1)))
	require.False(t, poset.NewElementSet(1).Equal(poset.NewElementSet(1, 2)))
	require.False(t, poset.NewElementSet(1, 3).Equal(poset.NewElementSet(1, 2)))
	require.True(t, poset.NewElementSet().Equal(poset.NewElementSet()))
}

func TestPresence(t *testing.T) {
	k := poset.Known(3)
	require.True(t, k.Exists())
	e, ok := k.Element()
	require.True(t, ok)
	require.Equal(t, 3, e)
	require.Equal(t, "3", k.String())

	a := poset.KnownAbsent()
	require.False(t, a.Exists())
	_, ok = a.Element()
	require.False(t, ok)
	require.Equal(t, "absent", a.String())
}
