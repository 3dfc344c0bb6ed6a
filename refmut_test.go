package dcell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapMut(t *testing.T) {
	c := New(pair{first: 1, second: 2})

	m := c.BorrowMut()
	f := MapMut(&m, func(p *pair) *int { return &p.first })
	*f.Get() = 10
	f.Release()

	require.Equal(t, pair{first: 10, second: 2}, c.IntoInner())
}

func TestFilterMapMut(t *testing.T) {
	c := New([]int{5})

	m := c.BorrowMut()
	e, ok := FilterMapMut(&m, func(s *[]int) *int {
		if len(*s) == 0 {
			return nil
		}
		return &(*s)[0]
	})
	require.True(t, ok)
	*e.Get() = 6
	e.Release()

	require.Equal(t, []int{6}, c.IntoInner())
}

func TestFilterMapMutAbsent(t *testing.T) {
	c := New([]int{})

	m := c.BorrowMut()
	_, ok := FilterMapMut(&m, func(s *[]int) *int { return nil })
	require.False(t, ok)

	// The original guard survives and still mutates.
	*m.Get() = append(*m.Get(), 1)
	m.Release()

	require.Equal(t, []int{1}, c.IntoInner())
}

// The end-to-end scenario: split one exclusive guard over a two-element
// slice into disjoint element views, mutate each independently, and see
// both mutations after release.
func TestMapSplitMutScenario(t *testing.T) {
	c := New([]int{1, 2})

	m := c.BorrowMut()
	a, b := MapSplitMut(&m, func(s *[]int) (*int, *int) {
		return &(*s)[0], &(*s)[1]
	})
	*a.Get() += 100
	*b.Get() += 200
	a.Release()
	b.Release()

	// Both halves released: the cell is unborrowed again.
	mm := c.BorrowMut()
	mm.Release()

	require.Equal(t, []int{101, 202}, c.IntoInner())
}

func TestMapSplitMutStruct(t *testing.T) {
	c := New(pair{first: 1, second: 2})

	m := c.BorrowMut()
	a, b := MapSplitMut(&m, func(p *pair) (*int, *int) { return &p.first, &p.second })
	*a.Get() = -1
	*b.Get() = -2
	b.Release()
	a.Release()

	require.Equal(t, pair{first: -1, second: -2}, c.IntoInner())
}

func TestLeakMutReturnsValue(t *testing.T) {
	c := New(33)
	m := c.BorrowMut()
	p := LeakMut(&m)
	*p = 34
	require.Equal(t, 34, *c.AsPtr())
}
