package generator_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/generator"
	"github.com/katalvlaran/labyrinth/maze"
)

// reachable counts the cells reachable from (0,0) through the adjacency graph.
func reachable(m *maze.Maze) int {
	seen := map[maze.Coordinate]bool{maze.At(0, 0): true}
	queue := []maze.Coordinate{maze.At(0, 0)}
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range m.Neighbors(queue[qi]) {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(seen)
}

// checkStructure asserts the structural invariants every generated maze holds:
// traversable terrain, no self-loops, no duplicates, symmetric links, full
// connectivity.
func checkStructure(t *testing.T, m *maze.Maze) {
	t.Helper()
	half := 0
	for r, row := range m.Grid() {
		for c, cell := range row {
			here := maze.At(r, c)
			require.Equal(t, here, cell.Coord)
			require.True(t, cell.Kind.Traversable(), "cell %v has kind %v", here, cell.Kind)

			seen := map[maze.Coordinate]bool{}
			for _, n := range m.Neighbors(here) {
				require.NotEqual(t, here, n, "self-loop at %v", here)
				require.False(t, seen[n], "duplicate link %v-%v", here, n)
				seen[n] = true
				require.Equal(t, 1, here.Manhattan(n), "non-orthogonal link %v-%v", here, n)
				require.True(t, m.Connected(n, here), "asymmetric link %v-%v", here, n)
				half++
			}
		}
	}
	require.Equal(t, 2*m.EdgeCount(), half)
	require.Equal(t, m.Size(), reachable(m), "maze must be fully connected")
}

var sizes = []struct{ h, w int }{
	{1, 1}, {1, 7}, {7, 1}, {2, 2}, {3, 5}, {5, 5}, {10, 4}, {30, 30},
}

// TestGenerate_Structure runs every algorithm, with and without cycles, over
// a range of sizes and seeds.
func TestGenerate_Structure(t *testing.T) {
	for _, alg := range generator.Algorithms() {
		for _, cycles := range []bool{false, true} {
			for _, sz := range sizes {
				name := fmt.Sprintf("%v/cycles=%v/%dx%d", alg, cycles, sz.h, sz.w)
				t.Run(name, func(t *testing.T) {
					for seed := int64(1); seed <= 5; seed++ {
						m, err := generator.Generate(alg, cycles, sz.h, sz.w, generator.WithSeed(seed))
						require.NoError(t, err)
						assert.Equal(t, sz.h, m.Height())
						assert.Equal(t, sz.w, m.Width())
						checkStructure(t, m)

						spanning := sz.h*sz.w - 1
						if cycles {
							assert.GreaterOrEqual(t, m.EdgeCount(), spanning)
						} else {
							assert.Equal(t, spanning, m.EdgeCount(), "acyclic maze must be a spanning tree")
						}
					}
				})
			}
		}
	}
}

// TestGenerate_SingleCell yields one cell and no links.
func TestGenerate_SingleCell(t *testing.T) {
	for _, alg := range generator.Algorithms() {
		m, err := generator.Generate(alg, true, 1, 1, generator.WithSeed(3))
		require.NoError(t, err)
		assert.Equal(t, 1, m.Size())
		assert.Zero(t, m.EdgeCount())
		assert.Empty(t, m.Neighbors(maze.At(0, 0)))
	}
}

// TestKruskal_SpanningTree5x5 checks the exact edge count of an acyclic 5×5 maze.
func TestKruskal_SpanningTree5x5(t *testing.T) {
	g, err := generator.New(generator.Kruskal, false, generator.WithSeed(2024))
	require.NoError(t, err)
	m := g.Generate(5, 5)
	assert.Equal(t, 24, m.EdgeCount())
	checkStructure(t, m)
}

// TestGenerate_CyclesAddLinks ensures the cycle policy eventually fires on
// mazes with plenty of redundant walls.
func TestGenerate_CyclesAddLinks(t *testing.T) {
	for _, alg := range generator.Algorithms() {
		extra := 0
		for seed := int64(1); seed <= 10; seed++ {
			m, err := generator.Generate(alg, true, 12, 12, generator.WithSeed(seed))
			require.NoError(t, err)
			extra += m.EdgeCount() - (12*12 - 1)
		}
		assert.Positive(t, extra, "%v never added a cycle", alg)
	}
}

// TestGenerate_Deterministic verifies a fixed seed reproduces the same maze.
func TestGenerate_Deterministic(t *testing.T) {
	for _, alg := range generator.Algorithms() {
		a, err := generator.Generate(alg, true, 8, 9, generator.WithSeed(99))
		require.NoError(t, err)
		b, err := generator.Generate(alg, true, 8, 9, generator.WithRand(rand.New(rand.NewSource(99))))
		require.NoError(t, err)
		assert.Equal(t, a.Grid(), b.Grid(), "%v terrain differs", alg)
		assert.Equal(t, a.Edges(), b.Edges(), "%v links differ", alg)
	}
}

// TestGenerator_Reuse runs one generator several times with varying sizes.
func TestGenerator_Reuse(t *testing.T) {
	g, err := generator.New(generator.Prim, false, generator.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, generator.Prim, g.Algorithm())
	for i := 1; i <= 6; i++ {
		m := g.Generate(i, 7-i)
		checkStructure(t, m)
	}
}

// TestNew_Dispatch covers every selector and the unknown case.
func TestNew_Dispatch(t *testing.T) {
	for _, alg := range generator.Algorithms() {
		g, err := generator.New(alg, false)
		require.NoError(t, err)
		assert.Equal(t, alg, g.Algorithm())
	}
	_, err := generator.New(generator.Algorithm(17), false)
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)

	_, err = generator.Generate(generator.Algorithm(-1), false, 2, 2)
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)
}

// TestGenerate_BadSize rejects non-positive dimensions.
func TestGenerate_BadSize(t *testing.T) {
	for _, sz := range []struct{ h, w int }{{0, 1}, {1, 0}, {-2, 3}} {
		_, err := generator.Generate(generator.Kruskal, false, sz.h, sz.w)
		assert.ErrorIs(t, err, generator.ErrBadSize)
	}
}

// TestParseAlgorithm covers names, case folding, aliases and failures.
func TestParseAlgorithm(t *testing.T) {
	cases := map[string]generator.Algorithm{
		"kruskal":   generator.Kruskal,
		"PRIM":      generator.Prim,
		" Eulerian": generator.Eulerian,
		"euler":     generator.Eulerian,
	}
	for in, want := range cases {
		got, err := generator.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := generator.ParseAlgorithm("dfs")
	assert.ErrorIs(t, err, generator.ErrUnknownAlgorithm)

	assert.Equal(t, "eulerian", generator.Eulerian.String())
	assert.Equal(t, "Algorithm(9)", generator.Algorithm(9).String())
}

// TestWithRand_Nil panics on a nil source.
func TestWithRand_Nil(t *testing.T) {
	assert.PanicsWithValue(t, generator.ErrNilRand.Error(), func() {
		generator.WithRand(nil)
	})
}

func BenchmarkGenerate(b *testing.B) {
	for _, alg := range generator.Algorithms() {
		b.Run(alg.String(), func(b *testing.B) {
			g, _ := generator.New(alg, true, generator.WithSeed(42))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = g.Generate(30, 30)
			}
		})
	}
}
