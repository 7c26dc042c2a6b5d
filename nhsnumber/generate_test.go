package nhsnumber

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// sequence replays a fixed list of ten digit draws.
type sequence struct {
	draws []int64
	n     int
}

func (s *sequence) Int64N(n int64) int64 {
	v := s.draws[s.n%len(s.draws)] - minDraw
	s.n++
	if v < 0 || v >= n {
		panic("draw out of range")
	}
	return v
}

func TestGenerateOne(t *testing.T) {
	for i := 0; i < 100; i++ {
		nnn := GenerateOne()
		require.Len(t, nnn, Length)
		assert.NotEqual(t, byte('0'), nnn[0])
		assert.NoError(t, Validate(nnn), "generated invalid NHS number %s", nnn)
	}
}

func TestGenerateMany(t *testing.T) {
	numbers := GenerateMany(3, true)
	require.Len(t, numbers, 3)
	for _, nnn := range numbers {
		assert.True(t, IsValid(nnn), "generated invalid NHS number %s", nnn)
	}
	assert.NotEqual(t, numbers[0], numbers[1])
	assert.NotEqual(t, numbers[0], numbers[2])
	assert.NotEqual(t, numbers[1], numbers[2])

	assert.Empty(t, GenerateMany(0, true))
	assert.NotNil(t, GenerateMany(-1, false))
}

func TestGeneratorReplay(t *testing.T) {
	g := NewGenerator(&sequence{draws: []int64{1234567890, 9077844449}})
	assert.Equal(t, "9077844449", g.One())

	draws := []int64{9077844449, 9077844449, 1234567890, 4698651433, 5835160933}
	g = NewGenerator(&sequence{draws: draws})
	assert.Equal(t, []string{"9077844449", "4698651433", "5835160933"}, g.Many(3, true))

	g = NewGenerator(&sequence{draws: draws})
	assert.Equal(t, []string{"9077844449", "9077844449", "4698651433"}, g.Many(3, false))
}

func TestGeneratorSeeded(t *testing.T) {
	g1 := NewGenerator(rand.New(rand.NewPCG(1, 2)))
	g2 := NewGenerator(rand.New(rand.NewPCG(1, 2)))
	a, b := g1.Many(20, true), g2.Many(20, true)
	assert.Equal(t, a, b)
	seen := make(map[string]bool)
	for _, nnn := range a {
		assert.True(t, IsValid(nnn))
		assert.False(t, seen[nnn], "duplicate %s", nnn)
		seen[nnn] = true
	}
}

func TestGenerateConcurrently(t *testing.T) {
	var g errgroup.Group
	results := make([][]string, 8)
	for i := range results {
		i := i
		g.Go(func() error {
			results[i] = GenerateMany(50, true)
			return nil
		})
	}
	require.NoError(t, g.Wait())
	for _, numbers := range results {
		require.Len(t, numbers, 50)
		for _, nnn := range numbers {
			assert.True(t, IsValid(nnn))
		}
	}
}

func BenchmarkGenerateOne(b *testing.B) {
	g := NewGenerator(rand.New(rand.NewPCG(1, 2)))
	for i := 0; i < b.N; i++ {
		g.One()
	}
}

func BenchmarkValidate(b *testing.B) {
	n := New("9077844449")
	for i := 0; i < b.N; i++ {
		_ = n.Validate()
	}
}
