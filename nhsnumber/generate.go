package nhsnumber

import (
	"math/rand/v2"
	"strconv"
)

const (
	minDraw = 1000000000 // smallest ten digit number without a leading zero
	maxDraw = 9999999999
)

// Rand is a source of random numbers; *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Int64N(n int64) int64
}

// globalRand uses the top-level math/rand/v2 functions, which are safe for concurrent use.
type globalRand struct{}

func (globalRand) Int64N(n int64) int64 { return rand.Int64N(n) }

// Generator generates random, valid NHS numbers.
// These are intended for test fixtures and demonstrations; they may be real NHS numbers.
// A Generator is safe for concurrent use only if its Rand is.
type Generator struct {
	r Rand
}

// NewGenerator creates a generator using the specified source of randomness.
// If r is nil, a process-wide source safe for concurrent use is used.
func NewGenerator(r Rand) *Generator {
	if r == nil {
		r = globalRand{}
	}
	return &Generator{r: r}
}

var defaultGenerator = NewGenerator(nil)

// GenerateOne returns a single random valid NHS number.
func GenerateOne() string {
	return defaultGenerator.One()
}

// GenerateMany returns count random valid NHS numbers, which are all different if unique is true.
func GenerateMany(count int, unique bool) []string {
	return defaultGenerator.Many(count, unique)
}

// One returns a single random valid NHS number.
func (g *Generator) One() string {
	for {
		if s, ok := g.draw(); ok {
			return s
		}
	}
}

// Many returns count random valid NHS numbers.
// If unique is true, no number appears more than once.
func (g *Generator) Many(count int, unique bool) []string {
	if count < 0 {
		count = 0
	}
	result := make([]string, 0, count)
	var seen map[string]struct{}
	if unique {
		seen = make(map[string]struct{}, count)
	}
	for len(result) < count {
		s, ok := g.draw()
		if !ok {
			continue
		}
		if unique {
			if _, dup := seen[s]; dup {
				continue
			}
			seen[s] = struct{}{}
		}
		result = append(result, s)
	}
	return result
}

// draw picks a random ten digit number and reports whether it is a valid NHS number.
func (g *Generator) draw() (string, bool) {
	s := strconv.FormatInt(minDraw+g.r.Int64N(maxDraw-minDraw+1), 10)
	return s, New(s).IsValid()
}
