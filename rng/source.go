// Package rng defines the random source consumed by the tree generator and the random-split engine, along with a few adapters.
//
// Sources are stateful and not safe for concurrent use unless wrapped with NewLocked. The usual pattern is one Source per goroutine, each with its own seed.
package rng

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/brianvoe/gofakeit/v6"
)

// Uniform random numbers, as consumed by this module.
type Source interface {
	// Uniform float in the half-open interval [0, 1).
	Float64() float64
	// Uniform integer in the closed interval [lo, hi]. Panics if hi < lo.
	IntRange(lo, hi int) int
}

// Source backed by math/rand, with an explicit seed.
type Rand struct {
	r *rand.Rand
}

func New(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

func (r *Rand) IntRange(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("rng: invalid range [%d, %d]", lo, hi))
	}
	return lo + r.r.Intn(hi-lo+1)
}

type fakerSource struct {
	f *gofakeit.Faker
}

// Adapts a gofakeit Faker (for example `gofakeit.New(seed)`) to a Source.
func FromFaker(f *gofakeit.Faker) Source {
	return &fakerSource{f: f}
}

func (s *fakerSource) Float64() float64 {
	return s.f.Float64Range(0, 1)
}

func (s *fakerSource) IntRange(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("rng: invalid range [%d, %d]", lo, hi))
	}
	return s.f.Number(lo, hi)
}

// Wraps a Source with a mutex, so it can be shared between goroutines.
type Locked struct {
	lk  sync.Mutex
	src Source
}

func NewLocked(src Source) *Locked {
	return &Locked{src: src}
}

func (l *Locked) Float64() float64 {
	l.lk.Lock()
	defer l.lk.Unlock()
	return l.src.Float64()
}

func (l *Locked) IntRange(lo, hi int) int {
	l.lk.Lock()
	defer l.lk.Unlock()
	return l.src.IntRange(lo, hi)
}
