package rng

import (
	"fmt"
)

// Deterministic Source which replays a fixed list of floats, cycling back to the start when exhausted. Used to pin down exact sampling decisions in tests.
//
// Values are returned as given, so a Sequence may yield 1.0 (outside the usual [0, 1) range); the reservoir sampler treats 1.0 as "only replace when forced".
type Sequence struct {
	vals []float64
	pos  int
}

func NewSequence(vals ...float64) *Sequence {
	if len(vals) == 0 {
		panic("rng: empty sequence")
	}
	return &Sequence{vals: vals}
}

func (s *Sequence) Float64() float64 {
	v := s.vals[s.pos]
	s.pos = (s.pos + 1) % len(s.vals)
	return v
}

// Scales the next float onto [lo, hi]. A value of 1.0 or more maps to hi.
func (s *Sequence) IntRange(lo, hi int) int {
	if hi < lo {
		panic(fmt.Sprintf("rng: invalid range [%d, %d]", lo, hi))
	}
	v := lo + int(s.Float64()*float64(hi-lo+1))
	if v > hi {
		return hi
	}
	if v < lo {
		return lo
	}
	return v
}

// Number of values consumed so far, modulo the sequence length.
func (s *Sequence) Pos() int {
	return s.pos
}
