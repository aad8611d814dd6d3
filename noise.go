package main

import (
	"github.com/ojrac/opensimplex-go"
)

// CoherentNoise is a smooth pseudo-random function of one variable with
// values in [-1,1]. Nearby inputs give nearby outputs.
type CoherentNoise interface {
	Eval(x float64) float64
}

type simplexNoise struct {
	noise opensimplex.Noise
}

// NewSimplexNoise returns OpenSimplex noise sampled along the x axis. The
// same seed always yields the same function.
func NewSimplexNoise(seed int64) CoherentNoise {
	return simplexNoise{noise: opensimplex.New(seed)}
}

func (n simplexNoise) Eval(x float64) float64 {
	return n.noise.Eval2(x, 0)
}

// Jitter is a xorshift32 uniform random source. A given seed always
// produces the same sequence; seed 0 is mapped to state 1 to avoid lockup.
type Jitter struct {
	state uint32
}

func NewJitter(seed int64) *Jitter {
	state := uint32(seed) ^ uint32(seed>>32)
	if state == 0 {
		state = 1
	}
	return &Jitter{state: state}
}

// Float64 returns a value in [0,1].
func (j *Jitter) Float64() float64 {
	j.state ^= j.state << 13
	j.state ^= j.state >> 17
	j.state ^= j.state << 5
	return float64(j.state) / float64(^uint32(0))
}

// Uniform returns a value in [lo,hi].
func (j *Jitter) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*j.Float64()
}
