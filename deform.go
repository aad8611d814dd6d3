package main

import (
	"math"

	mgl "github.com/go-gl/mathgl/mgl32"
)

// jitterSpan is the half-width of the window around each coordinate from
// which the noise input is drawn.
const jitterSpan = 0.2

// Deformer pushes sphere vertices along a sine lattice, flipping the
// direction of each axis offset by the sign of coherent noise.
type Deformer struct {
	radius float32
	noise  CoherentNoise
	jitter *Jitter
}

func NewDeformer(radius float32, seed int64) *Deformer {
	return &Deformer{
		radius: radius,
		noise:  NewSimplexNoise(seed),
		jitter: NewJitter(seed),
	}
}

// Deform writes into current the deformed positions of original. Every
// output depends only on the matching original vertex and the given
// parameters; original is not modified.
func (d *Deformer) Deform(current, original []mgl.Vec3, amount, frequency float32) {
	for i, o := range original {
		v := o
		if l := o.Len(); l > 0 {
			v = o.Mul(1 / l)
		}
		sx := sin32(v[0] * frequency)
		sy := sin32(v[1] * frequency)
		sz := sin32(v[2] * frequency)
		v[0] += sy * sz * d.kick(v[0]) * amount
		v[1] += sx * sz * d.kick(v[1]) * amount
		v[2] += sx * sy * d.kick(v[2]) * amount
		current[i] = v.Mul(d.radius)
	}
}

// kick samples the noise at a random point near c and collapses it to
// -1, 0 or +1.
func (d *Deformer) kick(c float32) float32 {
	x := d.jitter.Uniform(float64(c)-jitterSpan, float64(c)+jitterSpan)
	return float32(Sign(d.noise.Eval(x)))
}

func sin32(x float32) float32 {
	return float32(math.Sin(float64(x)))
}
