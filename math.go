package main

import (
	"math"

	mgl "github.com/go-gl/mathgl/mgl32"
)

const mapEpsilon = 1e-9

const (
	maxDeformAmount    = 1.5
	maxDeformFrequency = 10.0

	baseColour = 0.3
	peakColour = 1.0
)

// Map linearly maps value from [inMin,inMax] onto [outMin,outMax]. With
// clamp set the result is limited to the output range, whichever order
// its bounds are given in. A degenerate input range yields outMin.
func Map(value, inMin, inMax, outMin, outMax float64, clamp bool) float64 {
	if math.Abs(inMin-inMax) < mapEpsilon {
		return outMin
	}
	out := (value-inMin)/(inMax-inMin)*(outMax-outMin) + outMin
	if clamp {
		out = Clamp(out, min(outMin, outMax), max(outMin, outMax))
	}
	return out
}

func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

func Lerp(start, stop, amt float64) float64 {
	return start + (stop-start)*amt
}

func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// FrameParams are the per-frame values derived from the pointer and the
// latest audio output.
type FrameParams struct {
	AudioGain       float64
	DeformAmount    float64
	DeformFrequency float64
	Colour          float64
}

func MapFrameParams(cursorX, cursorY float64, screen Size, finalOut float64) FrameParams {
	return FrameParams{
		AudioGain:       Map(cursorX, 0, float64(screen.X), minAudioGain, maxAudioGain, true),
		DeformAmount:    Map(finalOut, 0, 1.0, 0, maxDeformAmount, true),
		DeformFrequency: Map(cursorY, float64(screen.Y), 0, 0, maxDeformFrequency, true),
		Colour:          Lerp(baseColour, peakColour, finalOut),
	}
}

// Ambient is the light colour tinted by the audio level on the red channel.
func (p FrameParams) Ambient() mgl.Vec3 {
	return mgl.Vec3{float32(p.Colour), baseColour, baseColour}
}
