package main

import (
	"math"
)

const defaultTicksPerBeat = 4

// Clock subdivides beats into ticks at a sample-accurate rate.
//
// Ticker must be called exactly once per output frame. It raises Tick on
// the frame where the phase accumulator crosses an integer boundary.
// Changing the tempo keeps the current phase, so a tempo change is
// glitch-free but not aligned to a fixed grid.
type Clock struct {
	sampleRate   float64
	bpm          float64
	ticksPerBeat int
	phase        float64
	playHead     int
	Tick         bool
}

func NewClock(sampleRate int) *Clock {
	return &Clock{
		sampleRate:   float64(sampleRate),
		bpm:          defaultTempo,
		ticksPerBeat: defaultTicksPerBeat,
	}
}

func (c *Clock) SetTempo(bpm float64) {
	c.bpm = bpm
}

func (c *Clock) Tempo() float64 {
	return c.bpm
}

func (c *Clock) SetTicksPerBeat(n int) {
	if n < 1 {
		n = 1
	}
	c.ticksPerBeat = n
}

func (c *Clock) TicksPerBeat() int {
	return c.ticksPerBeat
}

// PlayHead is the number of ticks raised so far.
func (c *Clock) PlayHead() int {
	return c.playHead
}

// TickInterval is the nominal distance between ticks in frames.
func (c *Clock) TickInterval() float64 {
	if c.bpm <= 0 {
		return math.Inf(1)
	}
	return 60 * c.sampleRate / (c.bpm * float64(c.ticksPerBeat))
}

func (c *Clock) Ticker() bool {
	c.phase += float64(c.ticksPerBeat) * c.bpm / (60 * c.sampleRate)
	c.Tick = c.phase >= 1
	if c.Tick {
		c.phase -= math.Floor(c.phase)
		c.playHead++
	}
	return c.Tick
}
