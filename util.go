package main

import (
	"math"
	"sync/atomic"
)

const (
	minTempo     = 1
	maxTempo     = 40
	defaultTempo = 30

	minAudioGain = 0.5
	maxAudioGain = 1.0
)

// AtomicFloat is a float64 which can be stored by one goroutine and
// loaded by another without a lock.
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

func (f *AtomicFloat) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// SharedState holds the scalars exchanged between the render loop and
// the audio callback. Each field has exactly one writer:
//
//	FinalOut, Counter: audio callback
//	AudioGain, tempo:  render loop (and key handlers on the same thread)
type SharedState struct {
	FinalOut  AtomicFloat
	AudioGain AtomicFloat
	Counter   atomic.Uint32
	tempo     atomic.Int32
}

func NewSharedState(tempo int) *SharedState {
	s := &SharedState{}
	s.AudioGain.Store(minAudioGain)
	s.SetTempo(tempo)
	return s
}

func (s *SharedState) Tempo() int {
	return int(s.tempo.Load())
}

// SetTempo stores bpm clamped to [minTempo,maxTempo] and returns the
// stored value.
func (s *SharedState) SetTempo(bpm int) int {
	bpm = min(max(bpm, minTempo), maxTempo)
	s.tempo.Store(int32(bpm))
	return bpm
}

// NudgeTempo adds delta to the current tempo, clamping the result.
func (s *SharedState) NudgeTempo(delta int) int {
	for {
		old := s.tempo.Load()
		next := int32(min(max(int(old)+delta, minTempo), maxTempo))
		if s.tempo.CompareAndSwap(old, next) {
			return int(next)
		}
	}
}
