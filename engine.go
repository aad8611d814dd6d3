package main

import (
	"encoding/binary"
	"math"
)

const (
	SampleRate     = 44100
	BufferFrames   = 512
	OutputChannels = 2

	bytesPerSample = 4
	counterModulo  = 32
)

// Engine is the audio side of the program. Each output frame advances the
// clock, retriggers the sample on a tick and writes the gained sample to
// both channels.
type Engine struct {
	state   *SharedState
	clock   *Clock
	player  *SamplePlayer
	counter uint32
	scratch []float32
}

func NewEngine(state *SharedState, sample *Sample, sampleRate int) *Engine {
	clock := NewClock(sampleRate)
	clock.SetTicksPerBeat(defaultTicksPerBeat)
	clock.SetTempo(float64(state.Tempo()))
	return &Engine{
		state:   state,
		clock:   clock,
		player:  NewSamplePlayer(sample.Data),
		counter: 1,
		scratch: make([]float32, BufferFrames*OutputChannels),
	}
}

func (e *Engine) Clock() *Clock {
	return e.clock
}

func (e *Engine) Player() *SamplePlayer {
	return e.player
}

// Process fills out with interleaved stereo frames. A trailing partial
// frame is zeroed.
func (e *Engine) Process(out []float32) {
	e.clock.SetTempo(float64(e.state.Tempo()))
	nframes := len(out) / OutputChannels
	writeIndex := 0
	for range nframes {
		if e.clock.Ticker() {
			e.player.Trigger()
		}
		e.counter = (e.counter + 1) % counterModulo
		finalOut := e.player.PlayOnce() * e.state.AudioGain.Load()
		e.state.FinalOut.Store(finalOut)
		for range OutputChannels {
			out[writeIndex] = float32(finalOut)
			writeIndex++
		}
	}
	for i := writeIndex; i < len(out); i++ {
		out[i] = 0
	}
	e.state.Counter.Store(e.counter)
}

// Read implements io.Reader for the audio device, producing float32
// little-endian samples.
func (e *Engine) Read(p []byte) (int, error) {
	nsamples := len(p) / bytesPerSample
	if cap(e.scratch) < nsamples {
		e.scratch = make([]float32, nsamples)
	}
	samples := e.scratch[:nsamples]
	e.Process(samples)
	for i, smp := range samples {
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(smp))
	}
	clear(p[nsamples*bytesPerSample:])
	return len(p), nil
}
