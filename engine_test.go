package main

import (
	"encoding/binary"
	"math"
	"testing"
)

func newTestEngine(data []Smp, sampleRate int, gain float64) (*Engine, *SharedState) {
	state := NewSharedState(30)
	state.AudioGain.Store(gain)
	sample := &Sample{Path: "test", SampleRate: sampleRate, Channels: 1, Data: data}
	return NewEngine(state, sample, sampleRate), state
}

func TestEngineDuplicatesMonoToStereo(t *testing.T) {
	e, state := newTestEngine([]Smp{0.1, 0.2, 0.3, 0.4}, SampleRate, 1.0)
	out := make([]float32, 6*OutputChannels)
	e.Process(out)
	want := []float32{0.1, 0.1, 0.2, 0.2, 0.3, 0.3, 0.4, 0.4, 0, 0, 0, 0}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out = %v, want %v", out, want)
		}
	}
	if got := state.FinalOut.Load(); got != 0 {
		t.Errorf("FinalOut = %v after sample end, want 0", got)
	}
}

func TestEngineAppliesGain(t *testing.T) {
	e, state := newTestEngine([]Smp{0.8, -0.4}, SampleRate, 0.5)
	out := make([]float32, 2*OutputChannels)
	e.Process(out)
	want := []float32{0.4, 0.4, -0.2, -0.2}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("out = %v, want %v", out, want)
		}
	}
	if got := state.FinalOut.Load(); got != -0.2 {
		t.Errorf("FinalOut = %v, want -0.2", got)
	}
}

func TestEngineRetriggersOnTick(t *testing.T) {
	data := make([]Smp, 10)
	for i := range data {
		data[i] = Smp(i+1) / 10
	}
	// at 8 Hz, 30 BPM and 4 ticks per beat the clock ticks every 4 frames
	e, _ := newTestEngine(data, 8, 1.0)
	out := make([]float32, 8*OutputChannels)
	e.Process(out)
	want := []Smp{0.1, 0.2, 0.3, 0.1, 0.2, 0.3, 0.4, 0.1}
	for i, w := range want {
		if out[i*OutputChannels] != float32(w) {
			t.Errorf("frame %d = %v, want %v", i, out[i*OutputChannels], w)
		}
	}
	if e.Clock().PlayHead() != 2 {
		t.Errorf("PlayHead() = %d, want 2", e.Clock().PlayHead())
	}
}

func TestEngineFollowsTempo(t *testing.T) {
	e, state := newTestEngine([]Smp{1}, 8, 1.0)
	state.SetTempo(15)
	e.Process(make([]float32, 2*OutputChannels))
	if e.Clock().Tempo() != 15 {
		t.Errorf("clock tempo = %v, want 15", e.Clock().Tempo())
	}
}

func TestEngineCounterWraps(t *testing.T) {
	e, state := newTestEngine([]Smp{0}, SampleRate, 1.0)
	e.Process(make([]float32, 40*OutputChannels))
	if got := state.Counter.Load(); got != (1+40)%32 {
		t.Errorf("Counter = %d, want %d", got, (1+40)%32)
	}
}

func TestEngineRead(t *testing.T) {
	e, _ := newTestEngine([]Smp{0.5, -0.5}, SampleRate, 1.0)
	p := make([]byte, 2*OutputChannels*bytesPerSample+2)
	for i := range p {
		p[i] = 0xff
	}
	n, err := e.Read(p)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(p) {
		t.Fatalf("Read() = %d, want %d", n, len(p))
	}
	want := []float32{0.5, 0.5, -0.5, -0.5}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(p[i*bytesPerSample:]))
		if got != w {
			t.Errorf("sample %d = %v, want %v", i, got, w)
		}
	}
	for i := len(want) * bytesPerSample; i < len(p); i++ {
		if p[i] != 0 {
			t.Errorf("trailing byte %d = %#x, want 0", i, p[i])
		}
	}
}

func TestEngineReadGrowsScratch(t *testing.T) {
	e, _ := newTestEngine([]Smp{0.25}, SampleRate, 1.0)
	p := make([]byte, 4*BufferFrames*OutputChannels*bytesPerSample)
	if _, err := e.Read(p); err != nil {
		t.Fatal(err)
	}
	got := math.Float32frombits(binary.LittleEndian.Uint32(p[bytesPerSample:]))
	if got != 0.25 {
		t.Errorf("right channel of first frame = %v, want 0.25", got)
	}
}
