package main

import (
	"bytes"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

func writeTestWav(t *testing.T, sampleRate, nchannels int, data []int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	enc := wav.NewEncoder(f, sampleRate, 16, nchannels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: nchannels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func assertSamples(t *testing.T, got []Smp, want []Smp) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d samples, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-4 {
			t.Fatalf("sample %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLoadSampleMonoWav(t *testing.T) {
	path := writeTestWav(t, SampleRate, 1, []int{0, 16384, -16384, 32767, -32768})
	sample, err := LoadSample(path, SampleRate)
	if err != nil {
		t.Fatal(err)
	}
	assertSamples(t, sample.Data, []Smp{0, 0.5, -0.5, 32767.0 / 32768.0, -1})
	if sample.Channels != 1 || sample.SampleRate != SampleRate {
		t.Errorf("got %v", sample)
	}
	if !strings.Contains(sample.String(), "nframes=5") {
		t.Errorf("String() = %q", sample.String())
	}
}

func TestLoadSampleStereoWavIsMixedDown(t *testing.T) {
	path := writeTestWav(t, SampleRate, 2, []int{16384, 0, -16384, -16384, 8192, -8192})
	sample, err := LoadSample(path, SampleRate)
	if err != nil {
		t.Fatal(err)
	}
	assertSamples(t, sample.Data, []Smp{0.25, -0.5, 0})
	if sample.Channels != 2 {
		t.Errorf("Channels = %d, want 2", sample.Channels)
	}
}

func TestLoadSampleResamples(t *testing.T) {
	const sourceRate = SampleRate / 2
	data := make([]int, 4410)
	for i := range data {
		data[i] = int(16000 * math.Sin(2*math.Pi*440*float64(i)/sourceRate))
	}
	path := writeTestWav(t, sourceRate, 1, data)
	sample, err := LoadSample(path, SampleRate)
	if err != nil {
		t.Fatal(err)
	}
	want := 2 * len(data)
	if n := len(sample.Data); n < want*95/100 || n > want*105/100 {
		t.Errorf("got %d frames after resampling, want about %d", n, want)
	}
	if sample.SampleRate != SampleRate {
		t.Errorf("SampleRate = %d, want %d", sample.SampleRate, SampleRate)
	}
	if d := sample.Duration(); d.Seconds() < 0.19 || d.Seconds() > 0.21 {
		t.Errorf("Duration() = %v, want about 200ms", d)
	}
}

func TestLoadSampleErrors(t *testing.T) {
	if _, err := LoadSample(filepath.Join(t.TempDir(), "missing.wav"), SampleRate); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file: err = %v, want fs.ErrNotExist", err)
	}
	_, err := DecodeSample(bytes.NewReader(nil), ".flac", "x.flac", SampleRate)
	if !errors.Is(err, ErrUnsupportedSampleFormat) {
		t.Errorf("flac: err = %v, want ErrUnsupportedSampleFormat", err)
	}
	if _, err := DecodeSample(bytes.NewReader([]byte("not a wav file at all")), ".WAV", "x.wav", SampleRate); err == nil {
		t.Error("garbage WAV decoded without error")
	}
	if _, err := newSample("empty", nil, 1, SampleRate, SampleRate); !errors.Is(err, ErrEmptySample) {
		t.Errorf("empty: err = %v, want ErrEmptySample", err)
	}
	if _, err := newSample("bad", []float32{0}, 0, SampleRate, SampleRate); err == nil {
		t.Error("zero channels accepted")
	}
}

func TestMixDown(t *testing.T) {
	got := mixDown([]float32{1, 0, 0.5, 0.5, 1}, 2)
	want := []float32{0.5, 0.5}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("mixDown() = %v, want %v", got, want)
	}
}

func TestResampleMonoRejectsExtremeRatios(t *testing.T) {
	if _, err := resampleMono([]float32{0, 1}, 1000, 96000); err == nil {
		t.Error("ratio 96 accepted")
	}
	if _, err := resampleMono([]float32{0, 1}, 0, SampleRate); err == nil {
		t.Error("zero source rate accepted")
	}
	in := []float32{0.1, 0.2}
	out, err := resampleMono(in, SampleRate, SampleRate)
	if err != nil || &out[0] != &in[0] {
		t.Error("same-rate resample did not pass the input through")
	}
}

func TestIntBufferToFloat(t *testing.T) {
	buf := &audio.IntBuffer{Data: []int{0, 128, 255}, SourceBitDepth: 8}
	got := intBufferToFloat(buf, 8)
	want := []float32{-1, 0, 127.0 / 128.0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("8-bit sample %d = %v, want %v", i, got[i], want[i])
		}
	}
	buf = &audio.IntBuffer{Data: []int{1 << 23}, SourceBitDepth: 24}
	if got := intBufferToFloat(buf, 0); got[0] != 1 {
		t.Errorf("24-bit full scale = %v, want 1", got[0])
	}
}
