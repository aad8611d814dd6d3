package main

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
	"github.com/mitchellh/go-homedir"
)

var (
	ErrUnsupportedSampleFormat = errors.New("unsupported sample format")
	ErrEmptySample             = errors.New("sample contains no frames")
)

// Sample is a decoded mono recording at the output sample rate.
type Sample struct {
	Path       string
	SampleRate int
	// Channels is the channel count of the source before mixdown.
	Channels int
	Data     []Smp
}

func (s *Sample) String() string {
	return fmt.Sprintf("Sample(path=%s sr=%d channels=%d nframes=%d)", s.Path, s.SampleRate, s.Channels, len(s.Data))
}

func (s *Sample) Duration() time.Duration {
	if s.SampleRate == 0 {
		return 0
	}
	return time.Duration(len(s.Data)) * time.Second / time.Duration(s.SampleRate)
}

// decodeFunc returns interleaved samples in [-1,1] together with the
// channel count and sample rate of the stream.
type decodeFunc func(r io.ReadSeeker) (samples []float32, nchannels, sampleRate int, err error)

var sampleDecoders = map[string]decodeFunc{
	".wav": decodeWav,
	".mp3": decodeMp3,
	".ogg": decodeOgg,
}

func LoadSample(path string, outputRate int) (*Sample, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("expand sample path %s: %w", path, err)
	}
	ext := strings.ToLower(filepath.Ext(expanded))
	f, err := os.Open(expanded)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodeSample(f, ext, expanded, outputRate)
}

// DecodeSample decodes r according to ext (".wav", ".mp3" or ".ogg"),
// mixes it down to mono and resamples it to outputRate.
func DecodeSample(r io.ReadSeeker, ext, name string, outputRate int) (*Sample, error) {
	decode, ok := sampleDecoders[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("%s: %w: %q", name, ErrUnsupportedSampleFormat, ext)
	}
	interleaved, nchannels, sampleRate, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return newSample(name, interleaved, nchannels, sampleRate, outputRate)
}

func newSample(name string, interleaved []float32, nchannels, sampleRate, outputRate int) (*Sample, error) {
	if nchannels <= 0 {
		return nil, fmt.Errorf("%s: invalid channel count %d", name, nchannels)
	}
	mono := mixDown(interleaved, nchannels)
	if len(mono) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptySample)
	}
	mono, err := resampleMono(mono, sampleRate, outputRate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	data := make([]Smp, len(mono))
	for i, smp := range mono {
		data[i] = Smp(smp)
	}
	return &Sample{
		Path:       name,
		SampleRate: outputRate,
		Channels:   nchannels,
		Data:       data,
	}, nil
}

// mixDown averages interleaved frames into one channel. A trailing
// partial frame is dropped.
func mixDown(interleaved []float32, nchannels int) []float32 {
	if nchannels == 1 {
		return interleaved
	}
	nframes := len(interleaved) / nchannels
	mono := make([]float32, nframes)
	readIndex := 0
	for i := range nframes {
		var sum float32
		for range nchannels {
			sum += interleaved[readIndex]
			readIndex++
		}
		mono[i] = sum / float32(nchannels)
	}
	return mono
}

func decodeWav(r io.ReadSeeker) ([]float32, int, int, error) {
	d := wav.NewDecoder(r)
	if !d.IsValidFile() {
		return nil, 0, 0, errors.New("invalid WAV file")
	}
	buf, err := d.FullPCMBuffer()
	if err != nil {
		return nil, 0, 0, err
	}
	if buf.Format == nil {
		return nil, 0, 0, errors.New("WAV file has no format chunk")
	}
	return intBufferToFloat(buf, int(d.BitDepth)), buf.Format.NumChannels, buf.Format.SampleRate, nil
}

func intBufferToFloat(buf *audio.IntBuffer, bitDepth int) []float32 {
	if bitDepth <= 0 {
		bitDepth = buf.SourceBitDepth
	}
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float32(int64(1) << (bitDepth - 1))
	// 8-bit PCM is stored unsigned
	offset := 0
	if bitDepth == 8 {
		offset = 128
	}
	out := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = float32(v-offset) / scale
	}
	return out
}

func decodeMp3(r io.ReadSeeker) ([]float32, int, int, error) {
	d, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, 0, 0, err
	}
	data, err := io.ReadAll(d)
	if err != nil {
		return nil, 0, 0, err
	}
	// go-mp3 always produces 16-bit little-endian stereo
	nsamples := len(data) / 2
	out := make([]float32, nsamples)
	for i := range nsamples {
		out[i] = float32(int16(binary.LittleEndian.Uint16(data[2*i:]))) / 32768.0
	}
	return out, 2, d.SampleRate(), nil
}

func decodeOgg(r io.ReadSeeker) ([]float32, int, int, error) {
	samples, format, err := oggvorbis.ReadAll(r)
	if err != nil {
		return nil, 0, 0, err
	}
	return samples, format.Channels, format.SampleRate, nil
}
