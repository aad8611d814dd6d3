package main

import (
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
)

// AudioOutput connects a sample source to the default audio device.
type AudioOutput struct {
	ctx    *oto.Context
	player *oto.Player
}

func NewAudioOutput(src io.Reader, sampleRate, bufferFrames int) (*AudioOutput, error) {
	otoContextOptions := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: OutputChannels,
		Format:       oto.FormatFloat32LE,
		BufferSize:   time.Duration(bufferFrames) * time.Second / time.Duration(sampleRate),
	}
	ctx, readyChan, err := oto.NewContext(otoContextOptions)
	if err != nil {
		return nil, fmt.Errorf("open audio device: %w", err)
	}
	<-readyChan
	player := ctx.NewPlayer(src)
	player.SetBufferSize(bufferFrames * OutputChannels * bytesPerSample)
	return &AudioOutput{
		ctx:    ctx,
		player: player,
	}, nil
}

func (ao *AudioOutput) Start() {
	ao.player.Play()
}

func (ao *AudioOutput) Close() error {
	if ao.player == nil {
		return nil
	}
	ao.player.Pause()
	err := ao.player.Close()
	ao.player = nil
	return err
}
