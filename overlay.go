package main

import (
	"fmt"
)

const overlayFontSize FontSizeInPoints = 10

var (
	overlayOrigin      = Point{X: 10, Y: 8}
	overlayAtlasTiles  = Size{X: 16, Y: 8}
	overlayStaticLines = []string{
		"-- 3D Audio Visualizer --",
		"Move mouse horizontally to adjust audio gain",
		"Move mouse vertically to adjust the frequency of the deformity",
	}
)

// OverlayLines returns the instruction text shown above the sphere.
func OverlayLines(tempo int) []string {
	lines := make([]string, 0, len(overlayStaticLines)+1)
	lines = append(lines, overlayStaticLines...)
	return append(lines, fmt.Sprintf("Use 'W' and 'S' to change the tempo: %d", tempo))
}

type Overlay struct {
	font *Font
	tm   *TileMap
	tdl  *TileDrawList
}

func CreateOverlay() (*Overlay, error) {
	font, err := LoadGoMono()
	if err != nil {
		return nil, fmt.Errorf("load overlay font: %w", err)
	}
	face, err := font.GetFace(overlayFontSize)
	if err != nil {
		return nil, fmt.Errorf("create overlay face: %w", err)
	}
	atlas, err := font.BuildAtlas(face, overlayAtlasTiles)
	if err != nil {
		return nil, fmt.Errorf("build glyph atlas: %w", err)
	}
	tm, err := CreateTileMap(atlas)
	if err != nil {
		return nil, err
	}
	return &Overlay{
		font: font,
		tm:   tm,
		tdl:  tm.CreateDrawList(),
	}, nil
}

func (o *Overlay) Render(lines []string) error {
	o.tdl.Clear()
	for row, line := range lines {
		o.tdl.DrawString(0, row, line)
	}
	return o.tdl.Render(overlayOrigin)
}

func (o *Overlay) Close() error {
	if err := o.tm.Close(); err != nil {
		return err
	}
	return o.font.Close()
}
