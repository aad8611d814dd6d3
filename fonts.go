package main

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

type FontSizeInPoints = float64

const fontDPI = 96

type Font struct {
	font  *opentype.Font
	faces map[FontSizeInPoints]font.Face
}

// GlyphAtlas is a grid of equally sized cells, cell i holding rune i.
type GlyphAtlas struct {
	Image    *image.Alpha
	Cols     int
	Rows     int
	CellSize Size
}

func (f *Font) GetFace(size FontSizeInPoints) (font.Face, error) {
	if face, ok := f.faces[size]; ok {
		return face, nil
	}
	faceOpts := &opentype.FaceOptions{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	}
	face, err := opentype.NewFace(f.font, faceOpts)
	if err != nil {
		return nil, err
	}
	f.faces[size] = face
	return face, nil
}

func (f *Font) BuildAtlas(face font.Face, sizeInTiles Size) (*GlyphAtlas, error) {
	cols, rows := sizeInTiles.X, sizeInTiles.Y
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("sizeInTiles must be positive, got %v", sizeInTiles)
	}
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	cellHeight := metrics.Height.Ceil()
	if cellHeight == 0 {
		cellHeight = ascent + descent
	}
	// monospaced, so the advance of one glyph is the cell width
	adv, ok := face.GlyphAdvance('m')
	if !ok {
		return nil, fmt.Errorf("font face does not provide a glyph for rune 'm'")
	}
	cellWidth := adv.Ceil()
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("invalid glyph cell size %dx%d", cellWidth, cellHeight)
	}
	atlas := image.NewAlpha(image.Rect(0, 0, cellWidth*cols, cellHeight*rows))
	for i := range cols * rows {
		col := i % cols
		row := i / cols
		dot := fixed.Point26_6{
			X: fixed.I(col * cellWidth),
			Y: fixed.I(row*cellHeight + ascent),
		}
		dstRect, mask, maskPt, _, ok := face.Glyph(dot, rune(i))
		if !ok || mask == nil {
			continue
		}
		draw.Draw(atlas, dstRect, mask, maskPt, draw.Src)
	}
	return &GlyphAtlas{
		Image:    atlas,
		Cols:     cols,
		Rows:     rows,
		CellSize: Size{X: cellWidth, Y: cellHeight},
	}, nil
}

func LoadFontFromBytes(bytes []byte) (*Font, error) {
	f, err := opentype.Parse(bytes)
	if err != nil {
		return nil, err
	}
	return &Font{
		font:  f,
		faces: make(map[FontSizeInPoints]font.Face),
	}, nil
}

// LoadGoMono parses the Go Mono font bundled with x/image.
func LoadGoMono() (*Font, error) {
	return LoadFontFromBytes(gomono.TTF)
}

func (f *Font) Close() error {
	for size, face := range f.faces {
		face.Close()
		delete(f.faces, size)
	}
	return nil
}
