package main

import (
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	mgl "github.com/go-gl/mathgl/mgl32"
)

const (
	tileVertexShader = `
    precision highp float;
    attribute vec2 a_position;
    attribute vec2 a_texcoord;
    uniform mat4 u_transform;
    varying vec2 v_texcoord;
    void main(void) {
      gl_Position = u_transform * vec4(a_position, 0.0, 1.0);
      v_texcoord = a_texcoord;
    }`
	tileFragmentShader = `
    precision highp float;
    uniform sampler2D u_tex;
    varying vec2 v_texcoord;
    void main(void) {
      gl_FragColor = vec4(texture2D(u_tex, v_texcoord).a);
    }`
)

type TileVertex struct {
	position [2]float32
	texcoord [2]float32
}

// TileMap is a glyph atlas uploaded as an alpha texture.
type TileMap struct {
	atlas       *GlyphAtlas
	tex         Texture
	program     *Program
	a_position  int32
	a_texcoord  int32
	u_transform int32
	u_tex       int32
}

type TileDrawList struct {
	tm       *TileMap
	vertices []TileVertex
}

func CreateTileMap(atlas *GlyphAtlas) (*TileMap, error) {
	program, err := CreateProgram(tileVertexShader, tileFragmentShader)
	if err != nil {
		return nil, err
	}
	tex, err := CreateTexture()
	if err != nil {
		program.Close()
		return nil, err
	}
	mapSize := atlas.Image.Bounds().Size()
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.ALPHA,
		int32(mapSize.X), int32(mapSize.Y),
		0, gl.ALPHA, gl.UNSIGNED_BYTE,
		gl.Ptr(atlas.Image.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return &TileMap{
		atlas:       atlas,
		tex:         tex,
		program:     program,
		a_position:  program.GetAttribLocation("a_position"),
		a_texcoord:  program.GetAttribLocation("a_texcoord"),
		u_transform: program.GetUniformLocation("u_transform"),
		u_tex:       program.GetUniformLocation("u_tex"),
	}, nil
}

func (tm *TileMap) GetTileSize() Size {
	return tm.atlas.CellSize
}

func (tm *TileMap) CreateDrawList() *TileDrawList {
	return &TileDrawList{
		tm:       tm,
		vertices: make([]TileVertex, 0, 6*256),
	}
}

func (tdl *TileDrawList) Clear() {
	tdl.vertices = tdl.vertices[:0]
}

func (tdl *TileDrawList) DrawRune(x, y int, r rune) {
	rows := tdl.tm.atlas.Rows
	cols := tdl.tm.atlas.Cols
	if int(r) >= rows*cols || r < 0 {
		r = '?'
	}
	col := int(r) % cols
	row := int(r) / cols
	x0 := float32(x)
	x1 := float32(x + 1)
	y0 := float32(-y)
	y1 := float32(-y - 1)
	s0 := float32(col) / float32(cols)
	s1 := float32(col+1) / float32(cols)
	t0 := float32(row) / float32(rows)
	t1 := float32(row+1) / float32(rows)
	tdl.vertices = append(tdl.vertices,
		TileVertex{position: [2]float32{x0, y0}, texcoord: [2]float32{s0, t0}},
		TileVertex{position: [2]float32{x0, y1}, texcoord: [2]float32{s0, t1}},
		TileVertex{position: [2]float32{x1, y1}, texcoord: [2]float32{s1, t1}},
		TileVertex{position: [2]float32{x1, y1}, texcoord: [2]float32{s1, t1}},
		TileVertex{position: [2]float32{x1, y0}, texcoord: [2]float32{s1, t0}},
		TileVertex{position: [2]float32{x0, y0}, texcoord: [2]float32{s0, t0}},
	)
}

func (tdl *TileDrawList) DrawString(x, y int, s string) {
	col := x
	for _, r := range s {
		tdl.DrawRune(col, y, r)
		col++
	}
}

// Render draws the list with the top-left tile at origin, in framebuffer
// pixels.
func (tdl *TileDrawList) Render(origin Point) error {
	if len(tdl.vertices) == 0 || fbSize.X == 0 || fbSize.Y == 0 {
		return nil
	}
	tm := tdl.tm
	tm.program.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	tm.tex.Bind()
	gl.Uniform1i(tm.u_tex, 0)
	stride := int32(unsafe.Sizeof(TileVertex{}))
	gl.EnableVertexAttribArray(uint32(tm.a_position))
	gl.VertexAttribPointer(
		uint32(tm.a_position), 2, gl.FLOAT, false, stride,
		gl.Ptr(&tdl.vertices[0].position[0]))
	gl.EnableVertexAttribArray(uint32(tm.a_texcoord))
	gl.VertexAttribPointer(
		uint32(tm.a_texcoord), 2, gl.FLOAT, false, stride,
		gl.Ptr(&tdl.vertices[0].texcoord[0]))
	tileSize := tm.GetTileSize()
	ux := 2.0 / float32(fbSize.X)
	uy := 2.0 / float32(fbSize.Y)
	mScale := mgl.Scale3D(ux*float32(tileSize.X), uy*float32(tileSize.Y), 1)
	mTranslate := mgl.Translate3D(-1.0+ux*float32(origin.X), 1.0-uy*float32(origin.Y), 0)
	mTransform := mTranslate.Mul4(mScale)
	gl.UniformMatrix4fv(tm.u_transform, 1, false, &mTransform[0])
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(tdl.vertices)))
	gl.Disable(gl.BLEND)
	gl.DisableVertexAttribArray(uint32(tm.a_position))
	gl.DisableVertexAttribArray(uint32(tm.a_texcoord))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return nil
}

func (tm *TileMap) Close() error {
	tm.tex.Close()
	return tm.program.Close()
}
