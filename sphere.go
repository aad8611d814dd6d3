package main

import (
	"unsafe"

	gl "github.com/go-gl/gl/v3.1/gles2"
	mgl "github.com/go-gl/mathgl/mgl32"
)

const (
	sphereVertexShader = `
    precision highp float;
    attribute vec3 a_position;
    uniform mat4 u_mvp;
    void main(void) {
      gl_Position = u_mvp * vec4(a_position, 1.0);
    }`
	sphereFragmentShader = `
    precision mediump float;
    uniform vec3 u_ambient;
    void main(void) {
      gl_FragColor = vec4(clamp(u_ambient, 0.0, 1.0), 1.0);
    }`
)

// SphereRenderer draws a Mesh as a wireframe lit by an ambient colour.
type SphereRenderer struct {
	program    *Program
	a_position int32
	u_mvp      int32
	u_ambient  int32
}

func CreateSphereRenderer() (*SphereRenderer, error) {
	program, err := CreateProgram(sphereVertexShader, sphereFragmentShader)
	if err != nil {
		return nil, err
	}
	return &SphereRenderer{
		program:    program,
		a_position: program.GetAttribLocation("a_position"),
		u_mvp:      program.GetUniformLocation("u_mvp"),
		u_ambient:  program.GetUniformLocation("u_ambient"),
	}, nil
}

func (sr *SphereRenderer) Render(mesh *Mesh, mvp mgl.Mat4, ambient mgl.Vec3) {
	if len(mesh.Vertices) == 0 || len(mesh.Edges) == 0 {
		return
	}
	sr.program.Use()
	gl.UniformMatrix4fv(sr.u_mvp, 1, false, &mvp[0])
	gl.Uniform3f(sr.u_ambient, ambient[0], ambient[1], ambient[2])
	gl.Enable(gl.DEPTH_TEST)
	gl.EnableVertexAttribArray(uint32(sr.a_position))
	gl.VertexAttribPointer(
		uint32(sr.a_position), 3, gl.FLOAT, false,
		int32(unsafe.Sizeof(mgl.Vec3{})),
		gl.Ptr(&mesh.Vertices[0][0]))
	gl.DrawElements(gl.LINES, int32(len(mesh.Edges)), gl.UNSIGNED_SHORT, gl.Ptr(&mesh.Edges[0]))
	gl.DisableVertexAttribArray(uint32(sr.a_position))
	gl.Disable(gl.DEPTH_TEST)
}

func (sr *SphereRenderer) Close() error {
	return sr.program.Close()
}
