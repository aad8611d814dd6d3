package main

import (
	"fmt"
	"math"

	mgl "github.com/go-gl/mathgl/mgl32"
)

const (
	sphereRadius     = 200
	sphereResolution = 20

	minSphereResolution = 2
	maxSphereResolution = 100
)

// Mesh is a sphere whose current vertices are rebuilt every frame from an
// immutable snapshot of the tessellated positions.
type Mesh struct {
	Radius float32
	// Original is captured once after tessellation and never written.
	Original []mgl.Vec3
	Vertices []mgl.Vec3
	// Edges holds index pairs for drawing with GL_LINES.
	Edges []uint16
	// Triangles holds index triples of the tessellation.
	Triangles []uint16
}

// NewSphereMesh tessellates a UV sphere with res+1 rings of 2*res+1
// vertices each, y pointing to the north pole.
func NewSphereMesh(radius float32, res int) (*Mesh, error) {
	if res < minSphereResolution || res > maxSphereResolution {
		return nil, fmt.Errorf("sphere resolution %d out of range [%d,%d]", res, minSphereResolution, maxSphereResolution)
	}
	rings := res + 1
	cols := 2*res + 1
	polarInc := math.Pi / float64(res)
	azimInc := 2 * math.Pi / float64(2*res)
	original := make([]mgl.Vec3, 0, rings*cols)
	for i := range rings {
		polar := float64(i) * polarInc
		sp, cp := math.Sincos(polar)
		for j := range cols {
			azim := float64(j) * azimInc
			sa, ca := math.Sincos(azim)
			original = append(original, mgl.Vec3{
				radius * float32(sp*ca),
				radius * float32(cp),
				radius * float32(sp*sa),
			})
		}
	}
	var triangles []uint16
	for i := range res {
		for j := range cols - 1 {
			a := uint16(i*cols + j)
			b := a + uint16(cols)
			// the first and last rings collapse into the poles
			if i != 0 {
				triangles = append(triangles, a, b, a+1)
			}
			if i != res-1 {
				triangles = append(triangles, a+1, b, b+1)
			}
		}
	}
	vertices := make([]mgl.Vec3, len(original))
	copy(vertices, original)
	return &Mesh{
		Radius:    radius,
		Original:  original,
		Vertices:  vertices,
		Edges:     uniqueEdges(triangles),
		Triangles: triangles,
	}, nil
}

func uniqueEdges(triangles []uint16) []uint16 {
	seen := make(map[[2]uint16]struct{}, len(triangles))
	edges := make([]uint16, 0, len(triangles)*2)
	for t := 0; t+2 < len(triangles); t += 3 {
		tri := triangles[t : t+3]
		for k := range 3 {
			a, b := tri[k], tri[(k+1)%3]
			if a > b {
				a, b = b, a
			}
			key := [2]uint16{a, b}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			edges = append(edges, a, b)
		}
	}
	return edges
}

// Reset copies the original positions back into Vertices.
func (m *Mesh) Reset() {
	copy(m.Vertices, m.Original)
}
