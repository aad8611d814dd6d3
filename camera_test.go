package main

import (
	"testing"

	mgl "github.com/go-gl/mathgl/mgl32"
)

func newTestCamera() *OrbitCamera {
	return NewOrbitCamera(mgl.Vec3{}, cameraDistance, 100, 2000)
}

func TestOrbitCameraStartsOnPositiveZ(t *testing.T) {
	c := newTestCamera()
	if got := c.Position(); !got.ApproxEqualThreshold(mgl.Vec3{0, 0, cameraDistance}, 1e-3) {
		t.Errorf("Position() = %v, want (0,0,%v)", got, cameraDistance)
	}
	// the target projects to the centre of the view
	p := c.Projection(4.0 / 3.0).Mul4(c.View()).Mul4x1(mgl.Vec4{0, 0, 0, 1})
	if x, y := p[0]/p[3], p[1]/p[3]; x*x+y*y > 1e-6 {
		t.Errorf("target projects to (%v,%v), want centre", x, y)
	}
}

func TestOrbitCameraZoomClamps(t *testing.T) {
	c := newTestCamera()
	for range 100 {
		c.Zoom(1)
	}
	if c.Distance() != 100 {
		t.Errorf("Distance() = %v after zooming in, want 100", c.Distance())
	}
	for range 100 {
		c.Zoom(-1)
	}
	if c.Distance() != 2000 {
		t.Errorf("Distance() = %v after zooming out, want 2000", c.Distance())
	}
}

func TestOrbitCameraDrag(t *testing.T) {
	c := newTestCamera()
	c.Drag(100, 100)
	if got := c.Position(); !got.ApproxEqualThreshold(mgl.Vec3{0, 0, cameraDistance}, 1e-3) {
		t.Fatalf("Drag without BeginDrag moved camera to %v", got)
	}
	c.BeginDrag(0, 0)
	c.Drag(0, 1e6)
	if !c.Dragging() {
		t.Fatal("Dragging() = false during drag")
	}
	pos := c.Position()
	if pos.Len() < cameraDistance-1e-2 || pos.Len() > cameraDistance+1e-2 {
		t.Errorf("distance changed while orbiting: %v", pos.Len())
	}
	if pos[1] <= 0 || pos[1] >= cameraDistance {
		t.Errorf("pitch not clamped short of the pole: %v", pos)
	}
	c.EndDrag()
	c.Drag(500, 500)
	if c.Position() != pos {
		t.Error("Drag after EndDrag moved camera")
	}
	c.Zoom(3)
	c.Reset()
	if got := c.Position(); !got.ApproxEqualThreshold(mgl.Vec3{0, 0, cameraDistance}, 1e-3) {
		t.Errorf("Position() after Reset = %v", got)
	}
}
