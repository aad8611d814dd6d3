package main

import (
	"math"

	mgl "github.com/go-gl/mathgl/mgl32"
)

const (
	cameraDistance   = 300
	cameraFovY       = 60
	cameraNear       = 1
	cameraFar        = 5000
	orbitSensitivity = 0.01
	zoomStep         = 1.1
	maxPitch         = math.Pi/2 - 0.01
)

// OrbitCamera circles a target point. Dragging changes yaw and pitch, the
// scroll wheel changes the distance.
type OrbitCamera struct {
	Target      mgl.Vec3
	distance    float32
	yaw         float32
	pitch       float32
	minDistance float32
	maxDistance float32
	homeDist    float32
	dragging    bool
	lastX       float64
	lastY       float64
}

func NewOrbitCamera(target mgl.Vec3, distance, minDistance, maxDistance float32) *OrbitCamera {
	return &OrbitCamera{
		Target:      target,
		distance:    distance,
		minDistance: minDistance,
		maxDistance: maxDistance,
		homeDist:    distance,
	}
}

func (c *OrbitCamera) Distance() float32 {
	return c.distance
}

func (c *OrbitCamera) Reset() {
	c.distance = c.homeDist
	c.yaw = 0
	c.pitch = 0
	c.dragging = false
}

func (c *OrbitCamera) Position() mgl.Vec3 {
	sy, cy := math.Sincos(float64(c.yaw))
	sp, cp := math.Sincos(float64(c.pitch))
	offset := mgl.Vec3{
		float32(cp * sy),
		float32(sp),
		float32(cp * cy),
	}
	return c.Target.Add(offset.Mul(c.distance))
}

func (c *OrbitCamera) View() mgl.Mat4 {
	return mgl.LookAtV(c.Position(), c.Target, mgl.Vec3{0, 1, 0})
}

func (c *OrbitCamera) Projection(aspect float32) mgl.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl.Perspective(mgl.DegToRad(cameraFovY), aspect, cameraNear, cameraFar)
}

func (c *OrbitCamera) BeginDrag(x, y float64) {
	c.dragging = true
	c.lastX = x
	c.lastY = y
}

func (c *OrbitCamera) EndDrag() {
	c.dragging = false
}

func (c *OrbitCamera) Dragging() bool {
	return c.dragging
}

// Drag orbits by the pointer movement since the previous call.
func (c *OrbitCamera) Drag(x, y float64) {
	if !c.dragging {
		return
	}
	dx := x - c.lastX
	dy := y - c.lastY
	c.lastX = x
	c.lastY = y
	c.yaw -= float32(dx * orbitSensitivity)
	c.pitch = float32(Clamp(float64(c.pitch)+dy*orbitSensitivity, -maxPitch, maxPitch))
}

// Zoom moves the camera closer for positive offsets.
func (c *OrbitCamera) Zoom(offset float64) {
	d := float64(c.distance) * math.Pow(zoomStep, -offset)
	c.distance = float32(Clamp(d, float64(c.minDistance), float64(c.maxDistance)))
}
