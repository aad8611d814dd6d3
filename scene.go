package main

// Scene is the render-side state that changes every frame: the sphere mesh
// and the parameters mapped from the pointer and the audio level.
type Scene struct {
	state    *SharedState
	mesh     *Mesh
	deformer *Deformer
	params   FrameParams
}

func NewScene(state *SharedState, radius float32, resolution int, seed int64) (*Scene, error) {
	mesh, err := NewSphereMesh(radius, resolution)
	if err != nil {
		return nil, err
	}
	finalOut := state.FinalOut.Load()
	return &Scene{
		state:    state,
		mesh:     mesh,
		deformer: NewDeformer(radius, seed),
		params:   MapFrameParams(0, 0, Size{}, finalOut),
	}, nil
}

func (s *Scene) Mesh() *Mesh {
	return s.mesh
}

func (s *Scene) Params() FrameParams {
	return s.params
}

// Advance maps the cursor position and the latest audio output to the
// frame parameters, publishes the gain to the audio side and rebuilds the
// mesh vertices.
func (s *Scene) Advance(cursorX, cursorY float64, screen Size) {
	finalOut := s.state.FinalOut.Load()
	s.params = MapFrameParams(cursorX, cursorY, screen, finalOut)
	s.state.AudioGain.Store(s.params.AudioGain)
	s.deformer.Deform(s.mesh.Vertices, s.mesh.Original,
		float32(s.params.DeformAmount), float32(s.params.DeformFrequency))
}
