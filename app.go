package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	mgl "github.com/go-gl/mathgl/mgl32"
)

const doubleClickSeconds = 0.3

type App struct {
	cfg        *Config
	state      *SharedState
	engine     *Engine
	audio      *AudioOutput
	scene      *Scene
	camera     *OrbitCamera
	sphere     *SphereRenderer
	overlay    *Overlay
	keyMap     KeyMap
	cursorX    float64
	cursorY    float64
	windowSize Size
	lastClick  float64
	shouldExit bool
}

func CreateApp(cfg *Config, state *SharedState, engine *Engine) (*App, error) {
	scene, err := NewScene(state, sphereRadius, sphereResolution, cfg.Seed)
	if err != nil {
		return nil, err
	}
	app := &App{
		cfg:        cfg,
		state:      state,
		engine:     engine,
		scene:      scene,
		camera:     NewOrbitCamera(mgl.Vec3{}, cameraDistance, sphereRadius*0.5, sphereRadius*10),
		windowSize: Size{X: cfg.Width, Y: cfg.Height},
	}
	app.keyMap = app.createKeyMap()
	return app, nil
}

func (app *App) createKeyMap() KeyMap {
	km := CreateKeyMap()
	km.BindAll([]string{"w", "W"}, app.IncreaseTempo)
	km.BindAll([]string{"s", "S"}, app.DecreaseTempo)
	km.Bind("Escape", CreateKeyHandler(app.Quit))
	return km
}

func (app *App) Init() error {
	sphere, err := CreateSphereRenderer()
	if err != nil {
		return fmt.Errorf("create sphere renderer: %w", err)
	}
	app.sphere = sphere
	overlay, err := CreateOverlay()
	if err != nil {
		return err
	}
	app.overlay = overlay
	audio, err := NewAudioOutput(app.engine, SampleRate, BufferFrames)
	if err != nil {
		return err
	}
	app.audio = audio
	app.audio.Start()
	logger.Info("audio started", "sampleRate", SampleRate, "bufferFrames", BufferFrames, "tempo", app.state.Tempo())
	return nil
}

func (app *App) IsRunning() bool {
	return !app.shouldExit
}

func (app *App) Quit() {
	app.shouldExit = true
}

func (app *App) IncreaseTempo() {
	app.changeTempo(1)
}

func (app *App) DecreaseTempo() {
	app.changeTempo(-1)
}

func (app *App) changeTempo(delta int) {
	tempo := app.state.NudgeTempo(delta)
	logger.Debug("tempo changed", "bpm", tempo)
}

func (app *App) OnKey(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if key == glfw.KeyEscape {
		app.keyMap.HandleKey("Escape")
	}
}

// OnChar receives the typed character, so shifted letters arrive upper
// case.
func (app *App) OnChar(char rune) {
	app.keyMap.HandleKey(string(char))
}

func (app *App) OnCursorPos(x, y float64) {
	app.cursorX = x
	app.cursorY = y
	app.camera.Drag(x, y)
}

func (app *App) OnMouseButton(button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	switch action {
	case glfw.Press:
		now := GetTime()
		if now-app.lastClick < doubleClickSeconds {
			app.camera.Reset()
			app.lastClick = 0
			return
		}
		app.lastClick = now
		app.camera.BeginDrag(app.cursorX, app.cursorY)
	case glfw.Release:
		app.camera.EndDrag()
	}
}

func (app *App) OnScroll(xoff, yoff float64) {
	app.camera.Zoom(yoff)
}

func (app *App) OnWindowSize(width, height int) {
	app.windowSize = Size{X: width, Y: height}
}

func (app *App) OnFramebufferSize(width, height int) {
	logger.Debug("OnFramebufferSize", "width", width, "height", height)
}

func (app *App) Update() error {
	app.scene.Advance(app.cursorX, app.cursorY, app.windowSize)
	return nil
}

func (app *App) Render() error {
	aspect := float32(1)
	if fbSize.Y > 0 {
		aspect = float32(fbSize.X) / float32(fbSize.Y)
	}
	mvp := app.camera.Projection(aspect).Mul4(app.camera.View())
	app.sphere.Render(app.scene.Mesh(), mvp, app.scene.Params().Ambient())
	return app.overlay.Render(OverlayLines(app.state.Tempo()))
}

func (app *App) Close() {
	logger.Debug("Close")
	if app.audio != nil {
		if err := app.audio.Close(); err != nil {
			logger.Warn("closing audio output failed", "error", err)
		}
	}
	if app.overlay != nil {
		app.overlay.Close()
	}
	if app.sphere != nil {
		app.sphere.Close()
	}
}
