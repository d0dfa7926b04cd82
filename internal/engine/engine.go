package engine

import (
	"context"
	"log"

	"backdrop/internal/asset"
	"backdrop/internal/audio"
	"backdrop/internal/input"
	"backdrop/internal/profiling"
	"backdrop/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// Tuned by eye; keep exact.
const (
	RotationDivisor = 200000
	DriftZ          = 0.0003

	ModelScale = 0.1
	ModelYaw   = 3 // radians

	CameraNear = 0.1
	CameraFar  = 500
)

// Surface draws the scene once per frame
type Surface interface {
	Render(s *scene.Scene, cam *scene.Camera)
}

// PointerSource delivers cursor and touch movement in viewport coordinates
type PointerSource interface {
	OnCursorMove(func(x, y float64))
	OnTouchMove(func(touches []input.Point))
}

// Options configures a new Engine
type Options struct {
	Context    context.Context
	Surface    Surface
	Fetcher    asset.Fetcher
	Soundtrack audio.Soundtrack

	ModelSource string
	Volume      float64
	Background  uint32
	WireColor   uint32
	CameraFOV   float32

	// Viewport the pointer deltas are measured against
	ViewportWidth  int
	ViewportHeight int
}

// Engine owns the scene, the rotation state and the loaded shape
type Engine struct {
	ctx        context.Context
	surface    Surface
	fetcher    asset.Fetcher
	soundtrack audio.Soundtrack

	scene    *scene.Scene
	camera   *scene.Camera
	rotation input.RotationState
	tracker  *input.Tracker
	shape    *scene.Object

	modelSource string
	volume      float64
	wire        scene.Material

	pending <-chan asset.Result
	onLoad  func()
}

// New creates an engine with an empty scene and a camera at the origin
func New(opts Options) *Engine {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	soundtrack := opts.Soundtrack
	if soundtrack == nil {
		soundtrack = audio.Nop{}
	}
	fov := opts.CameraFOV
	if fov == 0 {
		fov = 1
	}

	e := &Engine{
		ctx:         ctx,
		surface:     opts.Surface,
		fetcher:     opts.Fetcher,
		soundtrack:  soundtrack,
		scene:       scene.New(scene.ColorFromHex(opts.Background)),
		camera:      scene.NewCamera(fov, 1, CameraNear, CameraFar),
		modelSource: opts.ModelSource,
		volume:      opts.Volume,
		wire: scene.Material{
			Color:     scene.ColorFromHex(opts.WireColor),
			Wireframe: true,
			Basic:     true,
		},
	}
	e.tracker = input.NewTracker(&e.rotation, opts.ViewportWidth, opts.ViewportHeight)
	return e
}

// AddPointLight appends a point light to the scene
func (e *Engine) AddPointLight(color uint32, x, y, z, power float32) *Engine {
	e.scene.AddLight(scene.NewPointLight(scene.ColorFromHex(color), mgl32.Vec3{x, y, z}, power))
	return e
}

// AddAmbientLight appends an ambient light to the scene
func (e *Engine) AddAmbientLight(color uint32, intensity float32) *Engine {
	e.scene.AddLight(scene.NewAmbientLight(scene.ColorFromHex(color), intensity))
	return e
}

// MoveCamera places the camera
func (e *Engine) MoveCamera(x, y, z float32) *Engine {
	e.camera.Position = mgl32.Vec3{x, y, z}
	return e
}

// LoadModel starts fetching the model in the background. The result is
// applied on the next Frame after it arrives; onLoad runs only on success.
func (e *Engine) LoadModel(onLoad func()) *Engine {
	if e.fetcher == nil {
		log.Printf("engine: no fetcher configured, model %s not loaded", e.modelSource)
		return e
	}
	e.onLoad = onLoad
	e.pending = e.fetcher.Fetch(e.ctx, e.modelSource)
	return e
}

// AddListeners subscribes the rotation tracker to src
func (e *Engine) AddListeners(src PointerSource) *Engine {
	src.OnCursorMove(e.tracker.HandleCursorMove)
	src.OnTouchMove(e.tracker.HandleTouchMove)
	return e
}

// Frame runs one render-loop tick: apply a finished load, draw, then advance
// the shape's rotation.
func (e *Engine) Frame() {
	e.pollLoad()

	if e.surface != nil {
		func() { defer profiling.Track("renderer.Render")(); e.surface.Render(e.scene, e.camera) }()
	}

	if e.shape != nil {
		e.shape.RotateX(float32(e.rotation.Y) / RotationDivisor)
		e.shape.RotateY(float32(e.rotation.X) / RotationDivisor)
		e.shape.RotateZ(DriftZ)
	}
}

func (e *Engine) pollLoad() {
	if e.pending == nil {
		return
	}
	select {
	case res, ok := <-e.pending:
		e.pending = nil
		if !ok {
			log.Printf("engine: model %s: fetch ended without a result", e.modelSource)
			return
		}
		defer profiling.Track("engine.applyLoad")()
		e.applyLoad(res)
	default:
	}
}

func (e *Engine) applyLoad(res asset.Result) {
	if res.Err != nil {
		log.Printf("engine: failed to load model %s: %v", e.modelSource, res.Err)
		return
	}
	if res.Object == nil {
		log.Printf("engine: model %s loaded empty", e.modelSource)
		return
	}

	obj := res.Object
	obj.SetScale(ModelScale)
	obj.RotateY(ModelYaw)
	obj.SetMaterial(e.wire)

	e.scene.Add(obj)
	e.shape = obj

	if err := e.soundtrack.Play(e.volume); err != nil {
		log.Printf("engine: soundtrack: %v", err)
	}

	if e.onLoad != nil {
		e.onLoad()
	}
}

// Shape returns the loaded model, or nil before the load completes
func (e *Engine) Shape() *scene.Object {
	return e.shape
}

// Loading reports whether a fetch is still outstanding
func (e *Engine) Loading() bool {
	return e.pending != nil
}

// Rotation returns the pointer rotation state
func (e *Engine) Rotation() *input.RotationState {
	return &e.rotation
}

func (e *Engine) Scene() *scene.Scene {
	return e.scene
}

func (e *Engine) Camera() *scene.Camera {
	return e.camera
}

// Close releases the soundtrack
func (e *Engine) Close() error {
	return e.soundtrack.Close()
}
