package main

import (
	"log"
	"time"

	"backdrop/internal/engine"
	"backdrop/internal/pacing"
	"backdrop/internal/profiling"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// slowFrame is logged with the top tracked tasks when exceeded
const slowFrame = 50 * time.Millisecond

// RenderLoop drives engine frames from the window's refresh
type RenderLoop struct {
	window *glfw.Window
	engine *engine.Engine
	pacer  *pacing.Pacer
	frames int
}

func NewRenderLoop(window *glfw.Window, e *engine.Engine, pacer *pacing.Pacer) *RenderLoop {
	return &RenderLoop{window: window, engine: e, pacer: pacer}
}

// Run loops until the window is closed
func (rl *RenderLoop) Run() {
	for !rl.window.ShouldClose() {
		rl.tick()
	}
	log.Printf("render loop stopped after %d frames", rl.frames)
}

func (rl *RenderLoop) tick() {
	profiling.ResetFrame()
	start := time.Now()

	rl.engine.Frame()
	rl.frames++

	func() { defer profiling.Track("glfw.SwapBuffers")(); rl.window.SwapBuffers() }()
	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	// the first frames include shader compilation and mesh upload
	if d := time.Since(start); d > slowFrame && rl.frames > 1 {
		log.Printf("Slow frame: %v. Top tasks: %s", d, profiling.TopN(5))
	}

	rl.pacer.Wait()
}
