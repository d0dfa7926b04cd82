package main

import (
	"log"
	"os"

	"backdrop/internal/audio"
	"backdrop/internal/config"
	"backdrop/internal/engine"
	"backdrop/internal/layout"
	"backdrop/internal/page"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const windowName = "backdrop"

// readViewport returns the primary monitor size, read once at startup
func readViewport() (int, int) {
	mode := glfw.GetPrimaryMonitor().GetVideoMode()
	return mode.Width, mode.Height
}

func setupWindow(l layout.Layout, vsync bool) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Decorated, glfw.False)
	glfw.WindowHint(glfw.Samples, 4)

	window, err := glfw.CreateWindow(l.Width, l.Height, windowName+" (loading)", nil, nil)
	if err != nil {
		return nil, err
	}
	window.SetPos(0, 0)
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	// Frames follow the display refresh unless a software limit is set
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	return window, nil
}

// windowTitle mirrors the loader element in the title bar
func windowTitle(p *page.Page) string {
	if p.Loading() {
		return windowName + " (loading)"
	}
	return windowName
}

// applyLights adds the configured lights in order
func applyLights(e *engine.Engine, lights []config.LightSettings) {
	for _, l := range lights {
		switch l.Kind {
		case "point":
			e.AddPointLight(l.Color.Hex(), l.Position[0], l.Position[1], l.Position[2], l.Power)
		case "ambient":
			e.AddAmbientLight(l.Color.Hex(), l.Intensity)
		}
	}
}

// newSoundtrack picks the player for settings. A muted run or a missing file
// runs silent.
func newSoundtrack(settings config.Settings) audio.Soundtrack {
	if settings.Mute {
		return audio.Nop{}
	}
	if _, err := os.Stat(settings.SoundtrackPath); err != nil {
		log.Printf("soundtrack disabled: %v", err)
		return audio.Nop{}
	}
	return audio.NewPlayer(settings.SoundtrackPath)
}
