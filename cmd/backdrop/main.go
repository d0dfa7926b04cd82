package main

import (
	"context"
	"flag"
	"log"
	"os"
	"runtime"

	"backdrop/internal/asset"
	"backdrop/internal/config"
	"backdrop/internal/engine"
	"backdrop/internal/graphics/renderables/model"
	renderer "backdrop/internal/graphics/renderer"
	"backdrop/internal/layout"
	"backdrop/internal/pacing"
	"backdrop/internal/page"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML settings file")
	modelSource := flag.String("model", "", "model file or URL, overrides the config")
	mute := flag.Bool("mute", false, "do not play the soundtrack")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	if *modelSource != "" {
		settings.ModelPath = *modelSource
	}
	if *mute {
		settings.Mute = true
	}

	// Runs last: releases closer-bound resources and exits
	defer closer.Close()

	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	viewW, viewH := readViewport()
	surface := layout.Compute(viewW, viewH, settings.MobileHeight, settings.DesktopFraction)

	pg := page.Default()
	pg.MustElement(page.Background)
	if surface.Mobile {
		pg.MarkMobile()
	}
	log.Printf("is mobile: %v", surface.Mobile)

	pacer := pacing.New(settings.FPSLimit)
	window, err := setupWindow(surface, !pacer.Enabled())
	if err != nil {
		panic(err)
	}
	pg.OnChange = func(p *page.Page) { window.SetTitle(windowTitle(p)) }

	fbW, fbH := window.GetFramebufferSize()
	r, err := renderer.NewRenderer(fbW, fbH, model.NewModel())
	if err != nil {
		panic(err)
	}
	defer r.Dispose()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	e := engine.New(engine.Options{
		Context:        ctx,
		Surface:        r,
		Fetcher:        asset.NewLoader(os.Stderr),
		Soundtrack:     newSoundtrack(settings),
		ModelSource:    settings.ModelPath,
		Volume:         settings.Volume,
		Background:     settings.Background.Hex(),
		WireColor:      settings.WireColor.Hex(),
		CameraFOV:      settings.CameraFOV,
		ViewportWidth:  viewW,
		ViewportHeight: viewH,
	})
	closer.Checked(e.Close, true)

	applyLights(e, settings.Lights)
	pos := settings.CameraPosition
	e.MoveCamera(pos[0], pos[1], pos[2]).
		LoadModel(pg.ShowContent).
		AddListeners(newWindowPointer(window))

	NewRenderLoop(window, e, pacer).Run()
}
