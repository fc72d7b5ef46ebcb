// app.go
package csgr

import (
	"runtime"

	"github.com/loov/hrtime"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

// AppConfig carries the windowing and timing configuration for one
// application run.
type AppConfig struct {
	Title         string
	Width, Height int32

	// UpdatesPerSec fixes the logic update cadence. Rendering happens once
	// per loop iteration regardless. Zero means 60.
	UpdatesPerSec float64
}

// Callbacks are the extension points the application supplies. Init runs
// once after the window exists and is where the renderer is constructed;
// Update runs at the fixed cadence; Render runs once per loop iteration with
// the monotonic elapsed time; Quit runs once before the window is torn down.
type Callbacks struct {
	Init   func(app *App) error
	Update func(app *App, dtSeconds float64)
	Render func(app *App, elapsedSeconds float64) error
	Quit   func(app *App)
}

// App owns the OS window and the application loop. It is a single-owner
// handle: construct one, call Run once.
type App struct {
	cfg    AppConfig
	cb     Callbacks
	window *sdl.Window
}

// NewApp builds an application shell. Nothing is initialized until Run.
func NewApp(cfg AppConfig, cb Callbacks) *App {
	if cfg.UpdatesPerSec == 0 {
		cfg.UpdatesPerSec = 60
	}
	return &App{cfg: cfg, cb: cb}
}

// Window returns the SDL window; valid only between Init and Quit callbacks.
func (a *App) Window() *sdl.Window { return a.window }

// DrawableSize returns the current framebuffer size in pixels.
func (a *App) DrawableSize() (int, int) {
	w, h := a.window.VulkanGetDrawableSize()
	return int(w), int(h)
}

// Run drives the whole application: window creation, init, the fixed-
// timestep update loop with one render per iteration, then quit and
// teardown. It must be called from the main goroutine.
func (a *App) Run() error {
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "initializing SDL")
	}
	defer sdl.Quit()

	// The swapchain is built once for this size, so the window is not
	// resizable.
	window, err := sdl.CreateWindow(a.cfg.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		a.cfg.Width, a.cfg.Height,
		sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		return errors.Wrap(err, "creating the window")
	}
	defer window.Destroy()
	a.window = window

	if a.cb.Init != nil {
		if err := a.cb.Init(a); err != nil {
			return errors.Wrap(err, "application init")
		}
	}
	if a.cb.Quit != nil {
		defer a.cb.Quit(a)
	}

	updateStep := 1.0 / a.cfg.UpdatesPerSec
	start := hrtime.Now()
	lastTick := start
	runningBehind := 0.0

appLoop:
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			if _, ok := event.(*sdl.QuitEvent); ok {
				break appLoop
			}
		}

		now := hrtime.Now()
		runningBehind += (now - lastTick).Seconds()
		lastTick = now

		// Catch up on logic updates at the fixed resolution until we are
		// less than one step behind.
		for runningBehind >= updateStep {
			runningBehind -= updateStep
			if a.cb.Update != nil {
				a.cb.Update(a, updateStep)
			}
		}

		if a.cb.Render != nil {
			if err := a.cb.Render(a, (now - start).Seconds()); err != nil {
				return errors.Wrap(err, "rendering a frame")
			}
		}
	}
	return nil
}
