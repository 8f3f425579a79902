package display

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/pugo/oric8/emulation"
	"github.com/pugo/oric8/errors"
	"github.com/pugo/oric8/ula"
)

const pixelDepth = 4

// KeyHandler receives translated keyboard matrix events. *machine.Machine
// satisfies this directly.
type KeyHandler interface {
	KeyDown(row, col int)
	KeyUp(row, col int)
}

// FeatureRequester services emulation.FeatureReq requests raised by a
// hotkey, without Display needing to import the machine or snapshot
// packages directly.
type FeatureRequester interface {
	SetFeature(req emulation.FeatureReq, data emulation.FeatureReqData) error
}

// hotkeys maps function keys to feature requests serviced by whatever
// FeatureRequester New was given.
var hotkeys = map[sdl.Keycode]emulation.FeatureReq{
	sdl.K_F4: emulation.ReqSetWarp,
	sdl.K_F5: emulation.ReqSaveSnapshot,
	sdl.K_F7: emulation.ReqLoadSnapshot,
}

// Display is the video collaborator: an SDL window showing the ULA's
// framebuffer through a streaming texture, scaled by an integer zoom
// factor. Present also pumps SDL's event queue, since the scheduling
// model keeps every collaborator but the audio producer and the
// status-bar painter on the single emu thread: there is no separate
// guiLoop goroutine here.
type Display struct {
	handler  KeyHandler
	features FeatureRequester

	warpOn bool

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	closed bool
}

// New claims SDL's video and audio subsystems (SDL has a single process-
// wide init, so this is also where the audio collaborator's prerequisite
// sdl.INIT_AUDIO comes from) and opens a window sized for the ULA's
// framebuffer at the given integer zoom factor. features may be nil, in
// which case the warp/snapshot hotkeys are silently ignored.
func New(handler KeyHandler, features FeatureRequester, zoom int) (*Display, error) {
	if zoom < 1 {
		zoom = 1
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO); err != nil {
		return nil, errors.New(errors.DeviceFailure, err.Error())
	}

	d := &Display{handler: handler, features: features}

	w := int32(ula.VisibleWidth * zoom)
	h := int32(ula.VisibleLines * zoom)

	window, err := sdl.CreateWindow("oric8",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h, uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, errors.New(errors.DeviceFailure, err.Error())
	}
	d.window = window

	renderer, err := sdl.CreateRenderer(window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, errors.New(errors.DeviceFailure, err.Error())
	}
	d.renderer = renderer

	if err := renderer.SetLogicalSize(int32(ula.VisibleWidth), int32(ula.VisibleLines)); err != nil {
		return nil, errors.New(errors.DeviceFailure, err.Error())
	}

	texture, err := renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ARGB8888),
		int(sdl.TEXTUREACCESS_STREAMING), int32(ula.VisibleWidth), int32(ula.VisibleLines))
	if err != nil {
		return nil, errors.New(errors.DeviceFailure, err.Error())
	}
	d.texture = texture

	return d, nil
}

// Present implements machine.FramePresenter. It copies pixels to the
// window, pumps pending input events, and reports false once the window
// has been closed.
func (d *Display) Present(pixels []byte) bool {
	d.pumpEvents()
	if d.closed {
		return false
	}

	if err := d.texture.Update(nil, pixels, ula.VisibleWidth*pixelDepth); err != nil {
		return false
	}
	if err := d.renderer.Copy(d.texture, nil, nil); err != nil {
		return false
	}
	d.renderer.Present()

	return !d.closed
}

func (d *Display) pumpEvents() {
	for {
		event := sdl.PollEvent()
		if event == nil {
			return
		}
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			d.closed = true
		case *sdl.KeyboardEvent:
			d.handleKey(ev)
		}
	}
}

func (d *Display) handleKey(ev *sdl.KeyboardEvent) {
	if ev.Repeat != 0 {
		return
	}

	if req, ok := hotkeys[ev.Keysym.Sym]; ok {
		if ev.Type == sdl.KEYDOWN {
			d.handleHotkey(req)
		}
		return
	}

	row, col, ok := lookupKey(ev.Keysym.Sym)
	if !ok {
		return
	}
	switch ev.Type {
	case sdl.KEYDOWN:
		d.handler.KeyDown(row, col)
	case sdl.KEYUP:
		d.handler.KeyUp(row, col)
	}
}

func (d *Display) handleHotkey(req emulation.FeatureReq) {
	if d.features == nil {
		return
	}

	var data emulation.FeatureReqData
	if req == emulation.ReqSetWarp {
		d.warpOn = !d.warpOn
		data = d.warpOn
	}
	d.features.SetFeature(req, data)
}

// Close releases the window, renderer and texture.
func (d *Display) Close() {
	if d.texture != nil {
		d.texture.Destroy()
	}
	if d.renderer != nil {
		d.renderer.Destroy()
	}
	if d.window != nil {
		d.window.Destroy()
	}
}
