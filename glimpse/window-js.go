//go:build js

package glimpse

import (
	"syscall/js"

	"github.com/cogentcore/webgpu/wgpu"
)

type jsWindow struct {
	canvas   js.Value
	width    uint32
	height   uint32
	onResize func(width, height uint32)
}

func NewWindow(width, height int, title string) (Window, error) {
	document := js.Global().Get("document")
	canvas := document.Call("createElement", "canvas")
	document.Get("body").Call("appendChild", canvas)

	document.Set("title", title)

	canvas.Set("style", "width:100vw; height:100vh")

	win := &jsWindow{
		canvas: canvas,
	}

	win.resizeCanvas()

	return win, nil
}

func (g *jsWindow) GetSize() (uint32, uint32) {
	return g.width, g.height
}

func (g *jsWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return &wgpu.SurfaceDescriptor{Canvas: g.canvas}
}

func (g *jsWindow) OnResize(callback func(width, height uint32)) {
	g.onResize = callback
}

func (g *jsWindow) Terminate() {
	// do nothing
}

func (g *jsWindow) Run(frame func() error) error {
	helper := js.Global().Call("eval", `({
        run(runOnce) {
            const loop = () => {
                if (runOnce()) {
                    requestAnimationFrame(loop)
                }
            }

            requestAnimationFrame(loop)
        }
	})`)

	errc := make(chan error, 1)

	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		g.resizeCanvas()

		if err := frame(); err != nil {
			errc <- err
			return false
		}

		return true
	})

	defer fn.Release()

	helper.Call("run", fn)

	return <-errc
}

func (g *jsWindow) resizeCanvas() {
	vv := js.Global().Get("visualViewport")
	ratio := js.Global().Get("devicePixelRatio").Float()

	width := uint32(vv.Get("width").Float() * ratio)
	height := uint32(vv.Get("height").Float() * ratio)

	if width == g.width && height == g.height {
		return
	}

	g.canvas.Set("width", width)
	g.canvas.Set("height", height)

	g.width, g.height = width, height

	if g.onResize != nil {
		g.onResize(width, height)
	}
}
