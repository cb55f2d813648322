//go:build !js && cgo

package hal

import (
	"errors"
	"os"

	"canvashost/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowConfig controls the desktop window host.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int

	Logger Logger
	Audio  Audio
}

// RunWindow opens a resizable desktop window, boots a runtime against it and
// blocks until the window closes or the runtime stops.
func RunWindow(boot BootFunc, cfg WindowConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	if cfg.Title == "" {
		cfg.Title = "canvashost"
	}
	if cfg.Logger == nil {
		cfg.Logger = NewLineLogger(os.Stdout)
	}
	if cfg.Audio == nil {
		cfg.Audio = newWindowAudio()
	}

	g := &hostGame{
		hub:    NewHub(cfg.Width, cfg.Height),
		canvas: &windowCanvas{},
	}
	rt, err := boot(NewEnv(cfg.Logger, g.hub, g.canvas, cfg.Audio))
	if err != nil {
		return err
	}
	defer rt.Close()
	g.rt = rt

	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return rt.Err()
	}
	return err
}

type hostGame struct {
	hub    *Hub
	canvas *windowCanvas
	rt     Runtime
	img    *ebiten.Image

	// Set by Layout, applied on the next Update so listeners never run
	// from inside Layout.
	layoutW, layoutH int
}

func (g *hostGame) Update() error {
	select {
	case <-g.rt.Done():
		if err := g.rt.Err(); err != nil {
			return err
		}
		return ebiten.Termination
	default:
	}

	if w, h := g.hub.InnerSize(); g.layoutW > 0 && g.layoutH > 0 && (w != g.layoutW || h != g.layoutH) {
		g.hub.SetSize(g.layoutW, g.layoutH)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.hub.Click(ClickEvent{X: float64(x), Y: float64(y), Button: 0})
	}
	g.hub.Tick()
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	c := g.canvas
	if c.width == 0 || c.height == 0 {
		return
	}
	if g.img == nil || g.img.Bounds().Dx() != c.width || g.img.Bounds().Dy() != c.height {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(c.width, c.height)
	}
	if c.dirty {
		g.img.WritePixels(c.pix)
		c.dirty = false
	}
	screen.DrawImage(g.img, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// windowCanvas holds the last presented frame until ebiten draws it.
type windowCanvas struct {
	pix    []byte
	width  int
	height int
	dirty  bool
}

func (c *windowCanvas) Blit(pix []byte, width, height int) error {
	if len(pix) < width*height*4 {
		return errors.New("window: short pixel buffer")
	}
	if cap(c.pix) < len(pix) {
		c.pix = make([]byte, len(pix))
	}
	c.pix = c.pix[:width*height*4]
	copy(c.pix, pix)
	c.width, c.height = width, height
	c.dirty = true
	return nil
}
