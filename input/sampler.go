package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/edgecam/camera"
	"github.com/lixenwraith/edgecam/engine"
	"github.com/lixenwraith/edgecam/vmath"
)

// Sampler turns terminal mouse, focus and resize events into per-frame camera input
// Fed and drained from the frame loop goroutine only
type Sampler struct {
	width, height int

	x, y    int
	seen    bool
	focused bool

	scroll float64
}

// NewSampler creates a sampler for a screen of the given cell size
// Focus starts true: terminals without focus reporting never send a blur
func NewSampler(width, height int) *Sampler {
	return &Sampler{
		width:   width,
		height:  height,
		focused: true,
	}
}

// HandleEvent consumes events relevant to the camera, returns true if consumed
func (s *Sampler) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventMouse:
		s.x, s.y = e.Position()
		s.seen = true
		btn := e.Buttons()
		if btn&tcell.WheelUp != 0 {
			s.scroll++
		}
		if btn&tcell.WheelDown != 0 {
			s.scroll--
		}
		return true
	case *tcell.EventFocus:
		s.focused = e.Focused
		return true
	case *tcell.EventResize:
		s.width, s.height = e.Size()
		return false // Renderers also need it
	}
	return false
}

// Pointer returns the normalized pointer at the cell center, screen center before any mouse event
func (s *Sampler) Pointer() vmath.Vec2F {
	if !s.seen || s.width <= 0 || s.height <= 0 {
		return vmath.Vec2F{X: 0.5, Y: 0.5}
	}
	return vmath.Vec2F{
		X: vmath.ClampF((float64(s.x)+0.5)/float64(s.width), 0, 1),
		Y: vmath.ClampF((float64(s.y)+0.5)/float64(s.height), 0, 1),
	}
}

// Focused reports last known focus state
func (s *Sampler) Focused() bool {
	return s.focused
}

// Frame returns the sample for this frame and resets accumulated scroll
func (s *Sampler) Frame(dt float64) camera.FrameInput {
	in := camera.FrameInput{
		Pointer: s.Pointer(),
		Focused: s.focused,
		Scroll:  s.scroll,
		DT:      dt,
	}
	s.scroll = 0
	return in
}

// Store writes the current sample into the world input resource and resets scroll
func (s *Sampler) Store(res *engine.InputResource) {
	res.Pointer = s.Pointer()
	res.Focused = s.focused
	res.Scroll = s.scroll
	s.scroll = 0
}
