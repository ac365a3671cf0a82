package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/edgecam/camera"
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/engine"
	"github.com/lixenwraith/edgecam/parameter"
	"github.com/lixenwraith/edgecam/vmath"
)

var (
	styleDefault = tcell.StyleDefault
	styleBounds  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleBlue    = tcell.StyleDefault.Foreground(tcell.ColorDodgerBlue).Bold(true)
	styleRed     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSpec    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleCamera  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleGrid    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleHUD     = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
)

// gridStep is world units between ground grid marks
const gridStep = 10.0

// View draws a top-down map centered on the camera
// +X is right, +Z is down the screen so the top edge band pans toward -Z
type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// projection maps world X/Z to screen cells for one frame
type projection struct {
	center     vmath.Vec3F
	cellX      float64 // world units per column
	cellZ      float64 // world units per row
	halfW      int
	halfH      int
	mapW, mapH int
}

func newProjection(st camera.State, w, h int) projection {
	scale := st.Zoom() / parameter.ViewZoomReference
	if scale <= 0 {
		scale = 1
	}
	mapH := h - parameter.HUDHeight
	if mapH < 0 {
		mapH = 0
	}
	return projection{
		center: st.Position,
		cellX:  parameter.ViewWorldPerCellX * scale,
		cellZ:  parameter.ViewWorldPerCellZ * scale,
		halfW:  w / 2,
		halfH:  mapH / 2,
		mapW:   w,
		mapH:   mapH,
	}
}

func (p projection) toScreen(v vmath.Vec3F) (int, int) {
	x := p.halfW + int(math.Round((v.X-p.center.X)/p.cellX))
	y := p.halfH + int(math.Round((v.Z-p.center.Z)/p.cellZ))
	return x, y
}

func (p projection) toWorld(x, y int) (float64, float64) {
	return p.center.X + float64(x-p.halfW)*p.cellX, p.center.Z + float64(y-p.halfH)*p.cellZ
}

func (p projection) inMap(x, y int) bool {
	return x >= 0 && x < p.mapW && y >= 0 && y < p.mapH
}

// Draw renders one frame from the published camera resource and shows it
func (v *View) Draw(cam *engine.CameraResource, frame int64) {
	v.screen.Clear()
	w, h := v.screen.Size()
	p := newProjection(cam.State, w, h)

	v.drawGrid(p)
	if cam.Config.DrawBounds {
		v.drawBounds(p, cam.Config.Bounds)
	}

	a := cam.Config.Anchors
	v.drawMarker(p, a.Spectator, 'S', styleSpec)
	v.drawMarker(p, a.Blue, 'B', styleBlue)
	v.drawMarker(p, a.Red, 'R', styleRed)
	v.drawMarker(p, cam.State.Position, '+', styleCamera)

	v.drawHUD(cam, frame, w, h)
	v.screen.Show()
}

func (v *View) drawGrid(p projection) {
	for y := 0; y < p.mapH; y++ {
		for x := 0; x < p.mapW; x++ {
			wx, wz := p.toWorld(x, y)
			px, pz := p.toWorld(x-1, y-1)
			if math.Floor(wx/gridStep) != math.Floor(px/gridStep) &&
				math.Floor(wz/gridStep) != math.Floor(pz/gridStep) {
				v.screen.SetContent(x, y, '·', nil, styleGrid)
			}
		}
	}
}

func (v *View) drawBounds(p projection, b vmath.Box) {
	x0, y0 := p.toScreen(b.Min())
	x1, y1 := p.toScreen(b.Max())

	for x := x0 + 1; x < x1; x++ {
		v.set(p, x, y0, '─', styleBounds)
		v.set(p, x, y1, '─', styleBounds)
	}
	for y := y0 + 1; y < y1; y++ {
		v.set(p, x0, y, '│', styleBounds)
		v.set(p, x1, y, '│', styleBounds)
	}
	v.set(p, x0, y0, '┌', styleBounds)
	v.set(p, x1, y0, '┐', styleBounds)
	v.set(p, x0, y1, '└', styleBounds)
	v.set(p, x1, y1, '┘', styleBounds)
}

func (v *View) drawMarker(p projection, pos vmath.Vec3F, r rune, style tcell.Style) {
	x, y := p.toScreen(pos)
	v.set(p, x, y, r, style)
}

func (v *View) set(p projection, x, y int, r rune, style tcell.Style) {
	if p.inMap(x, y) {
		v.screen.SetContent(x, y, r, nil, style)
	}
}

func (v *View) drawHUD(cam *engine.CameraResource, frame int64, w, h int) {
	if h < parameter.HUDHeight {
		return
	}
	team := cam.Team
	if team == core.TeamNone {
		team = core.TeamSpectator
	}
	pos := cam.State.Position
	line := fmt.Sprintf(" pos %7.1f %7.1f  zoom %5.1f  %-9s %-10s  frame %d  q:quit b:bounds",
		pos.X, pos.Z, cam.State.Zoom(), team.String(), cam.Placement.String(), frame)

	y := h - 1
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		v.screen.SetContent(x, y, r, nil, styleHUD)
	}
}
