package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/lixenwraith/edgecam/camera"
	"github.com/lixenwraith/edgecam/parameter"
	"github.com/lixenwraith/edgecam/vmath"
)

var (
	colorBackground = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	colorBounds     = color.RGBA{R: 255, G: 235, B: 4, A: 255}
	colorBlue       = color.RGBA{R: 30, G: 144, B: 255, A: 255}
	colorRed        = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	colorSpectator  = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	colorCamera     = color.RGBA{R: 60, G: 220, B: 90, A: 255}
)

// minGizmoSize keeps degenerate bounds visible
const minGizmoSize = 32

// Gizmo rasterizes the bounds wire box on the X/Z plane with anchors and camera position
// Output is upscaled with nearest-neighbour so single pixel lines stay crisp
// Large bounds are drawn at a reduced pixels-per-unit so the image stays within GizmoMaxPixels
func Gizmo(cfg camera.Config, st camera.State) *image.RGBA {
	lo, hi := cfg.Bounds.Min(), cfg.Bounds.Max()
	spanX, spanZ := finiteSpan(hi.X-lo.X), finiteSpan(hi.Z-lo.Z)
	pad := parameter.GizmoPadding
	scale := max(parameter.GizmoUpscale, 1)
	ppu := gizmoPixelsPerUnit(spanX, spanZ, parameter.GizmoMaxPixels/(scale*scale))

	boxW := int(math.Ceil(spanX * ppu))
	boxH := int(math.Ceil(spanZ * ppu))
	w := max(boxW+2*pad+1, minGizmoSize)
	h := max(boxH+2*pad+1, minGizmoSize)

	// Center the box when clamped up to the minimum size
	offX := float64(w-boxW) / 2
	offY := float64(h-boxH) / 2

	toPx := func(v vmath.Vec3F) (int, int) {
		return int(math.Round((v.X-lo.X)*ppu + offX)), int(math.Round((v.Z-lo.Z)*ppu + offY))
	}

	src := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(src, src.Bounds(), &image.Uniform{C: colorBackground}, image.Point{}, draw.Src)

	x0, y0 := toPx(lo)
	x1, y1 := toPx(hi)
	for x := max(x0, 0); x <= min(x1, w-1); x++ {
		src.SetRGBA(x, y0, colorBounds)
		src.SetRGBA(x, y1, colorBounds)
	}
	for y := max(y0, 0); y <= min(y1, h-1); y++ {
		src.SetRGBA(x0, y, colorBounds)
		src.SetRGBA(x1, y, colorBounds)
	}

	square := func(v vmath.Vec3F, c color.RGBA) {
		cx, cy := toPx(v)
		r := image.Rect(cx-2, cy-2, cx+3, cy+3).Intersect(src.Bounds())
		draw.Draw(src, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
	}
	square(cfg.Anchors.Spectator, colorSpectator)
	square(cfg.Anchors.Blue, colorBlue)
	square(cfg.Anchors.Red, colorRed)

	cx, cy := toPx(st.Position)
	for d := -3; d <= 3; d++ {
		setIn(src, cx+d, cy, colorCamera)
		setIn(src, cx, cy+d, colorCamera)
	}

	if scale == 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// gizmoPixelsPerUnit lowers the configured density until the padded raster fits limit pixels
func gizmoPixelsPerUnit(spanX, spanZ float64, limit int) float64 {
	pad := float64(2*parameter.GizmoPadding + 1)
	area := func(ppu float64) float64 {
		return (math.Ceil(spanX*ppu) + pad) * (math.Ceil(spanZ*ppu) + pad)
	}

	ppu := float64(parameter.GizmoPixelsPerUnit)
	for i := 0; i < 64 && area(ppu) > float64(limit); i++ {
		ppu *= 0.99 * math.Sqrt(float64(limit)/area(ppu))
	}
	return ppu
}

func finiteSpan(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

func setIn(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Bounds()) {
		img.SetRGBA(x, y, c)
	}
}
