// Package camera implements the top-down strategy camera: edge panning,
// bounds clamping, scroll zoom and one-shot team spawn placement.
// The controller owns no loop or goroutine, the host calls Update once per frame.
package camera

import (
	"io"
	"log/slog"

	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/vmath"
)

// State is the camera rig state exposed to renderers
type State struct {
	Position     vmath.Vec3F
	FollowOffset vmath.Vec3F
}

// Zoom returns the zoom distance (follow offset Y)
func (s State) Zoom() float64 {
	return s.FollowOffset.Y
}

// FrameResult summarizes what changed during one Update
type FrameResult struct {
	// Placed is set on the single frame placement resolved
	Placed bool
	Team   core.TeamType

	Moved   bool
	Clamped bool
	Zoomed  bool

	State State
}

// Controller is the per-frame camera control loop
// Not safe for concurrent use; owned by the frame loop
type Controller struct {
	cfg       Config
	threshold vmath.Vec2F

	state     State
	placement Placement
	resolver  TeamResolver

	initialized bool
	active      bool

	log *slog.Logger
}

// Option configures a Controller
type Option func(*Controller)

// WithLogger sets the structured logger
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a controller, call Init before the first Update
func New(cfg Config, resolver TeamResolver, opts ...Option) *Controller {
	c := &Controller{
		resolver: resolver,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.setConfig(cfg)
	return c
}

// Init places the camera at the spectator anchor and checks the synchronous team request
// Returns true when placement resolved immediately
func (c *Controller) Init() bool {
	if c.initialized {
		return c.placement.Resolved()
	}
	c.initialized = true
	c.active = true

	c.state.Position = c.cfg.Anchors.Spectator
	c.state.FollowOffset = c.cfg.FollowOffset
	c.state.FollowOffset.Y = vmath.ClampF(c.state.FollowOffset.Y, c.cfg.MinZoomDistance, c.cfg.MaxZoomDistance)

	if c.placement.Init(c.resolver, c.cfg.Anchors, &c.state.Position) {
		c.log.Info("camera placed from team request",
			"team", c.placement.Team().String(),
			"x", c.state.Position.X, "y", c.state.Position.Y, "z", c.state.Position.Z)
		return true
	}

	c.log.Debug("camera placement deferred", "x", c.state.Position.X, "z", c.state.Position.Z)
	return false
}

// Update runs placement, edge pan, bounds clamp and zoom for one frame
func (c *Controller) Update(in Input) FrameResult {
	if !c.active || in == nil {
		return FrameResult{State: c.state}
	}

	var res FrameResult

	// Placement
	if !c.placement.Resolved() && c.placement.Poll(c.resolver, c.cfg.Anchors, &c.state.Position) {
		res.Placed = true
		res.Team = c.placement.Team()
		c.log.Info("camera placed from owned agent",
			"team", res.Team.String(),
			"polls", c.placement.Polls(),
			"x", c.state.Position.X, "y", c.state.Position.Y, "z", c.state.Position.Z)
	}

	dt := in.DeltaTime()

	// Edge pan
	dir := EdgeDirection(in.PointerPosition(), in.HasFocus(), c.threshold)
	if !vmath.V3FIsZero(dir) {
		c.state.Position = Pan(c.state.Position, dir, c.cfg.PanSpeed, dt)
		res.Moved = true
	}

	// Bounds, unconditional
	c.state.Position, res.Clamped = ClampPosition(c.state.Position, c.cfg.Bounds)

	// Zoom
	c.state.FollowOffset.Y, res.Zoomed = ApplyZoom(
		c.state.FollowOffset.Y, in.ScrollDelta(), c.cfg.ZoomSpeed, dt,
		c.cfg.MinZoomDistance, c.cfg.MaxZoomDistance,
	)

	res.State = c.state
	return res
}

// Teardown stops further updates; placement status is not reset
func (c *Controller) Teardown() {
	if !c.active {
		return
	}
	c.active = false
	c.log.Debug("camera controller torn down", "placement", c.placement.Status().String())
}

// ApplyConfig swaps tuning at runtime
// Thresholds are recomputed and zoom re-clamped; placement is never re-run
func (c *Controller) ApplyConfig(cfg Config) {
	c.setConfig(cfg)
	if c.initialized {
		c.state.FollowOffset.Y = vmath.ClampF(c.state.FollowOffset.Y, cfg.MinZoomDistance, cfg.MaxZoomDistance)
	}
	c.log.Debug("camera config applied",
		"edge_x", c.threshold.X, "edge_y", c.threshold.Y,
		"pan_speed", cfg.PanSpeed, "zoom_speed", cfg.ZoomSpeed,
		"zoom_min", cfg.MinZoomDistance, "zoom_max", cfg.MaxZoomDistance)
}

func (c *Controller) setConfig(cfg Config) {
	c.cfg = cfg
	c.threshold = cfg.EdgeThreshold()
}

// SetPosition moves the camera directly, the next Update clamps it
func (c *Controller) SetPosition(p vmath.Vec3F) {
	c.state.Position = p
}

func (c *Controller) Config() Config            { return c.cfg }
func (c *Controller) State() State              { return c.state }
func (c *Controller) Position() vmath.Vec3F     { return c.state.Position }
func (c *Controller) FollowOffset() vmath.Vec3F { return c.state.FollowOffset }
func (c *Controller) Zoom() float64             { return c.state.FollowOffset.Y }
func (c *Controller) Placement() *Placement     { return &c.placement }
func (c *Controller) Active() bool              { return c.active }
