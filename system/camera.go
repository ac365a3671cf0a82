package system

import (
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/edgecam/camera"
	"github.com/lixenwraith/edgecam/engine"
	"github.com/lixenwraith/edgecam/event"
	"github.com/lixenwraith/edgecam/parameter"
	"github.com/lixenwraith/edgecam/status"
)

// CameraSystem drives the camera controller from world input and publishes its state
type CameraSystem struct {
	world *engine.World
	ctrl  *camera.Controller
	log   *slog.Logger

	wasClamped bool
	last       camera.FrameResult

	// Cached metric pointers
	statPos      *status.AtomicVec3
	statX        *status.AtomicFloat
	statY        *status.AtomicFloat
	statZ        *status.AtomicFloat
	statZoom     *status.AtomicFloat
	statClamps   *atomic.Int64
	statResolved *atomic.Bool
	statTeam     *status.AtomicString
	statPolls    *atomic.Int64
}

// NewCameraSystem creates the controller against world-backed team queries and runs its init step
func NewCameraSystem(world *engine.World, cfg camera.Config, log *slog.Logger) *CameraSystem {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	reg := world.Resources.Status
	s := &CameraSystem{
		world: world,
		log:   log.With("system", "camera"),

		statPos:      reg.Vectors.Get(status.KeyCameraPosition),
		statX:        reg.Floats.Get(status.KeyCameraX),
		statY:        reg.Floats.Get(status.KeyCameraY),
		statZ:        reg.Floats.Get(status.KeyCameraZ),
		statZoom:     reg.Floats.Get(status.KeyCameraZoom),
		statClamps:   reg.Ints.Get(status.KeyCameraClamps),
		statResolved: reg.Bools.Get(status.KeyPlacementResolved),
		statTeam:     reg.Strings.Get(status.KeyPlacementTeam),
		statPolls:    reg.Ints.Get(status.KeyPlacementPolls),
	}
	s.ctrl = camera.New(cfg, NewWorldTeamResolver(world), camera.WithLogger(s.log))

	s.Init()
	return s
}

// Init runs the synchronous placement check
func (s *CameraSystem) Init() {
	if s.ctrl.Init() {
		p := s.ctrl.Placement()
		s.world.PushEvent(event.EventPlacementResolved, &event.PlacementPayload{
			Team:     p.Team(),
			Position: s.ctrl.Position(),
		})
	}
	s.publish()
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) Update() {
	in := s.world.Resources.Input
	dt := s.world.Resources.Time.DeltaTime.Seconds()

	res := s.ctrl.Update(camera.FrameInput{
		Pointer: in.Pointer,
		Focused: in.Focused,
		Scroll:  in.Scroll,
		DT:      dt,
	})
	s.last = res

	if res.Placed {
		s.world.PushEvent(event.EventPlacementResolved, &event.PlacementPayload{
			Team:     res.Team,
			Position: res.State.Position,
			Deferred: true,
		})
	}

	if res.Clamped {
		s.statClamps.Add(1)
		// Only the first frame of contact, holding the pointer on an edge would spam otherwise
		if !s.wasClamped {
			s.world.PushEvent(event.EventCameraClamped, &event.CameraPayload{
				Position: res.State.Position,
				Zoom:     res.State.Zoom(),
			})
		}
	}
	s.wasClamped = res.Clamped

	if res.Zoomed {
		s.world.PushEvent(event.EventZoomChanged, &event.CameraPayload{
			Position: res.State.Position,
			Zoom:     res.State.Zoom(),
		})
	}

	s.publish()
}

// EventTypes returns events this system handles
func (s *CameraSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventConfigApplied}
}

// HandleEvent applies reloaded config between frames
func (s *CameraSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventConfigApplied:
		if payload, ok := ev.Payload.(*event.ConfigPayload); ok {
			s.ctrl.ApplyConfig(payload.Config)
			s.log.Info("camera config reloaded", "source", payload.Source, "frame", ev.Frame)
			s.publish()
		}
	}
}

// Teardown stops the controller
func (s *CameraSystem) Teardown() {
	s.ctrl.Teardown()
}

// Controller exposes the underlying controller for hosts and tests
func (s *CameraSystem) Controller() *camera.Controller {
	return s.ctrl
}

// LastResult returns the controller outcome of the most recent Update
func (s *CameraSystem) LastResult() camera.FrameResult {
	return s.last
}

func (s *CameraSystem) publish() {
	st := s.ctrl.State()
	p := s.ctrl.Placement()

	s.statPos.Set(st.Position)
	s.statX.Set(st.Position.X)
	s.statY.Set(st.Position.Y)
	s.statZ.Set(st.Position.Z)
	s.statZoom.Set(st.Zoom())
	s.statResolved.Store(p.Resolved())
	s.statTeam.Store(p.Team().String())
	s.statPolls.Store(int64(p.Polls()))

	cr := s.world.Resources.Camera
	cr.State = st
	cr.Placement = p.Status()
	cr.Team = p.Team()
	cr.Config = s.ctrl.Config()
}
