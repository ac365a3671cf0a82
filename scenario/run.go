package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/lixenwraith/edgecam/camera"
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/engine"
	"github.com/lixenwraith/edgecam/event"
	"github.com/lixenwraith/edgecam/logging"
	"github.com/lixenwraith/edgecam/system"
	"github.com/lixenwraith/edgecam/vmath"
)

const localClientID = 1

// Frame is the camera state after one simulated frame
type Frame struct {
	N        int64
	Position vmath.Vec3F
	Zoom     float64
	Status   camera.PlacementStatus
	Team     core.TeamType
	Placed   bool
	Clamped  bool
	Zoomed   bool
}

// Result is the outcome of one scenario run
type Result struct {
	Name   string
	Frames []Frame
	Final  camera.State
	Status camera.PlacementStatus
	Team   core.TeamType
	// ResolvedFrame is 0 when placement resolved at init, -1 when it never resolved
	ResolvedFrame int64
	Clamps        int
	Events        []event.GameEvent
	// Failures lists unmet expectations, empty when none were set
	Failures []string
}

// Passed reports whether all expectations held
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// Run plays sc against a fresh world built on base
func Run(base camera.Config, sc *Scenario, log *slog.Logger) (*Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Discard()
	}
	log = log.With("scenario", sc.Name)

	world := engine.NewWorld()
	res := &Result{Name: sc.Name, ResolvedFrame: -1}
	world.Subscribe(func(ev event.GameEvent) {
		res.Events = append(res.Events, ev)
	})

	request, _ := core.ParseTeam(sc.Team)
	if request != core.TeamNone {
		world.SetTeamRequest(request)
	}

	autoTeam, _ := core.ParseTeam(sc.AutoTeam)
	assignAt := int64(math.MaxInt64)
	if sc.AssignFrame != nil {
		assignAt = *sc.AssignFrame
	}
	match := system.NewMatchSystem(world, system.MatchConfig{
		AssignAfterFrames: assignAt,
		AutoTeam:          autoTeam,
		ClientID:          localClientID,
	}, log)
	for _, r := range sc.Remote {
		t, _ := core.ParseTeam(r.Team)
		match.AddRemotePlayer(r.Client, t)
	}

	cam := system.NewCameraSystem(world, sc.CameraConfig(base), log)
	if cam.Controller().Placement().Resolved() {
		res.ResolvedFrame = 0
	}

	world.AddSystem(match)
	world.AddSystem(cam)

	clock := engine.NewManualClock(time.Unix(0, 0))
	res.Frames = make([]Frame, 0, sc.TotalFrames())

	for _, st := range sc.Steps {
		dt := time.Duration(st.dt() * float64(time.Second))
		for i := 0; i < st.frames(); i++ {
			in := world.Resources.Input
			in.Pointer = st.pointer()
			in.Focused = !st.Unfocused
			in.Scroll = st.Scroll

			world.Tick(clock.Advance(dt), dt)

			fr := cam.LastResult()
			p := cam.Controller().Placement()
			if fr.Placed {
				res.ResolvedFrame = world.FrameNumber()
			}
			if fr.Clamped {
				res.Clamps++
			}
			res.Frames = append(res.Frames, Frame{
				N:        world.FrameNumber(),
				Position: fr.State.Position,
				Zoom:     fr.State.Zoom(),
				Status:   p.Status(),
				Team:     p.Team(),
				Placed:   fr.Placed,
				Clamped:  fr.Clamped,
				Zoomed:   fr.Zoomed,
			})
		}
	}

	final := cam.Controller()
	res.Final = final.State()
	res.Status = final.Placement().Status()
	res.Team = final.Placement().Team()

	world.Shutdown()

	if sc.Expect != nil {
		res.Failures = check(sc.Expect, res)
	}
	log.Debug("scenario finished", "frames", len(res.Frames), "status", res.Status.String(), "failures", len(res.Failures))
	return res, nil
}

// RunAll plays scenarios concurrently, each on its own world; results keep input order
// workers <= 0 uses one goroutine per scenario
func RunAll(ctx context.Context, base camera.Config, scenarios []*Scenario, workers int, log *slog.Logger) ([]*Result, error) {
	results := make([]*Result, len(scenarios))

	p := pool.New()
	if workers > 0 {
		p = p.WithMaxGoroutines(workers)
	}
	cp := p.WithContext(ctx)

	for i, sc := range scenarios {
		cp.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Run(base, sc, log)
			if err != nil {
				return fmt.Errorf("%s: %w", sc.Name, err)
			}
			results[i] = r
			return nil
		})
	}

	if err := cp.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func check(e *Expect, r *Result) []string {
	var failures []string
	tol := e.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}

	if e.Team != "" {
		want, _ := core.ParseTeam(e.Team)
		if r.Team != want {
			failures = append(failures, fmt.Sprintf("team = %s, want %s", r.Team, want))
		}
	}
	if e.Status != "" && r.Status.String() != e.Status {
		failures = append(failures, fmt.Sprintf("status = %s, want %s", r.Status, e.Status))
	}
	if e.ResolvedFrame != nil && r.ResolvedFrame != *e.ResolvedFrame {
		failures = append(failures, fmt.Sprintf("resolved frame = %d, want %d", r.ResolvedFrame, *e.ResolvedFrame))
	}
	if len(e.Position) == 3 {
		want := vec3(e.Position)
		if !vmath.V3FEqual(r.Final.Position, want, tol) {
			failures = append(failures, fmt.Sprintf("position = %+v, want %+v", r.Final.Position, want))
		}
	}
	if e.Zoom != nil && math.Abs(r.Final.Zoom()-*e.Zoom) > tol {
		failures = append(failures, fmt.Sprintf("zoom = %g, want %g", r.Final.Zoom(), *e.Zoom))
	}
	return failures
}
