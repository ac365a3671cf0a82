// Package scenario drives the camera headless from scripted frame input.
// Scripts are YAML documents; several may share one file separated by "---".
package scenario

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/edgecam/camera"
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/vmath"
)

// DefaultDT is the frame delta used when a step omits dt
const DefaultDT = 1.0 / 60.0

// DefaultTolerance is used when an expectation omits tolerance
const DefaultTolerance = 1e-6

//go:embed builtin.yaml
var builtinYAML string

// Scenario is one scripted session
type Scenario struct {
	Name string `yaml:"name"`
	// Team is the local team request, empty or "none" leaves it unset
	Team string `yaml:"team"`
	// AutoTeam is granted to auto-select requests, empty balances by player count
	AutoTeam string `yaml:"auto_team"`
	// AssignFrame is the frame the local champion spawns on, nil never spawns one
	AssignFrame *int64   `yaml:"assign_frame"`
	Remote      []Remote `yaml:"remote"`

	Camera CameraOverride `yaml:"camera"`
	Steps  []Step         `yaml:"steps"`
	Expect *Expect        `yaml:"expect"`
}

// Remote is a pre-seeded non-local player
type Remote struct {
	Client uint32 `yaml:"client"`
	Team   string `yaml:"team"`
}

// CameraOverride replaces selected fields of the base camera config
type CameraOverride struct {
	PanSpeed  *float64 `yaml:"pan_speed"`
	ZoomSpeed *float64 `yaml:"zoom_speed"`
	MinZoom   *float64 `yaml:"min_zoom"`
	MaxZoom   *float64 `yaml:"max_zoom"`
	// Zoom is the initial follow offset distance
	Zoom          *float64  `yaml:"zoom"`
	EdgePercent   []float64 `yaml:"edge_percent"`
	BoundsExtents []float64 `yaml:"bounds_extents"`
	// Start replaces the spectator anchor, where the camera sits before placement
	Start []float64 `yaml:"start"`
}

// Step repeats one input sample for Frames frames
type Step struct {
	// Pointer is the normalized [x, y] position, default screen center
	Pointer   []float64 `yaml:"pointer"`
	Unfocused bool      `yaml:"unfocused"`
	Scroll    float64   `yaml:"scroll"`
	DT        float64   `yaml:"dt"`
	Frames    int       `yaml:"frames"`
}

// Expect is checked against the final state
type Expect struct {
	Team          string    `yaml:"team"`
	Status        string    `yaml:"status"`
	ResolvedFrame *int64    `yaml:"resolved_frame"`
	Position      []float64 `yaml:"position"`
	Zoom          *float64  `yaml:"zoom"`
	Tolerance     float64   `yaml:"tolerance"`
}

// Parse reads every YAML document from r
func Parse(r io.Reader) ([]*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var out []*Scenario
	for i := 0; ; i++ {
		var sc Scenario
		err := dec.Decode(&sc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", i, err)
		}
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("scenario-%d", i+1)
		}
		if err := sc.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", sc.Name, err)
		}
		out = append(out, &sc)
	}
	return out, nil
}

// LoadFiles parses each file on fs in order
func LoadFiles(fs afero.Fs, paths ...string) ([]*Scenario, error) {
	var out []*Scenario
	for _, p := range paths {
		f, err := fs.Open(p)
		if err != nil {
			return nil, fmt.Errorf("open scenario: %w", err)
		}
		scs, err := Parse(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		out = append(out, scs...)
	}
	return out, nil
}

// Builtin returns the bundled reference scenarios
func Builtin() []*Scenario {
	scs, err := Parse(strings.NewReader(builtinYAML))
	if err != nil {
		panic(fmt.Sprintf("builtin scenarios: %v", err))
	}
	return scs
}

// Validate checks team names, vector lengths and step counts
func (s *Scenario) Validate() error {
	if _, err := core.ParseTeam(s.Team); err != nil {
		return err
	}
	if auto, err := core.ParseTeam(s.AutoTeam); err != nil {
		return err
	} else if auto != core.TeamNone && !auto.IsConcrete() {
		return fmt.Errorf("auto_team must be blue or red, got %q", s.AutoTeam)
	}
	for _, r := range s.Remote {
		if t, err := core.ParseTeam(r.Team); err != nil || !t.IsConcrete() {
			return fmt.Errorf("remote %d team must be blue or red, got %q", r.Client, r.Team)
		}
	}

	for _, v := range []struct {
		name string
		vals []float64
		n    int
	}{
		{"camera.edge_percent", s.Camera.EdgePercent, 2},
		{"camera.bounds_extents", s.Camera.BoundsExtents, 3},
		{"camera.start", s.Camera.Start, 3},
	} {
		if v.vals != nil && len(v.vals) != v.n {
			return fmt.Errorf("%s needs %d components, got %d", v.name, v.n, len(v.vals))
		}
	}

	for i, st := range s.Steps {
		if st.Pointer != nil && len(st.Pointer) != 2 {
			return fmt.Errorf("step %d: pointer needs 2 components", i)
		}
		if st.Frames < 0 || st.DT < 0 {
			return fmt.Errorf("step %d: frames and dt must be non-negative", i)
		}
	}

	if e := s.Expect; e != nil {
		if _, err := core.ParseTeam(e.Team); err != nil {
			return err
		}
		if e.Status != "" && e.Status != camera.PlacementResolved.String() && e.Status != camera.PlacementUnresolved.String() {
			return fmt.Errorf("expect.status must be resolved or unresolved, got %q", e.Status)
		}
		if e.Position != nil && len(e.Position) != 3 {
			return fmt.Errorf("expect.position needs 3 components")
		}
	}
	return nil
}

// CameraConfig applies the overrides to base
func (s *Scenario) CameraConfig(base camera.Config) camera.Config {
	o := s.Camera
	cfg := base
	if o.PanSpeed != nil {
		cfg.PanSpeed = *o.PanSpeed
	}
	if o.ZoomSpeed != nil {
		cfg.ZoomSpeed = *o.ZoomSpeed
	}
	if o.MinZoom != nil {
		cfg.MinZoomDistance = *o.MinZoom
	}
	if o.MaxZoom != nil {
		cfg.MaxZoomDistance = *o.MaxZoom
	}
	if o.Zoom != nil {
		cfg.FollowOffset.Y = *o.Zoom
	}
	if len(o.EdgePercent) == 2 {
		cfg.EdgePercent = vmath.Vec2F{X: o.EdgePercent[0], Y: o.EdgePercent[1]}
	}
	if len(o.BoundsExtents) == 3 {
		cfg.Bounds.Extents = vec3(o.BoundsExtents)
	}
	if len(o.Start) == 3 {
		cfg.Anchors.Spectator = vec3(o.Start)
	}
	return cfg
}

// TotalFrames sums frames across steps, a zero count means one frame
func (s *Scenario) TotalFrames() int {
	n := 0
	for _, st := range s.Steps {
		n += st.frames()
	}
	return n
}

func (st Step) frames() int {
	if st.Frames == 0 {
		return 1
	}
	return st.Frames
}

func (st Step) dt() float64 {
	if st.DT == 0 {
		return DefaultDT
	}
	return st.DT
}

func (st Step) pointer() vmath.Vec2F {
	if st.Pointer == nil {
		return vmath.Vec2F{X: 0.5, Y: 0.5}
	}
	return vmath.Vec2F{X: st.Pointer[0], Y: st.Pointer[1]}
}

func vec3(v []float64) vmath.Vec3F {
	return vmath.Vec3F{X: v[0], Y: v[1], Z: v[2]}
}
