package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/logging"
	"github.com/lixenwraith/edgecam/vmath"
)

// MaxEdgePercent keeps opposite edge bands from overlapping
const MaxEdgePercent = 50.0

// ValidationError represents a single invalid field
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Validate returns all invalid fields
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, c.validateCamera()...)
	errs = append(errs, c.validateMatch()...)
	errs = append(errs, c.validateLogging()...)
	return errs
}

func (c *Config) validateCamera() []ValidationError {
	var errs []ValidationError
	cam := c.Camera

	for _, p := range []struct {
		field string
		value float64
	}{
		{"camera.edge_percent[0]", cam.EdgePercent.X},
		{"camera.edge_percent[1]", cam.EdgePercent.Y},
	} {
		if p.value < 0 || p.value > MaxEdgePercent {
			errs = append(errs, ValidationError{
				Field:   p.field,
				Value:   p.value,
				Message: fmt.Sprintf("must be between 0 and %g", MaxEdgePercent),
			})
		}
	}

	if cam.PanSpeed <= 0 {
		errs = append(errs, ValidationError{Field: "camera.pan_speed", Value: cam.PanSpeed, Message: "must be positive"})
	}
	if cam.ZoomSpeed <= 0 {
		errs = append(errs, ValidationError{Field: "camera.zoom_speed", Value: cam.ZoomSpeed, Message: "must be positive"})
	}
	if cam.MinZoom > cam.MaxZoom {
		errs = append(errs, ValidationError{
			Field:   "camera.min_zoom",
			Value:   cam.MinZoom,
			Message: fmt.Sprintf("must not exceed camera.max_zoom (%g)", cam.MaxZoom),
		})
	}

	for _, b := range []struct {
		field string
		value vmath.Vec3F
	}{
		{"camera.bounds_center", cam.BoundsCenter},
		{"camera.bounds_extents", cam.BoundsExtents},
	} {
		if !finite(b.value) {
			errs = append(errs, ValidationError{
				Field:   b.field,
				Value:   []float64{b.value.X, b.value.Y, b.value.Z},
				Message: "must be finite",
			})
		}
	}

	ext := cam.BoundsExtents
	if ext.X < 0 || ext.Y < 0 || ext.Z < 0 {
		errs = append(errs, ValidationError{
			Field:   "camera.bounds_extents",
			Value:   []float64{ext.X, ext.Y, ext.Z},
			Message: "must be non-negative",
		})
	}

	return errs
}

func finite(v vmath.Vec3F) bool {
	for _, f := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func (c *Config) validateMatch() []ValidationError {
	var errs []ValidationError

	if _, err := core.ParseTeam(c.Match.Team); err != nil {
		errs = append(errs, ValidationError{
			Field:   "match.team",
			Value:   c.Match.Team,
			Message: "must be one of: blue, red, auto, spectator, none",
		})
	}

	auto, err := core.ParseTeam(c.Match.AutoTeam)
	if err != nil || (auto != core.TeamNone && !auto.IsConcrete()) {
		errs = append(errs, ValidationError{
			Field:   "match.auto_team",
			Value:   c.Match.AutoTeam,
			Message: "must be one of: blue, red, none",
		})
	}

	if c.Match.AssignAfterFrames < 0 {
		errs = append(errs, ValidationError{
			Field:   "match.assign_after_frames",
			Value:   c.Match.AssignAfterFrames,
			Message: "must be non-negative",
		})
	}

	return errs
}

func (c *Config) validateLogging() []ValidationError {
	if c.Logging.Level != "" && !logging.ValidLevel(c.Logging.Level) {
		return []ValidationError{{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: "must be one of: debug, info, warn, error",
		}}
	}
	return nil
}
