// Package config loads camera, match, logging and audio settings through viper.
// Files may be YAML or TOML; EDGECAM_ environment variables override file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/lixenwraith/edgecam/camera"
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/system"
	"github.com/lixenwraith/edgecam/vmath"
)

const (
	EnvPrefix = "EDGECAM"
	FileName  = "edgecam"
)

// Config is the complete file layout
type Config struct {
	Camera  CameraConfig  `mapstructure:"camera"`
	Match   MatchConfig   `mapstructure:"match"`
	Logging LoggingConfig `mapstructure:"logging"`
	Audio   AudioConfig   `mapstructure:"audio"`
}

// CameraConfig holds controller tuning
type CameraConfig struct {
	// EdgePercent is the edge band size in percent of the screen, [x, y]
	EdgePercent vmath.Vec2F `mapstructure:"edge_percent"`
	PanSpeed    float64     `mapstructure:"pan_speed"`
	ZoomSpeed   float64     `mapstructure:"zoom_speed"`
	MinZoom     float64     `mapstructure:"min_zoom"`
	MaxZoom     float64     `mapstructure:"max_zoom"`
	// FollowOffset is the initial rig offset, Y is the zoom distance
	FollowOffset  vmath.Vec3F `mapstructure:"follow_offset"`
	BoundsCenter  vmath.Vec3F `mapstructure:"bounds_center"`
	BoundsExtents vmath.Vec3F `mapstructure:"bounds_extents"`

	AnchorBlue      vmath.Vec3F `mapstructure:"anchor_blue"`
	AnchorRed       vmath.Vec3F `mapstructure:"anchor_red"`
	AnchorSpectator vmath.Vec3F `mapstructure:"anchor_spectator"`

	DrawBounds bool `mapstructure:"draw_bounds"`
}

// MatchConfig holds the local match stand-in settings
type MatchConfig struct {
	// Team is the local team request, empty or "none" leaves it unset
	Team string `mapstructure:"team"`
	// AutoTeam is granted to auto-select requests, "none" balances by player count
	AutoTeam          string `mapstructure:"auto_team"`
	AssignAfterFrames int64  `mapstructure:"assign_after_frames"`
	ClientID          uint32 `mapstructure:"client_id"`
}

type LoggingConfig struct {
	// Dir receives edgecam.log, empty disables file logging
	Dir   string `mapstructure:"dir"`
	Level string `mapstructure:"level"`
}

type AudioConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// Default returns the built-in configuration
func Default() *Config {
	cam := camera.DefaultConfig()
	match := system.DefaultMatchConfig()
	return &Config{
		Camera: CameraConfig{
			EdgePercent:     cam.EdgePercent,
			PanSpeed:        cam.PanSpeed,
			ZoomSpeed:       cam.ZoomSpeed,
			MinZoom:         cam.MinZoomDistance,
			MaxZoom:         cam.MaxZoomDistance,
			FollowOffset:    cam.FollowOffset,
			BoundsCenter:    cam.Bounds.Center,
			BoundsExtents:   cam.Bounds.Extents,
			AnchorBlue:      cam.Anchors.Blue,
			AnchorRed:       cam.Anchors.Red,
			AnchorSpectator: cam.Anchors.Spectator,
			DrawBounds:      cam.DrawBounds,
		},
		Match: MatchConfig{
			Team:              core.TeamAutoSelect.String(),
			AutoTeam:          core.TeamNone.String(),
			AssignAfterFrames: match.AssignAfterFrames,
			ClientID:          match.ClientID,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}

// SetDefaults registers every key on v so env overrides and Unmarshal see the full tree
func SetDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("camera.edge_percent", vec2List(d.Camera.EdgePercent))
	v.SetDefault("camera.pan_speed", d.Camera.PanSpeed)
	v.SetDefault("camera.zoom_speed", d.Camera.ZoomSpeed)
	v.SetDefault("camera.min_zoom", d.Camera.MinZoom)
	v.SetDefault("camera.max_zoom", d.Camera.MaxZoom)
	v.SetDefault("camera.follow_offset", vec3List(d.Camera.FollowOffset))
	v.SetDefault("camera.bounds_center", vec3List(d.Camera.BoundsCenter))
	v.SetDefault("camera.bounds_extents", vec3List(d.Camera.BoundsExtents))
	v.SetDefault("camera.anchor_blue", vec3List(d.Camera.AnchorBlue))
	v.SetDefault("camera.anchor_red", vec3List(d.Camera.AnchorRed))
	v.SetDefault("camera.anchor_spectator", vec3List(d.Camera.AnchorSpectator))
	v.SetDefault("camera.draw_bounds", d.Camera.DrawBounds)

	v.SetDefault("match.team", d.Match.Team)
	v.SetDefault("match.auto_team", d.Match.AutoTeam)
	v.SetDefault("match.assign_after_frames", d.Match.AssignAfterFrames)
	v.SetDefault("match.client_id", d.Match.ClientID)

	v.SetDefault("logging.dir", d.Logging.Dir)
	v.SetDefault("logging.level", d.Logging.Level)

	v.SetDefault("audio.enabled", d.Audio.Enabled)
}

// NewViper builds a viper instance over fs with defaults and env binding
// An empty path searches ./edgecam.{yaml,toml} and $HOME/.config/edgecam
func NewViper(fs afero.Fs, path string) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		return v
	}
	v.SetConfigName(FileName)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", FileName))
	}
	return v
}

// ReadIn reads the config file, a missing searched file is not an error
func ReadIn(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Load decodes v and validates the result
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		VectorHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&cfg, hook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// CameraSettings converts to the controller config
func (c *Config) CameraSettings() camera.Config {
	return camera.Config{
		EdgePercent:     c.Camera.EdgePercent,
		PanSpeed:        c.Camera.PanSpeed,
		ZoomSpeed:       c.Camera.ZoomSpeed,
		MinZoomDistance: c.Camera.MinZoom,
		MaxZoomDistance: c.Camera.MaxZoom,
		FollowOffset:    c.Camera.FollowOffset,
		Bounds: vmath.Box{
			Center:  c.Camera.BoundsCenter,
			Extents: c.Camera.BoundsExtents,
		},
		Anchors: camera.Anchors{
			Blue:      c.Camera.AnchorBlue,
			Red:       c.Camera.AnchorRed,
			Spectator: c.Camera.AnchorSpectator,
		},
		DrawBounds: c.Camera.DrawBounds,
	}
}

// MatchSettings converts to the match system config and the local team request
// Validate must have passed, parse failures fall back to TeamNone
func (c *Config) MatchSettings() (system.MatchConfig, core.TeamType) {
	request, _ := core.ParseTeam(c.Match.Team)
	auto, _ := core.ParseTeam(c.Match.AutoTeam)
	return system.MatchConfig{
		AssignAfterFrames: c.Match.AssignAfterFrames,
		AutoTeam:          auto,
		ClientID:          c.Match.ClientID,
	}, request
}

// Map renders the config as nested maps with vectors as lists, for encoders
func (c *Config) Map() map[string]any {
	return map[string]any{
		"camera": map[string]any{
			"edge_percent":     vec2List(c.Camera.EdgePercent),
			"pan_speed":        c.Camera.PanSpeed,
			"zoom_speed":       c.Camera.ZoomSpeed,
			"min_zoom":         c.Camera.MinZoom,
			"max_zoom":         c.Camera.MaxZoom,
			"follow_offset":    vec3List(c.Camera.FollowOffset),
			"bounds_center":    vec3List(c.Camera.BoundsCenter),
			"bounds_extents":   vec3List(c.Camera.BoundsExtents),
			"anchor_blue":      vec3List(c.Camera.AnchorBlue),
			"anchor_red":       vec3List(c.Camera.AnchorRed),
			"anchor_spectator": vec3List(c.Camera.AnchorSpectator),
			"draw_bounds":      c.Camera.DrawBounds,
		},
		"match": map[string]any{
			"team":                c.Match.Team,
			"auto_team":           c.Match.AutoTeam,
			"assign_after_frames": c.Match.AssignAfterFrames,
			"client_id":           c.Match.ClientID,
		},
		"logging": map[string]any{
			"dir":   c.Logging.Dir,
			"level": c.Logging.Level,
		},
		"audio": map[string]any{
			"enabled": c.Audio.Enabled,
		},
	}
}

func vec2List(v vmath.Vec2F) []float64 { return []float64{v.X, v.Y} }
func vec3List(v vmath.Vec3F) []float64 { return []float64{v.X, v.Y, v.Z} }
