package main

import (
	"github.com/lixenwraith/edgecam/camera"
)

// sessionToggles holds keyboard overrides that outlive config file reloads
type sessionToggles struct {
	drawBounds *bool
}

// flipBounds inverts DrawBounds on cfg and remembers the choice
func (t *sessionToggles) flipBounds(cfg camera.Config) camera.Config {
	v := !cfg.DrawBounds
	t.drawBounds = &v
	cfg.DrawBounds = v
	return cfg
}

// apply reimposes remembered overrides on a freshly loaded config
func (t *sessionToggles) apply(cfg camera.Config) camera.Config {
	if t.drawBounds != nil {
		cfg.DrawBounds = *t.drawBounds
	}
	return cfg
}
