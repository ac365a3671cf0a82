package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/edgecam/audio"
	"github.com/lixenwraith/edgecam/config"
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/engine"
	"github.com/lixenwraith/edgecam/event"
	"github.com/lixenwraith/edgecam/input"
	"github.com/lixenwraith/edgecam/parameter"
	"github.com/lixenwraith/edgecam/render"
	"github.com/lixenwraith/edgecam/system"
)

func newRunCmd(a *app) *cobra.Command {
	var mute bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the interactive camera in the terminal",
		Long: `Run the camera in the terminal. Move the mouse to a screen edge to pan,
scroll to zoom. The local champion spawns after match.assign_after_frames.

Keys: q/Esc quit, b toggle bounds (kept across config reloads), m mute cues.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd.Flags(), map[string]string{
				"match.team":         "team",
				"match.auto_team":    "auto-team",
				"camera.draw_bounds": "draw-bounds",
			}); err != nil {
				return err
			}
			if mute {
				a.cfg.Audio.Enabled = false
			}
			return a.runInteractive()
		},
	}

	f := cmd.Flags()
	f.String("team", "", "team request: blue, red, auto, spectator, none")
	f.String("auto-team", "", "side granted to auto-select: blue, red, none")
	f.Bool("draw-bounds", false, "draw the bounds volume")
	f.BoolVar(&mute, "mute", false, "disable audio cues")
	return cmd
}

func (a *app) runInteractive() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("run requires an interactive terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.EnableFocus()
	screen.HideCursor()

	world := engine.NewWorld()
	matchCfg, request := a.cfg.MatchSettings()
	if request != core.TeamNone {
		world.SetTeamRequest(request)
	}
	match := system.NewMatchSystem(world, matchCfg, a.log)
	cam := system.NewCameraSystem(world, a.cfg.CameraSettings(), a.log)
	world.AddSystem(match)
	world.AddSystem(cam)

	world.Subscribe(func(ev event.GameEvent) {
		a.log.Debug("event", "type", ev.Type.String(), "frame", ev.Frame)
	})

	var cues *audio.CuePlayer
	if a.cfg.Audio.Enabled {
		cues = audio.NewCuePlayer()
		if err := cues.Initialize(); err != nil {
			a.log.Warn("audio disabled", "error", err)
			cues = nil
		} else {
			defer cues.Close()
			world.Subscribe(cues.HandleEvent)
		}
	}

	// Reloads arrive on the watcher goroutine and are applied by the frame loop
	reloads := make(chan *event.ConfigPayload, 1)
	if a.v.ConfigFileUsed() != "" {
		config.NewWatcher(a.v, a.log, func(cfg *config.Config, source string) {
			p := &event.ConfigPayload{Config: cfg.CameraSettings(), Source: source}
			select {
			case reloads <- p:
			default:
				// Superseded by a newer write before the loop picked it up
				select {
				case <-reloads:
				default:
				}
				reloads <- p
			}
		}).Start()
	}
	var toggles sessionToggles

	w, h := screen.Size()
	sampler := input.NewSampler(w, h)
	view := render.NewView(screen)

	events := make(chan tcell.Event, parameter.InputEventBuffer)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	clock := engine.NewFrameClock(engine.NewTimeProvider())
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	a.log.Info("session started", "team", request.String(), "width", w, "height", h)

	for {
		select {
		case ev := <-events:
			if sampler.HandleEvent(ev) {
				continue
			}
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				switch {
				case e.Key() == tcell.KeyEscape, e.Key() == tcell.KeyCtrlC, e.Rune() == 'q':
					world.Shutdown()
					a.log.Info("session ended", "frames", world.FrameNumber(), "metrics", world.Resources.Status.Snapshot())
					return nil
				case e.Rune() == 'b':
					cfg := toggles.flipBounds(cam.Controller().Config())
					world.PushEvent(event.EventConfigApplied, &event.ConfigPayload{Config: cfg, Source: "keyboard"})
				case e.Rune() == 'm' && cues != nil:
					a.log.Info("audio mute toggled", "muted", cues.ToggleMute())
				}
			}

		case p := <-reloads:
			p.Config = toggles.apply(p.Config)
			world.PushEvent(event.EventConfigApplied, p)

		case <-ticker.C:
			now, dt := clock.Tick()
			sampler.Store(world.Resources.Input)
			world.Tick(now, dt)
			view.Draw(world.Resources.Camera, world.FrameNumber())
		}
	}
}
