package system

import (
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/lixenwraith/edgecam/component"
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/engine"
	"github.com/lixenwraith/edgecam/event"
	"github.com/lixenwraith/edgecam/parameter"
	"github.com/lixenwraith/edgecam/status"
)

// MatchConfig controls the local stand-in for server-side team assignment
type MatchConfig struct {
	// AssignAfterFrames delays champion spawn, simulating network latency
	AssignAfterFrames int64
	// AutoTeam is the side granted to auto-select requests; TeamNone balances by player count
	AutoTeam core.TeamType
	ClientID uint32
}

// DefaultMatchConfig balances auto-select after the default delay
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		AssignAfterFrames: parameter.MatchAssignDelayFrames,
		ClientID:          1,
	}
}

// MatchSystem spawns the locally owned champion once the assignment delay elapses
type MatchSystem struct {
	world *engine.World
	cfg   MatchConfig
	log   *slog.Logger

	assigned bool

	statPlayers *atomic.Int64
}

func NewMatchSystem(world *engine.World, cfg MatchConfig, log *slog.Logger) *MatchSystem {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &MatchSystem{
		world:       world,
		cfg:         cfg,
		log:         log.With("system", "match"),
		statPlayers: world.Resources.Status.Ints.Get(status.KeyMatchPlayers),
	}
	s.statPlayers.Store(int64(world.Components.Player.Len()))
	return s
}

func (s *MatchSystem) Name() string {
	return "match"
}

func (s *MatchSystem) Priority() int {
	return parameter.PriorityMatch
}

// Assigned reports whether the local player has been processed
func (s *MatchSystem) Assigned() bool {
	return s.assigned
}

func (s *MatchSystem) Update() {
	if s.assigned || s.world.FrameNumber() < s.cfg.AssignAfterFrames {
		return
	}
	s.assigned = true

	req, ok := s.world.TryGetTeamRequest()
	if !ok {
		req = core.TeamAutoSelect
	}

	// Spectators own no champion
	if req == core.TeamSpectator {
		s.log.Info("local client joined as spectator", "client", s.cfg.ClientID)
		return
	}

	team := s.resolveTeam(req)

	e := s.world.CreateEntity()
	s.world.Components.Player.Set(e, component.PlayerComponent{ClientID: s.cfg.ClientID, Local: true})
	s.world.Components.OwnerChampion.Set(e, component.OwnerChampionComponent{ClientID: s.cfg.ClientID})
	s.world.Components.GameTeam.Set(e, component.GameTeamComponent{Value: team})
	s.statPlayers.Store(int64(s.world.Components.Player.Len()))

	s.world.PushEvent(event.EventTeamAssigned, &event.TeamPayload{ClientID: s.cfg.ClientID, Team: team})
	s.log.Info("local champion spawned", "client", s.cfg.ClientID, "requested", req.String(), "team", team.String())
}

// AddRemotePlayer seeds the lobby with a player on a fixed team
func (s *MatchSystem) AddRemotePlayer(clientID uint32, team core.TeamType) core.Entity {
	e := s.world.CreateEntity()
	s.world.Components.Player.Set(e, component.PlayerComponent{ClientID: clientID})
	s.world.Components.GameTeam.Set(e, component.GameTeamComponent{Value: team})
	s.statPlayers.Store(int64(s.world.Components.Player.Len()))
	return e
}

func (s *MatchSystem) resolveTeam(req core.TeamType) core.TeamType {
	if req.IsConcrete() {
		return req
	}
	if s.cfg.AutoTeam.IsConcrete() {
		return s.cfg.AutoTeam
	}

	var blue, red int
	for _, e := range s.world.Components.Player.All() {
		t, ok := s.world.Components.GameTeam.Get(e)
		if !ok {
			continue
		}
		switch t.Value {
		case core.TeamBlue:
			blue++
		case core.TeamRed:
			red++
		}
	}
	if red < blue {
		return core.TeamRed
	}
	return core.TeamBlue
}
