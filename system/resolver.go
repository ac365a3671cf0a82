package system

import (
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/engine"
)

// WorldTeamResolver answers camera team queries from world components
type WorldTeamResolver struct {
	world *engine.World
}

func NewWorldTeamResolver(world *engine.World) *WorldTeamResolver {
	return &WorldTeamResolver{world: world}
}

// TryGetLocalTeamRequest reads the client's team request singleton
func (r *WorldTeamResolver) TryGetLocalTeamRequest() (core.TeamType, bool) {
	return r.world.TryGetTeamRequest()
}

// TryFindLocallyOwnedAgentTeam reads the team of the locally owned champion
// A champion whose team component has not arrived yet counts as not found
func (r *WorldTeamResolver) TryFindLocallyOwnedAgentTeam() (core.TeamType, bool) {
	champ, ok := r.world.TryFindOwnedChampion()
	if !ok {
		return core.TeamNone, false
	}
	team, ok := r.world.Components.GameTeam.Get(champ)
	if !ok {
		return core.TeamNone, false
	}
	return team.Value, true
}
