package camera

import (
	"github.com/lixenwraith/edgecam/core"
	"github.com/lixenwraith/edgecam/vmath"
)

// PlacementStatus tracks whether the starting position has been committed
type PlacementStatus uint8

const (
	PlacementUnresolved PlacementStatus = iota
	PlacementResolved
)

func (s PlacementStatus) String() string {
	if s == PlacementResolved {
		return "resolved"
	}
	return "unresolved"
}

// Placement is the one-shot spawn placement state machine
// Unresolved -> Resolved happens at most once and is terminal
type Placement struct {
	status PlacementStatus
	team   core.TeamType
	polls  int
}

// Status returns current state
func (p *Placement) Status() PlacementStatus {
	return p.status
}

// Resolved is a shorthand for Status() == PlacementResolved
func (p *Placement) Resolved() bool {
	return p.status == PlacementResolved
}

// Team returns the committed team, TeamNone while unresolved
func (p *Placement) Team() core.TeamType {
	return p.team
}

// Polls returns how many per-frame agent queries were issued
func (p *Placement) Polls() int {
	return p.polls
}

// Init checks the synchronous team request once
// A known request moves the camera to its anchor; auto-select and unknown requests stay unresolved
func (p *Placement) Init(r TeamResolver, anchors Anchors, pos *vmath.Vec3F) bool {
	if p.status == PlacementResolved || r == nil {
		return false
	}

	team, ok := r.TryGetLocalTeamRequest()
	if !ok {
		return false
	}

	// Auto-select still parks the camera on the spectator anchor while waiting
	*pos = anchors.For(team)

	if team == core.TeamAutoSelect || team == core.TeamNone {
		return false
	}

	p.commit(team)
	return true
}

// Poll queries the locally owned agent while unresolved, no-op afterwards
func (p *Placement) Poll(r TeamResolver, anchors Anchors, pos *vmath.Vec3F) bool {
	if p.status == PlacementResolved || r == nil {
		return false
	}

	p.polls++
	team, ok := r.TryFindLocallyOwnedAgentTeam()
	if !ok {
		return false
	}

	*pos = anchors.For(team)
	p.commit(team)
	return true
}

func (p *Placement) commit(team core.TeamType) {
	p.team = team
	p.status = PlacementResolved
}
