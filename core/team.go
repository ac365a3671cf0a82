package core

import (
	"fmt"
	"strings"
)

// TeamType identifies the side a player is assigned to
type TeamType uint8

const (
	// TeamNone is the zero value, used for unknown or missing assignments
	TeamNone TeamType = iota
	TeamBlue
	TeamRed
	// TeamAutoSelect means the player asked the server to pick a side
	TeamAutoSelect
	TeamSpectator
)

// String returns lowercase team name
func (t TeamType) String() string {
	switch t {
	case TeamBlue:
		return "blue"
	case TeamRed:
		return "red"
	case TeamAutoSelect:
		return "auto"
	case TeamSpectator:
		return "spectator"
	default:
		return "none"
	}
}

// IsConcrete reports whether the team names an actual side
func (t TeamType) IsConcrete() bool {
	return t == TeamBlue || t == TeamRed
}

// ParseTeam converts a config or CLI string to TeamType
func ParseTeam(s string) (TeamType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "blue":
		return TeamBlue, nil
	case "red":
		return TeamRed, nil
	case "auto", "autoselect", "auto-select", "auto_select":
		return TeamAutoSelect, nil
	case "spectator", "spec":
		return TeamSpectator, nil
	case "", "none":
		return TeamNone, nil
	default:
		return TeamNone, fmt.Errorf("unknown team %q", s)
	}
}
