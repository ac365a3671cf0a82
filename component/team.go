package component

import "github.com/lixenwraith/edgecam/core"

// TeamRequestComponent is the team the local client asked for when joining
// Singleton; absent until the client handshake completes
type TeamRequestComponent struct {
	Value core.TeamType
}

// GameTeamComponent is the team the server assigned to a player-owned agent
type GameTeamComponent struct {
	Value core.TeamType
}

// OwnerChampionComponent tags the champion owned by the local client
type OwnerChampionComponent struct {
	// ClientID identifies the owning connection
	ClientID uint32
}

// PlayerComponent marks a connected player, local or remote
type PlayerComponent struct {
	ClientID uint32
	Local    bool
}
