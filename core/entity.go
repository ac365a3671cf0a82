package core

// Entity is a unique identifier for an entity in the world
type Entity uint64
