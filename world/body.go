// Package world holds the simulation-side collaborators the contact pipeline
// reads but never owns: stable entity identifiers and the per-step body table.
package world

// Entity is the stable identifier of a simulation object. Body indices are
// recompacted between steps; entities survive them.
type Entity struct {
	Index   int32
	Version int32
}

// Null is the entity of nothing.
var Null = Entity{Index: -1, Version: 0}

// Body is one row of the simulation's body table, indexed by local body index.
// The contact pipeline treats the table as read-only; other passes may read it
// concurrently.
type Body struct {
	Entity Entity
}
