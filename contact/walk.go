// Package contact walks the narrow-phase manifold stream, projects each
// record into engine-neutral modifiable views, hands them to a user callback,
// and writes modifications back into the raw records. It bridges the plugin's
// packed representation and the simulation's view of a contact without ever
// exposing raw stream pointers to user code.
package contact

import (
	"github.com/shandan1/com.havok.physics/hknp"
	"github.com/shandan1/com.havok.physics/sched"
	"github.com/shandan1/com.havok.physics/world"
)

// Modifier is the user contract: invoked once per contact point with mutable
// access to the shared header view and the per-point view. Implementations
// may write either view; they cannot change manifold or point counts.
type Modifier interface {
	Modify(header *ModifiableHeader, point *ModifiablePoint)
}

// ModifierFunc adapts a plain function to the Modifier interface.
type ModifierFunc func(header *ModifiableHeader, point *ModifiablePoint)

func (f ModifierFunc) Modify(header *ModifiableHeader, point *ModifiablePoint) {
	f(header, point)
}

// ModifyContacts walks the stream once, in stream order: headers, manifolds
// within a header, points within a manifold. The header view is built once per
// header, refreshed per manifold, and shared across that manifold's point
// callbacks; header write-back runs once per modified manifold, after its
// points, so later derivations see earlier writes. The walk never resizes or
// reorders the stream.
func ModifyContacts(stream *hknp.BlockStream, table IndexTable, bodies []world.Body, m Modifier) {
	reader := hknp.NewReader(stream)

	var header ModifiableHeader
	var point ModifiablePoint

	for reader.HasItems() {
		raw := hknp.Read[hknp.BodyPairHeader](reader)
		projectHeader(&header, raw, table, bodies)

		for mi := int32(0); mi < raw.NumManifolds; mi++ {
			manifold := hknp.Read[hknp.CachedManifold](reader)
			projectManifold(&header, manifold)

			for pi := int32(0); pi < manifold.NumPoints; pi++ {
				rawPoint := hknp.Read[hknp.ContactPoint](reader)
				projectPoint(&point, int(pi), rawPoint)
				m.Modify(&header, &point)
				if point.modified {
					applyPointWriteback(rawPoint, &point)
				}
			}

			if header.modified {
				applyHeaderWriteback(manifold, &header)
			}
		}
	}
}

// ScheduleModifyContacts runs the walk as one schedulable unit gated on the
// narrow-phase completion handle. The returned handle is what the solver
// gates on; the stream is exclusively owned by the walk between the two.
func ScheduleModifyContacts(dep sched.Handle, stream *hknp.BlockStream, table IndexTable, bodies []world.Body, m Modifier) sched.Handle {
	return sched.After(dep, func() {
		ModifyContacts(stream, table, bodies, m)
	})
}
