package contact

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/shandan1/com.havok.physics/hknp"
	"github.com/shandan1/com.havok.physics/world"
)

// projectHeader fixes the identity half of the shared header view: body
// indices via the translator, entities from the body table, custom tags from
// the id tag bytes. Derived once per stream header, immutable afterwards.
func projectHeader(h *ModifiableHeader, raw *hknp.BodyPairHeader, table IndexTable, bodies []world.Body) {
	h.bodyIndexA = table.Translate(raw.BodyA)
	h.bodyIndexB = table.Translate(raw.BodyB)
	h.entityA = bodies[h.bodyIndexA].Entity
	h.entityB = bodies[h.bodyIndexB].Entity
	h.customTagsA = uint8(raw.BodyA >> hknp.BodyTagShift)
	h.customTagsB = uint8(raw.BodyB >> hknp.BodyTagShift)
}

// projectManifold refreshes the physical half of the shared view for the next
// manifold of the same body pair and clears the modified bit.
func projectManifold(h *ModifiableHeader, m *hknp.CachedManifold) {
	h.colliderKeyA = m.ColliderKeyA
	h.colliderKeyB = m.ColliderKeyB
	h.numContacts = int(m.NumPoints)
	h.normal = mgl32.Vec3(m.Normal)
	h.friction = m.Friction
	h.restitution = m.Restitution
	h.flags = decodeJacobianFlags(m)
	h.modified = false
}

// projectPoint builds a fresh point view from the raw point record at slot
// index.
func projectPoint(p *ModifiablePoint, index int, raw *hknp.ContactPoint) {
	*p = ModifiablePoint{
		index:    index,
		position: mgl32.Vec3(raw.Position),
		distance: raw.Distance,
	}
}

// decodeJacobianFlags reads the named capabilities out of the backend's flag
// words. The mapping is the inverse of the write-back derivations, so an
// untouched header re-encodes to the state it was decoded from.
func decodeJacobianFlags(m *hknp.CachedManifold) JacobianFlags {
	var flags JacobianFlags
	if m.ManifoldFlags&hknp.ManifoldInertiaModified != 0 {
		flags |= EnableMassFactors
	}
	if m.CollisionFlags&hknp.CollisionSurfaceVelocity != 0 {
		flags |= EnableSurfaceVelocity
	}
	if m.CollisionFlags&hknp.CollisionRaiseEvents != 0 {
		flags |= EnableCollisionEvents
	}
	if m.Type == hknp.ManifoldTrigger {
		flags |= IsTrigger
	}
	return flags
}
