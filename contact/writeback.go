package contact

import "github.com/shandan1/com.havok.physics/hknp"

// applyHeaderWriteback pushes a modified header view back into its raw
// manifold, then derives the backend bookkeeping the solver depends on from
// the view's jacobian flags. Runs once per manifold, after its points.
func applyHeaderWriteback(m *hknp.CachedManifold, h *ModifiableHeader) {
	m.Normal = [3]float32(h.normal)
	m.Friction = h.friction
	m.Restitution = h.restitution

	if h.flags.Has(EnableMassFactors) {
		m.ManifoldFlags |= hknp.ManifoldInertiaModified
		// Mass overrides only mean anything for non-triangle contacts.
		m.ManifoldFlags &^= hknp.ManifoldContainsTriangle
		for i := range m.MassFactors {
			m.MassFactors[i] = [4]float32{1, 1, 1, 1}
		}
	}
	if h.flags.Has(IsTrigger) {
		m.Type = hknp.ManifoldTrigger
	}
	if h.flags.Has(EnableSurfaceVelocity) {
		m.CollisionFlags |= hknp.CollisionSurfaceVelocity
	}
	if h.flags.Has(EnableCollisionEvents) {
		m.CollisionFlags |= hknp.CollisionRaiseEvents
	}

	// Restitution is opt-in: the enable bit tracks the final written-back
	// coefficient, regardless of which field the callback actually touched.
	// A zero coefficient leaves the bit as it was.
	if m.Restitution != 0 {
		m.CollisionFlags |= hknp.CollisionRestitutionEnabled
	}
}

// applyPointWriteback copies a modified point view back into its raw record.
// Position and distance only; nothing else in the point is user-visible.
func applyPointWriteback(raw *hknp.ContactPoint, p *ModifiablePoint) {
	raw.Position = [3]float32(p.position)
	raw.Distance = p.distance
}
