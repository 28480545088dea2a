package contact

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/shandan1/com.havok.physics/world"
)

// JacobianFlags is the capability set attached to one manifold. It is decoded
// once from the backend's flag words when the manifold is projected and
// re-encoded once on write-back.
type JacobianFlags uint8

const (
	// EnableMassFactors requests per-body inertia overrides for this manifold.
	EnableMassFactors JacobianFlags = 1 << iota
	// EnableSurfaceVelocity makes the solver apply a conveyor-style surface
	// velocity at this contact.
	EnableSurfaceVelocity
	// EnableCollisionEvents asks the backend to raise events for this contact.
	EnableCollisionEvents
	// IsTrigger suppresses the collision response while keeping detection.
	IsTrigger
)

// Has reports whether every bit of flag is set.
func (f JacobianFlags) Has(flag JacobianFlags) bool {
	return f&flag == flag
}

// ModifiableHeader is the engine-neutral view of one manifold, shared by all
// point callbacks of that manifold. The body and entity pair are fixed when
// the stream header is projected; the physical fields are writable and mark
// the view modified, which triggers write-back after the manifold's points
// have been processed. Contact counts are never writable.
type ModifiableHeader struct {
	bodyIndexA, bodyIndexB     int32
	entityA, entityB           world.Entity
	customTagsA, customTagsB   uint8
	colliderKeyA, colliderKeyB uint32
	numContacts                int

	normal      mgl32.Vec3
	friction    float32
	restitution float32
	flags       JacobianFlags

	modified bool
}

func (h *ModifiableHeader) BodyIndexA() int32 { return h.bodyIndexA }
func (h *ModifiableHeader) BodyIndexB() int32 { return h.bodyIndexB }

func (h *ModifiableHeader) EntityA() world.Entity { return h.entityA }
func (h *ModifiableHeader) EntityB() world.Entity { return h.entityB }

func (h *ModifiableHeader) CustomTagsA() uint8 { return h.customTagsA }
func (h *ModifiableHeader) CustomTagsB() uint8 { return h.customTagsB }

func (h *ModifiableHeader) ColliderKeyA() uint32 { return h.colliderKeyA }
func (h *ModifiableHeader) ColliderKeyB() uint32 { return h.colliderKeyB }

func (h *ModifiableHeader) NumContacts() int { return h.numContacts }

func (h *ModifiableHeader) Normal() mgl32.Vec3 { return h.normal }

func (h *ModifiableHeader) Friction() float32 { return h.friction }

func (h *ModifiableHeader) Restitution() float32 { return h.restitution }

func (h *ModifiableHeader) Flags() JacobianFlags { return h.flags }

// Modified reports whether any physical field has been written since the
// manifold was projected.
func (h *ModifiableHeader) Modified() bool { return h.modified }

func (h *ModifiableHeader) SetNormal(n mgl32.Vec3) {
	h.normal = n
	h.modified = true
}

func (h *ModifiableHeader) SetFriction(f float32) {
	h.friction = f
	h.modified = true
}

func (h *ModifiableHeader) SetRestitution(r float32) {
	h.restitution = r
	h.modified = true
}

func (h *ModifiableHeader) SetFlags(f JacobianFlags) {
	h.flags = f
	h.modified = true
}

// ModifiablePoint is the view of one contact point. A fresh one is built per
// point and does not outlive its manifold's iteration.
type ModifiablePoint struct {
	index    int
	position mgl32.Vec3
	distance float32
	modified bool
}

// Index is the point's slot within its manifold.
func (p *ModifiablePoint) Index() int { return p.index }

func (p *ModifiablePoint) Position() mgl32.Vec3 { return p.position }

func (p *ModifiablePoint) Distance() float32 { return p.distance }

func (p *ModifiablePoint) Modified() bool { return p.modified }

func (p *ModifiablePoint) SetPosition(pos mgl32.Vec3) {
	p.position = pos
	p.modified = true
}

func (p *ModifiablePoint) SetDistance(d float32) {
	p.distance = d
	p.modified = true
}
