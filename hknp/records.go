package hknp

import "unsafe"

// MaxPointsPerManifold caps how many contact points the backend emits for one
// manifold.
const MaxPointsPerManifold = 4

// Plugin body ids carry a per-body custom tag in the top byte; the low 24 bits
// are the plugin-local body id used for index translation.
const (
	BodyIDMask   uint32 = 0x00FFFFFF
	BodyTagShift        = 24
)

// ManifoldType is the solver-side classification of a manifold.
type ManifoldType int32

const (
	// ManifoldCollide manifolds get a full collision response.
	ManifoldCollide ManifoldType = iota
	// ManifoldTrigger manifolds are detected but never resolved.
	ManifoldTrigger
)

// CachedManifold.CollisionFlags bits.
const (
	CollisionRestitutionEnabled uint32 = 1 << iota
	CollisionSurfaceVelocity
	CollisionRaiseEvents
)

// CachedManifold.ManifoldFlags bits.
const (
	ManifoldInertiaModified uint32 = 1 << iota
	ManifoldContainsTriangle
)

// BodyPairHeader precedes the run of manifolds for one body pair in the
// stream.
type BodyPairHeader struct {
	BodyA        uint32 // tagged plugin id of the first body
	BodyB        uint32 // tagged plugin id of the second body
	NumManifolds int32
}

// CachedManifold is the backend's packed per-manifold record. Its NumPoints
// ContactPoint records follow it directly in the stream and are its point
// storage. MassFactors is scratch space for per-body overrides: inverse
// inertia xyz plus inverse mass, one row per body.
type CachedManifold struct {
	NumPoints      int32
	Type           ManifoldType
	Normal         [3]float32
	Friction       float32
	Restitution    float32
	CollisionFlags uint32
	ManifoldFlags  uint32
	ColliderKeyA   uint32
	ColliderKeyB   uint32
	MassFactors    [2][4]float32
}

// ContactPoint is one packed point record: world position plus separation
// distance, negative while penetrating.
type ContactPoint struct {
	Position [3]float32
	Distance float32
}

// Record sizes are fixed at init. All records are built from 4-byte fields,
// which keeps every stream offset 4-aligned.
var (
	SizeofBodyPairHeader = int(unsafe.Sizeof(BodyPairHeader{}))
	SizeofCachedManifold = int(unsafe.Sizeof(CachedManifold{}))
	SizeofContactPoint   = int(unsafe.Sizeof(ContactPoint{}))
)
