// Visual demo of the contact modification pipeline: spheres fall onto a
// ground plane, a toy narrow phase packs their manifolds into a block stream
// every frame, the modification walk runs as a scheduled unit between the
// narrow phase and a minimal impulse solver. A slab in the middle of the
// scene is turned into a trigger by the modifier (spheres pass through it),
// and contacts inside the bounce zone get their restitution boosted.
package main

import (
	"log"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/shandan1/com.havok.physics/contact"
	"github.com/shandan1/com.havok.physics/hknp"
	"github.com/shandan1/com.havok.physics/sched"
	"github.com/shandan1/com.havok.physics/world"
)

const (
	sphereCount = 24
	gravity     = -20.0
	floorHalf   = 14.0

	// Trigger slab volume.
	slabMinX, slabMaxX = -3.0, 3.0
	slabMinY, slabMaxY = 0.0, 4.0
	slabMinZ, slabMaxZ = -3.0, 3.0

	// Contacts with x beyond this line get their restitution boosted.
	bounceZoneX = 6.0
)

// Body indices: 0 is the ground plane, 1 is the trigger slab, spheres follow.
const (
	groundIndex = 0
	slabIndex   = 1
)

type body struct {
	pos       mgl32.Vec3
	vel       mgl32.Vec3
	radius    float32
	invMass   float32
	inTrigger bool
}

type scene struct {
	bodies    []body
	table     contact.IndexTable
	worldRows []world.Body
	lastLog   time.Time
}

func newScene() *scene {
	rng := rand.New(rand.NewSource(7))
	s := &scene{}

	// Ground and slab are static.
	s.bodies = append(s.bodies, body{}, body{})
	for i := 0; i < sphereCount; i++ {
		s.bodies = append(s.bodies, body{
			pos: mgl32.Vec3{
				rng.Float32()*20 - 10,
				6 + rng.Float32()*10,
				rng.Float32()*20 - 10,
			},
			radius:  0.4 + rng.Float32()*0.3,
			invMass: 1,
		})
	}

	// The toy narrow phase uses local indices as plugin ids, so the table is
	// the identity; a real backend would hand over its own id space.
	s.table = make(contact.IndexTable, len(s.bodies))
	s.worldRows = make([]world.Body, len(s.bodies))
	for i := range s.bodies {
		s.table[i] = int32(i)
		s.worldRows[i] = world.Body{Entity: world.Entity{Index: int32(i), Version: 1}}
	}
	return s
}

// narrowPhase packs this frame's manifolds into the stream: sphere vs ground,
// sphere vs trigger slab, sphere vs sphere. One point per manifold is enough
// for spheres.
func (s *scene) narrowPhase(writer *hknp.Writer) {
	emit := func(idxA, idxB int, normal, point mgl32.Vec3, distance float32) {
		header := hknp.Write(writer, hknp.BodyPairHeader{
			BodyA: uint32(idxA),
			BodyB: uint32(idxB),
		})
		hknp.Write(writer, hknp.CachedManifold{
			NumPoints: 1,
			Normal:    [3]float32(normal),
			Friction:  0.4,
		})
		hknp.Write(writer, hknp.ContactPoint{
			Position: [3]float32(point),
			Distance: distance,
		})
		header.NumManifolds = 1
	}

	for i := slabIndex + 1; i < len(s.bodies); i++ {
		b := &s.bodies[i]
		b.inTrigger = false

		// Ground plane at y=0.
		if d := b.pos.Y() - b.radius; d < 0.05 {
			ground := mgl32.Vec3{b.pos.X(), 0, b.pos.Z()}
			emit(i, groundIndex, mgl32.Vec3{0, 1, 0}, ground, d)
		}

		// Trigger slab, treated as a plain box overlap.
		if b.pos.X() > slabMinX-b.radius && b.pos.X() < slabMaxX+b.radius &&
			b.pos.Y() > slabMinY-b.radius && b.pos.Y() < slabMaxY+b.radius &&
			b.pos.Z() > slabMinZ-b.radius && b.pos.Z() < slabMaxZ+b.radius {
			emit(i, slabIndex, mgl32.Vec3{0, 1, 0}, b.pos, -b.radius)
		}

		// Sphere vs sphere.
		for j := i + 1; j < len(s.bodies); j++ {
			o := &s.bodies[j]
			diff := b.pos.Sub(o.pos)
			dist := diff.Len()
			minDist := b.radius + o.radius
			if dist >= minDist || dist < 0.0001 {
				continue
			}
			normal := diff.Mul(1 / dist)
			mid := o.pos.Add(normal.Mul(o.radius))
			emit(i, j, normal, mid, dist-minDist)
		}
	}
}

// modifier is the user callback under demonstration: slab contacts become
// triggers, bounce-zone contacts get lively restitution.
func (s *scene) modifier(h *contact.ModifiableHeader, p *contact.ModifiablePoint) {
	if h.BodyIndexB() == slabIndex {
		h.SetFlags(h.Flags() | contact.IsTrigger)
		return
	}
	if p.Position().X() > bounceZoneX {
		h.SetRestitution(0.9)
	}
}

// solve consumes the modified stream: positional correction plus an impulse
// along the normal. Trigger manifolds are detected but never resolved.
func (s *scene) solve(stream *hknp.BlockStream) {
	reader := hknp.NewReader(stream)
	for reader.HasItems() {
		header := hknp.Read[hknp.BodyPairHeader](reader)
		idxA := s.table.Translate(header.BodyA)
		idxB := s.table.Translate(header.BodyB)

		for m := int32(0); m < header.NumManifolds; m++ {
			manifold := hknp.Read[hknp.CachedManifold](reader)
			for pt := int32(0); pt < manifold.NumPoints; pt++ {
				point := hknp.Read[hknp.ContactPoint](reader)

				if manifold.Type == hknp.ManifoldTrigger {
					s.onTrigger(idxA)
					continue
				}
				s.resolve(idxA, idxB, mgl32.Vec3(manifold.Normal), point.Distance, manifold)
			}
		}
	}
}

func (s *scene) onTrigger(idx int32) {
	b := &s.bodies[idx]
	if !b.inTrigger && time.Since(s.lastLog) > time.Second {
		s.lastLog = time.Now()
		log.Printf("contactviz: body %d passing through trigger slab", idx)
	}
	b.inTrigger = true
}

func (s *scene) resolve(idxA, idxB int32, normal mgl32.Vec3, distance float32, m *hknp.CachedManifold) {
	a, b := &s.bodies[idxA], &s.bodies[idxB]
	invMassSum := a.invMass + b.invMass
	if invMassSum == 0 || distance >= 0 {
		return
	}

	// Push out of penetration, split by inverse mass.
	correction := normal.Mul(-distance / invMassSum)
	a.pos = a.pos.Add(correction.Mul(a.invMass))
	b.pos = b.pos.Sub(correction.Mul(b.invMass))

	relVel := a.vel.Sub(b.vel)
	velAlongNormal := relVel.Dot(normal)
	if velAlongNormal > 0 {
		return
	}

	// Restitution only participates when the modifier opted it in.
	var e float32
	if m.CollisionFlags&hknp.CollisionRestitutionEnabled != 0 {
		e = m.Restitution
	}

	j := -(1 + e) * velAlongNormal / invMassSum
	impulse := normal.Mul(j)
	a.vel = a.vel.Add(impulse.Mul(a.invMass))
	b.vel = b.vel.Sub(impulse.Mul(b.invMass))

	// Ground friction, the cheap way.
	if idxB == groundIndex {
		a.vel = mgl32.Vec3{a.vel.X() * (1 - m.Friction*0.1), a.vel.Y(), a.vel.Z() * (1 - m.Friction*0.1)}
	}
}

func (s *scene) step(dt float32) {
	for i := slabIndex + 1; i < len(s.bodies); i++ {
		b := &s.bodies[i]
		b.vel = b.vel.Add(mgl32.Vec3{0, gravity * dt, 0})
		b.pos = b.pos.Add(b.vel.Mul(dt))

		// Recycle spheres that roll off the floor.
		if b.pos.Y() < -10 {
			b.pos = mgl32.Vec3{b.pos.X() * 0.5, 14, b.pos.Z() * 0.5}
			b.vel = mgl32.Vec3{}
		}
	}

	var stream hknp.BlockStream
	narrow := sched.Run(func() {
		s.narrowPhase(hknp.NewWriter(&stream))
	})
	modified := contact.ScheduleModifyContacts(narrow, &stream, s.table, s.worldRows,
		contact.ModifierFunc(s.modifier))
	modified.Wait()

	s.solve(&stream)
}

func rlVec(v mgl32.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X(), Y: v.Y(), Z: v.Z()}
}

func main() {
	rl.InitWindow(1280, 720, "contact modification demo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	camera := rl.Camera3D{
		Position:   rl.Vector3{X: 18, Y: 14, Z: 18},
		Target:     rl.Vector3{X: 0, Y: 2, Z: 0},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	scene := newScene()
	log.Printf("contactviz: %d spheres, trigger slab at x in [%v,%v]", sphereCount, slabMinX, slabMaxX)

	for !rl.WindowShouldClose() {
		scene.step(rl.GetFrameTime())

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		rl.BeginMode3D(camera)

		rl.DrawGrid(int32(floorHalf*2), 1)

		// Trigger slab, translucent.
		slabCenter := rl.Vector3{X: (slabMinX + slabMaxX) / 2, Y: (slabMinY + slabMaxY) / 2, Z: (slabMinZ + slabMaxZ) / 2}
		rl.DrawCube(slabCenter, slabMaxX-slabMinX, slabMaxY-slabMinY, slabMaxZ-slabMinZ, rl.Fade(rl.Purple, 0.25))
		rl.DrawCubeWires(slabCenter, slabMaxX-slabMinX, slabMaxY-slabMinY, slabMaxZ-slabMinZ, rl.Purple)

		// Bounce zone marker.
		rl.DrawCubeWires(rl.Vector3{X: (bounceZoneX + floorHalf) / 2, Y: 2, Z: 0},
			floorHalf-bounceZoneX, 4, floorHalf*2, rl.Orange)

		for i := slabIndex + 1; i < len(scene.bodies); i++ {
			b := &scene.bodies[i]
			color := rl.SkyBlue
			if b.inTrigger {
				color = rl.Red
			} else if b.pos.X() > bounceZoneX {
				color = rl.Orange
			}
			rl.DrawSphere(rlVec(b.pos), b.radius, color)
		}

		rl.EndMode3D()
		rl.DrawText("purple slab: trigger (no response) | orange zone: restitution boost", 10, 10, 20, rl.DarkGray)
		rl.DrawFPS(10, 40)
		rl.EndDrawing()
	}
}
