// Benchmark for the contact modification walk: stream sizes vs. walk time,
// with a read-only callback and with a mutating one.
package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shandan1/com.havok.physics/contact"
	"github.com/shandan1/com.havok.physics/hknp"
	"github.com/shandan1/com.havok.physics/world"
)

func main() {
	testCounts := []int{100, 500, 1000, 5000, 20000}

	fmt.Printf("%8s | %12s | %12s | %10s\n", "pairs", "read-only", "mutating", "points")
	for _, count := range testCounts {
		benchWalk(count)
	}
}

func benchWalk(pairs int) {
	stream, table, bodies, points := buildScene(pairs)

	const iterations = 20

	// Read-only callback: the stream must come out byte-identical, so the
	// same stream can be walked repeatedly.
	readOnly := contact.ModifierFunc(func(h *contact.ModifiableHeader, p *contact.ModifiablePoint) {
		_ = h.Restitution()
		_ = p.Distance()
	})
	start := time.Now()
	for i := 0; i < iterations; i++ {
		contact.ModifyContacts(stream, table, bodies, readOnly)
	}
	readTime := time.Since(start) / iterations

	// Mutating callback writes fixed values, so repeated walks stay valid.
	mutating := contact.ModifierFunc(func(h *contact.ModifiableHeader, p *contact.ModifiablePoint) {
		h.SetRestitution(0.75)
		h.SetFlags(h.Flags() | contact.EnableMassFactors)
		if p.Index() == 0 {
			p.SetDistance(0)
		}
	})
	start = time.Now()
	for i := 0; i < iterations; i++ {
		contact.ModifyContacts(stream, table, bodies, mutating)
	}
	mutateTime := time.Since(start) / iterations

	fmt.Printf("%8d | %12v | %12v | %10d\n",
		pairs, readTime.Round(time.Microsecond), mutateTime.Round(time.Microsecond), points)
}

// buildScene fabricates a stream of random body pairs with 1-2 manifolds each
// and 1-4 points per manifold, plus the matching index table and body table.
func buildScene(pairs int) (*hknp.BlockStream, contact.IndexTable, []world.Body, int) {
	rng := rand.New(rand.NewSource(42))

	bodyCount := uint32(2 * pairs)
	table := make(contact.IndexTable, bodyCount)
	bodies := make([]world.Body, bodyCount)
	for i := range table {
		table[i] = int32(i)
		bodies[i] = world.Body{Entity: world.Entity{Index: int32(i), Version: 1}}
	}

	var stream hknp.BlockStream
	writer := hknp.NewWriter(&stream)
	points := 0

	for i := 0; i < pairs; i++ {
		idA := uint32(2*i) | uint32(rng.Intn(4))<<hknp.BodyTagShift
		idB := uint32(2*i + 1)
		header := hknp.Write(writer, hknp.BodyPairHeader{BodyA: idA, BodyB: idB})

		manifolds := 1 + rng.Intn(2)
		for m := 0; m < manifolds; m++ {
			numPoints := 1 + rng.Intn(hknp.MaxPointsPerManifold)
			hknp.Write(writer, hknp.CachedManifold{
				NumPoints:   int32(numPoints),
				Normal:      [3]float32{0, 1, 0},
				Friction:    rng.Float32(),
				Restitution: rng.Float32(),
			})
			for p := 0; p < numPoints; p++ {
				hknp.Write(writer, hknp.ContactPoint{
					Position: [3]float32{rng.Float32() * 50, rng.Float32() * 5, rng.Float32() * 50},
					Distance: -rng.Float32() * 0.1,
				})
				points++
			}
			header.NumManifolds++
		}
	}

	return &stream, table, bodies, points
}
