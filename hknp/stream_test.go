package hknp

import "testing"

func TestReaderEmptyStream(t *testing.T) {
	var stream BlockStream
	reader := NewReader(&stream)

	if reader.HasItems() {
		t.Error("empty stream should have no items")
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	var stream BlockStream
	writer := NewWriter(&stream)

	Write(writer, BodyPairHeader{BodyA: 5, BodyB: 9, NumManifolds: 1})
	Write(writer, CachedManifold{
		NumPoints:   2,
		Normal:      [3]float32{0, 1, 0},
		Friction:    0.5,
		Restitution: 0.25,
	})
	Write(writer, ContactPoint{Position: [3]float32{1, 2, 3}, Distance: -0.01})
	Write(writer, ContactPoint{Position: [3]float32{4, 5, 6}, Distance: 0.02})

	reader := NewReader(&stream)

	header := Read[BodyPairHeader](reader)
	if header.BodyA != 5 || header.BodyB != 9 || header.NumManifolds != 1 {
		t.Errorf("header read back wrong: %+v", *header)
	}

	manifold := Read[CachedManifold](reader)
	if manifold.NumPoints != 2 {
		t.Errorf("expected 2 points, got %d", manifold.NumPoints)
	}
	if manifold.Friction != 0.5 || manifold.Restitution != 0.25 {
		t.Errorf("coefficients read back wrong: %+v", *manifold)
	}

	p0 := Read[ContactPoint](reader)
	if p0.Position != [3]float32{1, 2, 3} || p0.Distance != -0.01 {
		t.Errorf("point 0 read back wrong: %+v", *p0)
	}
	p1 := Read[ContactPoint](reader)
	if p1.Position != [3]float32{4, 5, 6} || p1.Distance != 0.02 {
		t.Errorf("point 1 read back wrong: %+v", *p1)
	}

	if reader.HasItems() {
		t.Error("reader should be exhausted")
	}
}

func TestReadReturnsLiveStorage(t *testing.T) {
	var stream BlockStream
	writer := NewWriter(&stream)

	// Producers emit the header first and patch the count afterwards.
	header := Write(writer, BodyPairHeader{BodyA: 1, BodyB: 2})
	Write(writer, CachedManifold{NumPoints: 0})
	header.NumManifolds = 1

	reader := NewReader(&stream)
	got := Read[BodyPairHeader](reader)
	if got.NumManifolds != 1 {
		t.Errorf("patched count not visible through reader: got %d", got.NumManifolds)
	}

	// Mutating through the read pointer must hit the stream itself.
	got.NumManifolds = 7
	if header.NumManifolds != 7 {
		t.Error("reader did not return a pointer into the stream buffer")
	}
}

func TestReadSkipsToNextBlock(t *testing.T) {
	var stream BlockStream
	writer := NewWriter(&stream)

	// More manifolds than one block can hold forces the block-skip path.
	count := 3 * (BlockSize / SizeofCachedManifold)
	for i := 0; i < count; i++ {
		Write(writer, CachedManifold{ColliderKeyA: uint32(i)})
	}
	if len(stream.blocks) < 3 {
		t.Fatalf("expected at least 3 blocks, got %d", len(stream.blocks))
	}

	reader := NewReader(&stream)
	for i := 0; i < count; i++ {
		m := Read[CachedManifold](reader)
		if m.ColliderKeyA != uint32(i) {
			t.Fatalf("record %d read out of order: got key %d", i, m.ColliderKeyA)
		}
	}
	if reader.HasItems() {
		t.Error("reader should be exhausted after all records")
	}
}

func TestReadPastEndPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("reading past the end should panic")
		}
	}()

	var stream BlockStream
	reader := NewReader(&stream)
	Read[ContactPoint](reader)
}
