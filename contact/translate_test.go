package contact

import (
	"testing"

	"github.com/shandan1/com.havok.physics/hknp"
)

func TestTranslateMasksTagByte(t *testing.T) {
	table := IndexTable{10, 11, 12, 13}

	if got := table.Translate(2); got != 12 {
		t.Errorf("Translate(2) = %d, want 12", got)
	}

	// Every possible tag byte must resolve to the same local index.
	for tag := uint32(0); tag <= 0xFF; tag++ {
		tagged := uint32(3) | tag<<hknp.BodyTagShift
		if got := table.Translate(tagged); got != 13 {
			t.Fatalf("Translate with tag %#x = %d, want 13", tag, got)
		}
	}
}
