package contact

import "github.com/shandan1/com.havok.physics/hknp"

// IndexTable maps plugin-local body ids to the simulation's contiguous body
// indices. The pass that fills the stream also rebuilds the table, so every id
// arriving here has an entry and lookups have no failure path.
type IndexTable []int32

// Translate resolves a tagged plugin body id to a local body index. The tag
// byte is masked off before the lookup.
func (t IndexTable) Translate(foreign uint32) int32 {
	return t[foreign&hknp.BodyIDMask]
}
