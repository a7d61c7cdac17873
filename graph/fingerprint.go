package graph

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a collision-resistant identifier of the graph's
// structure: kinds, operations, operand and link ids, and construction
// values. Outputs produced by Solve are not part of it, so a fingerprint
// is stable across evaluations and shared by a builder and its clones.
func (builder *Builder[V]) Fingerprint() [16]byte {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}

	var buf [8]byte
	writeU64 := func(v uint64) {
		binary.BigEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}

	writeU64(uint64(len(builder.nodes)))
	for _, n := range builder.nodes {
		writeU64(uint64(n.kind)<<8 | uint64(n.op))
		writeU64(uint64(n.a))
		writeU64(uint64(n.b))
		writeU64(uint64(n.link))
		writeU64(uint64(n.cst))
	}

	crc := h.Sum(nil)
	return [16]byte(crc[:16])
}
