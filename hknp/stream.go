// Package hknp is the unsafe boundary to the narrow-phase plugin: the packed
// record layouts the backend writes and a block stream cursor over them.
// Everything outside this package works on projected views, never on raw
// pointers.
package hknp

import "unsafe"

// BlockSize is the payload capacity of one stream block.
const BlockSize = 4096

// block is one fixed-size chunk of packed records.
type block struct {
	data [BlockSize]byte
	used int
}

// BlockStream is a sequence of blocks of packed records. The narrow phase
// fills it, the contact walk consumes it exactly once, the solver reads the
// result. Whoever holds its completion handle owns it.
type BlockStream struct {
	blocks []*block
}

// Bytes returns a copy of the stream payload in record order. Intended for
// snapshotting, not for decoding.
func (s *BlockStream) Bytes() []byte {
	var out []byte
	for _, b := range s.blocks {
		out = append(out, b.data[:b.used]...)
	}
	return out
}

// Reader is a forward-only cursor over a BlockStream. It trusts the stream:
// how many records to read comes from counts in already-read records, and
// reading past the logical end is a caller bug, not a recoverable error.
type Reader struct {
	stream *BlockStream
	bi     int
	off    int
}

func NewReader(s *BlockStream) *Reader {
	return &Reader{stream: s}
}

// HasItems reports whether any unread records remain.
func (r *Reader) HasItems() bool {
	for bi, off := r.bi, r.off; bi < len(r.stream.blocks); bi, off = bi+1, 0 {
		if off < r.stream.blocks[bi].used {
			return true
		}
	}
	return false
}

// Read returns a pointer to the next record in the stream, without copying,
// and advances the cursor by the record size. Records never straddle blocks:
// when the writer could not fit one it started a new block, and the reader
// skips ahead under the same rule.
func Read[T any](r *Reader) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	for r.bi < len(r.stream.blocks) && r.off+size > r.stream.blocks[r.bi].used {
		r.bi++
		r.off = 0
	}
	if r.bi >= len(r.stream.blocks) {
		panic("hknp: read past end of block stream")
	}
	b := r.stream.blocks[r.bi]
	p := (*T)(unsafe.Pointer(&b.data[r.off]))
	r.off += size
	return p
}

// Writer appends packed records to a BlockStream. The producer side of the
// Reader contract; tests and toy narrow phases use it to fabricate streams.
type Writer struct {
	stream *BlockStream
}

func NewWriter(s *BlockStream) *Writer {
	return &Writer{stream: s}
}

// Write appends v to the stream and returns a pointer to its storage, so a
// producer can patch counts after emitting dependent records.
func Write[T any](w *Writer, v T) *T {
	size := int(unsafe.Sizeof(v))
	s := w.stream
	if len(s.blocks) == 0 || s.blocks[len(s.blocks)-1].used+size > BlockSize {
		s.blocks = append(s.blocks, &block{})
	}
	b := s.blocks[len(s.blocks)-1]
	p := (*T)(unsafe.Pointer(&b.data[b.used]))
	*p = v
	b.used += size
	return p
}
