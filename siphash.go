package siphash

import (
	"encoding/binary"
	"hash"
	"math/bits"
	"unsafe"
)

// Compile-time interface assertions.
var _ hash.Hash = (*Hasher)(nil)
var _ hash.Hash64 = (*Hasher)(nil)

// Initial lane values from the SipHash reference ("somepseudorandomlygeneratedbytes").
const (
	iv0 = 0x736f6d6570736575
	iv1 = 0x646f72616e646f6d
	iv2 = 0x6c7967656e657261
	iv3 = 0x7465646279746573
)

// Hasher is a streaming SipHash-2-4 hasher. Input may arrive in chunks
// of any size; the digest depends only on the concatenated bytes.
//
// A Hasher must not be used from multiple goroutines concurrently.
// Independent instances share no state.
type Hasher struct {
	v0, v1, v2, v3 uint64

	// cnt is the total bytes absorbed; cnt&7 is the number of live
	// bytes in word.
	cnt uint64

	// word holds the 0-7 byte tail not yet aligned to an 8-byte
	// block, packed little-endian. Unused high bytes are zero.
	word uint64

	k0, k1 uint64
}

// New returns a Hasher with the zero key.
func New() *Hasher { return NewWithKey(0, 0) }

// NewWithKey returns a Hasher keyed with the two 64-bit key words.
func NewWithKey(k0, k1 uint64) *Hasher {
	h := &Hasher{k0: k0, k1: k1}
	h.Reset()
	return h
}

// Reset restores the hasher to its keyed initial state.
func (h *Hasher) Reset() {
	h.v0 = iv0 ^ h.k0
	h.v1 = iv1 ^ h.k1
	h.v2 = iv2 ^ h.k0
	h.v3 = iv3 ^ h.k1
	h.cnt = 0
	h.word = 0
}

// round is one SipRound over the four lanes.
func (h *Hasher) round() {
	h.v0 += h.v1
	h.v1 = bits.RotateLeft64(h.v1, 13)
	h.v1 ^= h.v0
	h.v0 = bits.RotateLeft64(h.v0, 32)

	h.v2 += h.v3
	h.v3 = bits.RotateLeft64(h.v3, 16)
	h.v3 ^= h.v2

	h.v0 += h.v3
	h.v3 = bits.RotateLeft64(h.v3, 21)
	h.v3 ^= h.v0

	h.v2 += h.v1
	h.v1 = bits.RotateLeft64(h.v1, 17)
	h.v1 ^= h.v2
	h.v2 = bits.RotateLeft64(h.v2, 32)
}

// inject absorbs one 8-byte word: two rounds sandwiched between XORs
// into v3 and v0. Used for mid-stream blocks and the final block alike.
func (h *Hasher) inject(w uint64) {
	h.v3 ^= w
	h.round()
	h.round()
	h.v0 ^= w
}

// Write absorbs p into the hasher. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)

	// Top up a partial word carried over from a previous Write.
	if h.cnt&7 != 0 {
		for h.cnt&7 != 0 && len(p) > 0 {
			h.word |= uint64(p[0]) << ((h.cnt & 7) << 3)
			p = p[1:]
			h.cnt++
		}
		if h.cnt&7 != 0 {
			return n, nil
		}
		h.inject(h.word)
	}

	h.cnt += uint64(len(p))

	for len(p) >= 8 {
		h.inject(binary.LittleEndian.Uint64(p))
		p = p[8:]
	}

	// Stash the 0-7 byte tail; unused bytes must read as zero.
	h.word = 0
	for i := 0; i < len(p); i++ {
		h.word |= uint64(p[i]) << (i << 3)
	}
	return n, nil
}

// finalize runs the terminal permutation. It mutates the receiver, so
// the digest accessors call it on a stack copy and leave the streaming
// state untouched.
func (h *Hasher) finalize() {
	// The low byte of the length fills the last free byte of the
	// pending word; the tail occupies at most bytes 0-6.
	h.inject(h.word | h.cnt<<56)

	h.v2 ^= 0xff
	h.round()
	h.round()
	h.round()
	h.round()
}

// Sum64 returns the 64-bit digest of the bytes written so far.
// It does not modify the hasher state.
func (h *Hasher) Sum64() uint64 {
	s := *h
	s.finalize()
	return s.v0 ^ s.v1 ^ s.v2 ^ s.v3
}

// Sum128 returns the 128-bit digest of the bytes written so far as
// low and high 64-bit words. It does not modify the hasher state.
func (h *Hasher) Sum128() (lo, hi uint64) {
	s := *h
	s.finalize()
	return s.v0 ^ s.v1, s.v2 ^ s.v3
}

// Sum128Bytes returns the 128-bit digest as 16 bytes: the low word in
// bytes 0-7 and the high word in bytes 8-15, both little-endian. The
// byte order is fixed regardless of platform.
func (h *Hasher) Sum128Bytes() [16]byte {
	lo, hi := h.Sum128()
	var out [16]byte
	binary.LittleEndian.PutUint64(out[0:8], lo)
	binary.LittleEndian.PutUint64(out[8:16], hi)
	return out
}

// Sum appends the big-endian 64-bit digest to b.
func (h *Hasher) Sum(b []byte) []byte {
	var out [8]byte
	binary.BigEndian.PutUint64(out[:], h.Sum64())
	return append(b, out[:]...)
}

// Size returns the digest size of the hash.Hash64 form in bytes.
func (h *Hasher) Size() int { return 8 }

// BlockSize returns the internal block size in bytes.
func (h *Hasher) BlockSize() int { return 8 }

// Sum64 returns the 64-bit digest of data with the zero key.
func Sum64(data []byte) uint64 { return Sum64WithKey(data, 0, 0) }

// Sum64WithKey returns the 64-bit digest of data under key (k0, k1).
func Sum64WithKey(data []byte, k0, k1 uint64) uint64 {
	h := Hasher{k0: k0, k1: k1}
	h.Reset()
	h.Write(data)
	return h.Sum64()
}

// Sum64String returns the 64-bit digest of s with the zero key,
// without copying the string.
func Sum64String(s string) uint64 {
	return Sum64(unsafe.Slice(unsafe.StringData(s), len(s)))
}

// Sum128 returns the 128-bit digest of data with the zero key.
func Sum128(data []byte) (lo, hi uint64) { return Sum128WithKey(data, 0, 0) }

// Sum128WithKey returns the 128-bit digest of data under key (k0, k1).
func Sum128WithKey(data []byte, k0, k1 uint64) (lo, hi uint64) {
	h := Hasher{k0: k0, k1: k1}
	h.Reset()
	h.Write(data)
	return h.Sum128()
}

// Sum128Bytes returns the 128-bit digest of data with the zero key as
// 16 little-endian bytes, low word first.
func Sum128Bytes(data []byte) [16]byte {
	h := Hasher{}
	h.Reset()
	h.Write(data)
	return h.Sum128Bytes()
}
