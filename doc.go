// Package siphash implements SipHash-2-4 as a streaming hasher
// producing 64-bit and 128-bit digests, keyed by a 128-bit secret
// (two 64-bit words).
//
// The 64-bit digest is standard SipHash-2-4. The 128-bit digest and
// the streaming update follow the variant used by ClickHouse: the
// finalization constant stays 0xff (the standard 128-bit mode uses
// 0xee) and the two output words are v0^v1 and v2^v3. Digests are
// bit-compatible with ClickHouse's sipHash64 and sipHash128 SQL
// functions.
//
// The streaming [Hasher] satisfies [hash.Hash64] and accepts input in
// chunks of any size; the digest depends only on the concatenated
// bytes, not on how they were split across Write calls. One-shot
// helpers are provided for callers that have the whole input at hand.
//
// SipHash is a keyed PRF, not a general-purpose cryptographic hash;
// it targets short inputs (keys, URLs, search phrases) where it is
// several times faster than MD5-class functions.
package siphash
