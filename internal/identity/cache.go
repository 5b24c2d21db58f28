// Package identity implements the encoder-side identity cache of spec §4.2:
// a mapping from "already-emitted value" to the precomputed back-reference
// bytes that would encode it as tag.Recursive.
//
// Lookup is never by structural equality — two distinct-but-equal strings
// must not collide here unless the host adapter says they are the same
// reference (spec §9). Keys are therefore identity Tokens: a pointer
// address or a host-supplied stable string id, never a value's content.
//
// The cache hashes a Token into a bucket the way
// github.com/arloliu/mebo/internal/collision.Tracker hashes a metric name
// into a bucket: a hash collision between two distinct tokens is expected
// to happen occasionally and is resolved by comparing the token itself,
// not treated as an error.
package identity

import "github.com/Offroaders123/buffered-clone/internal/hash"

// tokenKind distinguishes the two identity representations a host adapter
// may hand back for a value: a raw pointer address (the common case for Go
// values with their own storage) or a string id (for hosts without raw
// pointer identity, per spec §9).
type tokenKind uint8

const (
	kindAddress tokenKind = iota
	kindString
)

// Token is an opaque identity key. Two Tokens compare equal only if they
// were built from the same address or the same string id; content never
// factors into equality.
type Token struct {
	kind tokenKind
	addr uintptr
	str  string
}

// FromAddress builds a Token from a pointer address.
func FromAddress(addr uintptr) Token {
	return Token{kind: kindAddress, addr: addr}
}

// FromString builds a Token from a host-supplied stable string id.
func FromString(id string) Token {
	return Token{kind: kindString, str: id}
}

func (t Token) hash() uint64 {
	if t.kind == kindString {
		return hash.ID(t.str)
	}

	return hash.Address(t.addr)
}

type entry struct {
	token Token
	seq   []byte
}

// Cache is the encoder's identity cache. It lives for the duration of one
// top-level Encode call and is discarded on completion (spec §3, Entity
// lifecycles) — callers should construct a fresh Cache per encode rather
// than reusing one across calls.
type Cache struct {
	buckets map[uint64][]entry
	size    int
}

// NewCache creates an empty identity cache.
func NewCache() *Cache {
	return &Cache{buckets: make(map[uint64][]entry)}
}

// Lookup returns the precomputed back-reference bytes for token, if token
// was previously inserted.
func (c *Cache) Lookup(token Token) ([]byte, bool) {
	bucket := c.buckets[token.hash()]
	for _, e := range bucket {
		if e.token == token {
			return e.seq, true
		}
	}

	return nil, false
}

// Insert records token's precomputed back-reference bytes, seq. Insert
// must be called at most once per token for the lifetime of the cache;
// the encoder is responsible for checking Lookup first.
func (c *Cache) Insert(token Token, seq []byte) {
	h := token.hash()
	c.buckets[h] = append(c.buckets[h], entry{token: token, seq: seq})
	c.size++
}

// Len returns the number of tokens currently tracked.
func (c *Cache) Len() int {
	return c.size
}
