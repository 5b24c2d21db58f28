// Package hash wraps xxHash64 for the identity cache's bucket key.
//
// The identity cache (internal/identity) never uses structural equality: a
// value's bucket key is derived from its identity token, a host-supplied
// string or uintptr that stands in for "this exact reference" (spec §9,
// "Identity-based mapping keyed by arbitrary values"). Hashing the token
// only picks a bucket; the cache still verifies the actual token on lookup,
// so a hash collision degrades to a short linear scan rather than a
// correctness bug.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a string identity token, for host values
// whose adapter exposes identity as a string (e.g. an interned id).
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Address computes the xxHash64 of a uintptr identity token, for host
// values whose adapter exposes identity as a raw pointer address.
func Address(addr uintptr) uint64 {
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(addr >> (8 * i))
	}

	return xxhash.Sum64(buf[:])
}
