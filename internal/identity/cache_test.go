package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_MissThenHit(t *testing.T) {
	c := NewCache()
	tok := FromAddress(0x1000)

	_, ok := c.Lookup(tok)
	require.False(t, ok)

	c.Insert(tok, []byte{0xaa, 0xbb})

	seq, ok := c.Lookup(tok)
	require.True(t, ok)
	assert.Equal(t, []byte{0xaa, 0xbb}, seq)
	assert.Equal(t, 1, c.Len())
}

func TestCache_DistinctAddressesDoNotCollide(t *testing.T) {
	c := NewCache()
	a := FromAddress(0x1)
	b := FromAddress(0x2)

	c.Insert(a, []byte{1})
	c.Insert(b, []byte{2})

	seqA, ok := c.Lookup(a)
	require.True(t, ok)
	assert.Equal(t, []byte{1}, seqA)

	seqB, ok := c.Lookup(b)
	require.True(t, ok)
	assert.Equal(t, []byte{2}, seqB)
}

func TestCache_StringTokens(t *testing.T) {
	c := NewCache()
	tok := FromString("host-interned-id-42")

	c.Insert(tok, []byte{0x09})

	seq, ok := c.Lookup(tok)
	require.True(t, ok)
	assert.Equal(t, []byte{0x09}, seq)
}

func TestCache_AddressAndStringTokensAreDistinct(t *testing.T) {
	c := NewCache()
	addrTok := FromAddress(0)
	strTok := FromString("")

	c.Insert(addrTok, []byte{1})

	_, ok := c.Lookup(strTok)
	assert.False(t, ok, "a zero address and an empty string id must not alias")
}

func TestCache_SharedLowHashBitsResolveByToken(t *testing.T) {
	// Two tokens whose hashes agree in their low three bits must still be
	// distinguishable by exact token comparison, not merged. (The cache
	// keys buckets by the full 64-bit hash, so these do not share a bucket.)
	c := NewCache()
	var a, b Token
	for i := uintptr(1); i < 100000; i++ {
		a = FromAddress(i)
		b = FromAddress(i + 1)
		if a.hash()%8 == b.hash()%8 {
			break
		}
	}

	c.Insert(a, []byte{0xa})
	c.Insert(b, []byte{0xb})

	seqA, ok := c.Lookup(a)
	require.True(t, ok)
	assert.Equal(t, []byte{0xa}, seqA)

	seqB, ok := c.Lookup(b)
	require.True(t, ok)
	assert.Equal(t, []byte{0xb}, seqB)
}
