package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheWrapWriteAndDiscard(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("kept"), []byte("a")))
	require.NoError(t, base.Set([]byte("gone"), []byte("b")))

	discarded := base.CacheWrap()
	require.NoError(t, discarded.Set([]byte("new"), []byte("c")))
	require.NoError(t, discarded.Delete([]byte("kept")))
	assertValue(t, discarded, "new", "c")
	assertMissing(t, discarded, "kept")
	discarded.Discard()

	assertValue(t, base, "kept", "a")
	assertMissing(t, base, "new")

	written := base.CacheWrap()
	require.NoError(t, written.Set([]byte("new"), []byte("c")))
	require.NoError(t, written.Delete([]byte("gone")))
	// Parent is not affected until the wrap is written.
	assertMissing(t, base, "new")
	assertValue(t, base, "gone", "b")
	require.NoError(t, written.Write())

	assertValue(t, base, "new", "c")
	assertMissing(t, base, "gone")
	assertValue(t, base, "kept", "a")
}

func TestNestedCacheWrap(t *testing.T) {
	base := MemStore()
	outer := base.CacheWrap()
	require.NoError(t, outer.Set([]byte("k"), []byte("outer")))

	inner := outer.CacheWrap()
	assertValue(t, inner, "k", "outer")
	require.NoError(t, inner.Set([]byte("k"), []byte("inner")))
	require.NoError(t, inner.Write())
	assertValue(t, outer, "k", "inner")
	assertMissing(t, base, "k")

	require.NoError(t, outer.Write())
	assertValue(t, base, "k", "inner")
}

func TestDeleteShadowsBackingStore(t *testing.T) {
	base := MemStore()
	require.NoError(t, base.Set([]byte("k"), []byte("v")))

	wrap := base.CacheWrap()
	require.NoError(t, wrap.Delete([]byte("k")))
	assertMissing(t, wrap, "k")

	// A later set restores visibility within the same wrap.
	require.NoError(t, wrap.Set([]byte("k"), []byte("again")))
	assertValue(t, wrap, "k", "again")
}

func TestLogableStore(t *testing.T) {
	kv, ops := LogableStore()
	wrap := kv.CacheWrap()
	require.NoError(t, wrap.Set([]byte("a"), []byte("1")))
	require.NoError(t, wrap.Delete([]byte("b")))
	require.NoError(t, wrap.Write())

	got := ops.ShowOps()
	require.Len(t, got, 2)
	assert.True(t, got[0].IsSetOp())
	assert.Equal(t, []byte("a"), got[0].Key())
	assert.Equal(t, []byte("1"), got[0].Value())
	assert.False(t, got[1].IsSetOp())
	assert.Equal(t, []byte("b"), got[1].Key())
}

func TestEmptyKVStore(t *testing.T) {
	var e EmptyKVStore
	require.NoError(t, e.Set([]byte("a"), []byte("b")))
	v, err := e.Get([]byte("a"))
	require.NoError(t, err)
	assert.Nil(t, v)
	has, err := e.Has([]byte("a"))
	require.NoError(t, err)
	assert.False(t, has)
}

func assertValue(t *testing.T, kv KVStore, key, want string) {
	t.Helper()
	got, err := kv.Get([]byte(key))
	require.NoError(t, err)
	require.Equal(t, want, string(got))
	has, err := kv.Has([]byte(key))
	require.NoError(t, err)
	require.True(t, has)
}

func assertMissing(t *testing.T, kv KVStore, key string) {
	t.Helper()
	got, err := kv.Get([]byte(key))
	require.NoError(t, err)
	require.Nil(t, got)
	has, err := kv.Has([]byte(key))
	require.NoError(t, err)
	require.False(t, has)
}
