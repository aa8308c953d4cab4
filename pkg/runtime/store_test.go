package runtime

import "testing"

func TestStoreSetGet(t *testing.T) {
	s := NewStore(nil)

	if _, ok := s.Get("key"); ok {
		t.Error("expected miss for non-existent key")
	}

	s.Set("key", "value")
	if v, ok := s.Get("key"); !ok || v != "value" {
		t.Errorf("expected 'value', got %v (ok=%v)", v, ok)
	}

	// Different types
	s.Set("intKey", 42)
	if v, _ := s.Get("intKey"); v != 42 {
		t.Errorf("expected 42, got %v", v)
	}
}

func TestStoreChainLookup(t *testing.T) {
	root := NewStore(nil)
	mid := root.Fork()
	leaf := mid.Fork()

	root.Set("a", 1)
	mid.Set("b", 2)

	if v, _ := leaf.Get("a"); v != 1 {
		t.Errorf("leaf should reach root entry, got %v", v)
	}
	if v, _ := leaf.Get("b"); v != 2 {
		t.Errorf("leaf should reach mid entry, got %v", v)
	}
	if _, ok := root.Get("b"); ok {
		t.Error("lookup must not walk downward")
	}
}

func TestStoreShadowingLeavesAncestorIntact(t *testing.T) {
	parent := NewStore(nil)
	child := parent.Fork()

	parent.Set("k", "parent")
	child.Set("k", "child")

	if v, _ := child.Get("k"); v != "child" {
		t.Errorf("child should see own value, got %v", v)
	}
	if v, _ := parent.Get("k"); v != "parent" {
		t.Errorf("parent value must be unchanged, got %v", v)
	}
	if child.HasLocal("k") != true {
		t.Error("shadow should live in the child's local map")
	}
}

func TestStoreSetWritesLocalOnly(t *testing.T) {
	parent := NewStore(nil)
	child := parent.Fork()

	child.Set("k", "v")

	if parent.Has("k") {
		t.Error("write through a fork must never mutate the ancestor")
	}
	if child.Len() != 1 || parent.Len() != 0 {
		t.Errorf("expected local sizes 1/0, got %d/%d", child.Len(), parent.Len())
	}
}

func TestStoreHasCountsFalsyValues(t *testing.T) {
	s := NewStore(nil)
	s.Set("nilKey", nil)
	s.Set("falseKey", false)

	if !s.Has("nilKey") {
		t.Error("provided nil must count as present")
	}
	if !s.Has("falseKey") {
		t.Error("provided false must count as present")
	}
	if v, ok := s.Get("nilKey"); !ok || v != nil {
		t.Errorf("expected (nil, true), got (%v, %v)", v, ok)
	}
}

func TestStoreNoKeyCoercion(t *testing.T) {
	s := NewStore(nil)
	s.Set(1, "numeric")
	s.Set("1", "string")

	if v, _ := s.Get(1); v != "numeric" {
		t.Errorf("numeric key resolved wrong value: %v", v)
	}
	if v, _ := s.Get("1"); v != "string" {
		t.Errorf("string key resolved wrong value: %v", v)
	}
}

func TestStoreFallbackAccessor(t *testing.T) {
	root := NewStore(nil)
	child := root.Fork()

	if root.Fallback() != nil {
		t.Error("root store has no fallback")
	}
	if child.Fallback() != root {
		t.Error("fork must chain to its origin")
	}
}
