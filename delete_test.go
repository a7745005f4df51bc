package rbtree

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestRemoveTwoChildNode(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, _ := New()
	for _, key := range []int64{50, 30, 70, 20, 40, 60, 80} {
		if _, err := tree.Insert(key); err != nil {
			t.Fatalf("Insert(%d) failed: %v", key, err)
		}
	}
	// 30 has children 20 and 40, so removal goes through successor
	// substitution
	if !tree.RemoveKey(30) {
		t.Fatalf("RemoveKey(30) failed")
	}
	want := []int64{20, 40, 50, 60, 70, 80}
	got := tree.Keys()
	if len(got) != len(want) {
		t.Fatalf("expected %d keys, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected export %v, want %v", got, want)
		}
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestRemoveOnlyNode(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, _ := New()
	ref, err := tree.Insert(1)
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := tree.Remove(ref); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if !tree.IsEmpty() || tree.root != sentinel {
		t.Errorf("expected empty tree with sentinel root")
	}
	if _, ok := tree.Find(1); ok {
		t.Errorf("Find(1) still finds the removed key")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestRemoveStaleReference(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree, _ := New()
	ref, _ := tree.Insert(9)
	if err := tree.Remove(ref); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if err := tree.Remove(ref); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("expected ErrInvalidNode for stale handle, got %v", err)
	}
	// a recycled slot must not resurrect the old handle
	if _, err := tree.Insert(10); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := tree.Remove(ref); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("expected ErrInvalidNode after slot reuse, got %v", err)
	}
	if err := tree.Remove(NodeRef{}); !errors.Is(err, ErrInvalidNode) {
		t.Errorf("expected ErrInvalidNode for zero handle, got %v", err)
	}
}

func TestRemoveKeyAbsent(t *testing.T) {
	tree, _ := New()
	tree.Insert(3)
	if tree.RemoveKey(4) {
		t.Errorf("RemoveKey(4) removed something from {3}")
	}
	if tree.Len() != 1 {
		t.Errorf("expected untouched tree, len=%d", tree.Len())
	}
}

func TestRemoveDrainsWholeTree(t *testing.T) {
	tree, _ := New()
	refs := make([]NodeRef, 0, 64)
	for i := range 64 {
		ref, err := tree.Insert(int64(i))
		if err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		refs = append(refs, ref)
	}
	// remove inside-out to exercise both fixup mirror halves
	for i := range 64 {
		idx := (i*37 + 11) % 64
		if err := tree.Remove(refs[idx]); err != nil {
			t.Fatalf("Remove #%d failed: %v", i, err)
		}
		if err := tree.Check(); err != nil {
			t.Fatalf("after %d removals: %v", i+1, err)
		}
	}
	if !tree.IsEmpty() {
		t.Errorf("expected drained tree, len=%d", tree.Len())
	}
}
