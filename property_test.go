package rbtree

import (
	"math/rand"
	"sort"
	"testing"
)

// How to run:
//   - Deterministic randomized property test:
//     go test . -run TestTreeRandomizedProperty -count=1
//   - Fuzz test for this file:
//     go test . -run '^$' -fuzz FuzzTreeRandomizedProperty -fuzztime=10s
//   - Replay a specific saved failing input:
//     go test . -run 'FuzzTreeRandomizedProperty/<id>'

type treeModel struct {
	keys []int64
	refs []NodeRef
}

func (m *treeModel) add(key int64, ref NodeRef) {
	m.keys = append(m.keys, key)
	m.refs = append(m.refs, ref)
}

func (m *treeModel) removeAt(i int) NodeRef {
	ref := m.refs[i]
	last := len(m.keys) - 1
	m.keys[i], m.refs[i] = m.keys[last], m.refs[last]
	m.keys = m.keys[:last]
	m.refs = m.refs[:last]
	return ref
}

func (m *treeModel) sorted() []int64 {
	out := append([]int64(nil), m.keys...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func assertTreeMatchesModel(t *testing.T, tree *Tree, m *treeModel) {
	t.Helper()
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant violation: %v", err)
	}
	want := m.sorted()
	got := tree.Keys()
	if len(got) != len(want) {
		t.Fatalf("tree holds %d keys, model %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("export[%d] = %d, model %d", i, got[i], want[i])
		}
	}
	if h, bound := tree.Height(), heightBound(len(want)); h > bound {
		t.Fatalf("height %d exceeds bound %d for %d keys", h, bound, len(want))
	}
}

// runTreeModelOps interleaves random inserts and handle-based removals,
// validating every invariant after every single operation.
func runTreeModelOps(t *testing.T, seed int64, nops int) {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	tree, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	model := &treeModel{}
	for op := 0; op < nops; op++ {
		if len(model.keys) == 0 || r.Intn(100) < 60 {
			key := int64(r.Intn(64)) - 32 // narrow range provokes duplicates
			ref, err := tree.Insert(key)
			if err != nil {
				t.Fatalf("op %d: Insert(%d) failed: %v", op, key, err)
			}
			model.add(key, ref)
		} else {
			ref := model.removeAt(r.Intn(len(model.keys)))
			if err := tree.Remove(ref); err != nil {
				t.Fatalf("op %d: Remove failed: %v", op, err)
			}
		}
		assertTreeMatchesModel(t, tree, model)
	}
	// drain in random order, still checking every step
	for len(model.keys) > 0 {
		ref := model.removeAt(r.Intn(len(model.keys)))
		if err := tree.Remove(ref); err != nil {
			t.Fatalf("drain: Remove failed: %v", err)
		}
		assertTreeMatchesModel(t, tree, model)
	}
	if !tree.IsEmpty() || tree.root != sentinel {
		t.Fatalf("expected empty tree after drain")
	}
}

func TestTreeRandomizedProperty(t *testing.T) {
	for _, seed := range []int64{1, 99, 20260828} {
		runTreeModelOps(t, seed, 400)
	}
}

func FuzzTreeRandomizedProperty(f *testing.F) {
	f.Add(int64(1))
	f.Add(int64(424242))
	f.Fuzz(func(t *testing.T, seed int64) {
		runTreeModelOps(t, seed, 120)
	})
}
