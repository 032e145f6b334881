package binarytree

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// sampleTree creates
//
//	      10
//	    /    \
//	   2      8
//	  / \      \
//	 4   6      12
func sampleTree() *Tree[int] {
	return New(NewNode(10,
		NewNode(2, Leaf(4), Leaf(6)),
		NewNode(8, nil, Leaf(12)),
	))
}

func TestEmptyTree(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, tree := range []*Tree[int]{nil, {}, New[int](nil)} {
		if d := tree.MinDepth(); d != 0 {
			t.Errorf("expected min depth of empty tree to be 0, is %d", d)
		}
		if d := tree.MaxDepth(); d != 0 {
			t.Errorf("expected max depth of empty tree to be 0, is %d", d)
		}
		if s := tree.MaxSum(); s != 0 {
			t.Errorf("expected max sum of empty tree to be 0, is %d", s)
		}
		if v, found := tree.NextLarger(0); found {
			t.Errorf("expected no next larger value in empty tree, found %d", v)
		}
		if tree.Len() != 0 {
			t.Errorf("expected empty tree to have no nodes")
		}
	}
}

func TestSingleNode(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, v := range []int{7, 0, -3} {
		tree := New(Leaf(v))
		if tree.MinDepth() != 1 || tree.MaxDepth() != 1 {
			t.Errorf("expected depths of single node to be 1, are %d/%d", tree.MinDepth(), tree.MaxDepth())
		}
		if s := tree.MaxSum(); s != v {
			t.Errorf("expected max sum of single node %d to be %d, is %d", v, v, s)
		}
	}
}

func TestDepth(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := sampleTree()
	if d := tree.MaxDepth(); d != 3 {
		t.Errorf("expected max depth to be 3, is %d", d)
	}
	if d := tree.MinDepth(); d != 3 {
		t.Errorf("expected min depth to be 3, is %d", d)
	}
	// a single-child chain must not count the missing child as a leaf
	chain := New(NewNode(1, Leaf(2), nil))
	if d := chain.MinDepth(); d != 2 {
		t.Errorf("expected min depth of chain to be 2, is %d", d)
	}
	lopsided := New(NewNode(1, Leaf(2), NewNode(3, NewNode(4, nil, Leaf(5)), nil)))
	if lopsided.MinDepth() != 2 || lopsided.MaxDepth() != 4 {
		t.Errorf("expected depths 2/4, are %d/%d", lopsided.MinDepth(), lopsided.MaxDepth())
	}
	if lopsided.MinDepth() > lopsided.MaxDepth() {
		t.Errorf("min depth exceeds max depth")
	}
}

func TestMaxSum(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := sampleTree()
	// 6 -> 2 -> 10 -> 8 -> 12
	if s := tree.MaxSum(); s != 38 {
		t.Errorf("expected max sum to be 38, is %d", s)
	}
	if tree.MaxSum() != tree.MaxSum() {
		t.Errorf("expected max sum to be idempotent")
	}
	// path not touching the root
	neg := New(NewNode(-20, NewNode(5, Leaf(3), Leaf(4)), Leaf(1)))
	if s := neg.MaxSum(); s != 12 {
		t.Errorf("expected max sum 12 below negative root, is %d", s)
	}
	allneg := New(NewNode(-5, Leaf(-2), Leaf(-9)))
	if s := allneg.MaxSum(); s != -2 {
		t.Errorf("expected max sum of all-negative tree to be -2, is %d", s)
	}
	floats := New(NewNode(1.5, Leaf(-0.5), Leaf(2.0)))
	if s := floats.MaxSum(); s != 3.5 {
		t.Errorf("expected max sum of float tree to be 3.5, is %g", s)
	}
}

func TestNextLarger(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := New(NewNode(1, NewNode(10, nil, Leaf(4)), Leaf(6)))
	if v, found := tree.NextLarger(4); !found || v != 6 {
		t.Errorf("expected next larger than 4 to be 6, is %d (found=%v)", v, found)
	}
	if v, found := tree.NextLarger(0); !found || v != 1 {
		t.Errorf("expected next larger than 0 to be 1, is %d (found=%v)", v, found)
	}
	if v, found := tree.NextLarger(10); found {
		t.Errorf("expected no value larger than 10, found %d", v)
	}
}

func TestLevelOrder(t *testing.T) {
	tree := sampleTree()
	var vals []int
	for n := range tree.LevelOrder() {
		vals = append(vals, n.Val)
	}
	expected := []int{10, 2, 8, 4, 6, 12}
	if len(vals) != len(expected) {
		t.Fatalf("expected %d nodes, got %v", len(expected), vals)
	}
	for i := range expected {
		if vals[i] != expected[i] {
			t.Errorf("expected level order %v, got %v", expected, vals)
			break
		}
	}
	if tree.Len() != 6 {
		t.Errorf("expected 6 nodes, have %d", tree.Len())
	}
}
