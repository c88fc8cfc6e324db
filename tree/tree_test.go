package tree

import (
	"sync/atomic"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// buildTreeForTest creates a small tree of int payloads:
//
//	        1
//	      /   \
//	     2     3
//	    / \     \
//	   4   5     6
func buildTreeForTest() map[int]*Node[int] {
	nodes := make(map[int]*Node[int])
	for i := 1; i <= 6; i++ {
		nodes[i] = NewNode(i)
	}
	nodes[1].AddChild(nodes[2]).AddChild(nodes[3])
	nodes[2].AddChild(nodes[4]).AddChild(nodes[5])
	nodes[3].AddChild(nodes[6])
	return nodes
}

func TestNodeAddChild(t *testing.T) {
	node := NewNode(1)
	node.AddChild(NewNode(2)).AddChild(NewNode(3))
	if node.ChildCount() != 2 {
		t.Errorf("expected node to have 2 children, has %d", node.ChildCount())
	}
	ch, ok := node.Child(1)
	if !ok || ch.Payload != 3 {
		t.Errorf("expected child #1 to carry payload 3, has %v", ch)
	}
	if ch.Parent() != node {
		t.Error("expected child #1 to point back to its parent, doesn't")
	}
}

func TestNodeInsertChildAt(t *testing.T) {
	node := NewNode(1)
	node.AddChild(NewNode(2)).AddChild(NewNode(4))
	node.InsertChildAt(1, NewNode(3))
	if node.ChildCount() != 3 {
		t.Fatalf("expected node to have 3 children, has %d", node.ChildCount())
	}
	for i := 0; i < 3; i++ {
		ch, _ := node.Child(i)
		if ch.Payload != i+2 {
			t.Errorf("expected child #%d to carry payload %d, has %d", i, i+2, ch.Payload)
		}
	}
}

func TestNodeIsolate(t *testing.T) {
	nodes := buildTreeForTest()
	nodes[2].Isolate()
	if nodes[2].Parent() != nil {
		t.Error("expected isolated node to have no parent, has one")
	}
	if len(nodes[1].Children(true)) != 1 {
		t.Errorf("expected root to have 1 remaining child, has %d", len(nodes[1].Children(true)))
	}
}

func TestNodeIndexOfChild(t *testing.T) {
	nodes := buildTreeForTest()
	if i := nodes[1].IndexOfChild(nodes[3]); i != 1 {
		t.Errorf("expected node 3 to be child #1 of root, is #%d", i)
	}
	if i := nodes[1].IndexOfChild(nodes[6]); i != -1 {
		t.Errorf("expected node 6 to be no child of root, found at #%d", i)
	}
}

// --- Walker ----------------------------------------------------------------

func TestWalkerOfNilTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.tree")
	defer teardown()
	//
	future := NewWalker[int](nil).AllDescendents().Promise()
	nodes, err := future()
	if err != ErrEmptyTree {
		t.Errorf("expected walk of empty tree to fail with ErrEmptyTree, got %v", err)
	}
	if len(nodes) > 0 {
		t.Errorf("expected walk of empty tree to select nothing, got %v", nodes)
	}
}

func TestWalkerWithoutFilters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.tree")
	defer teardown()
	//
	nodes := buildTreeForTest()
	selection, err := NewWalker(nodes[1]).Promise()()
	if err != nil {
		t.Errorf("expected no error from filter-less walker, got %v", err)
	}
	if len(selection) != 0 {
		t.Errorf("expected empty selection from filter-less walker, got %v", selection)
	}
}

func TestWalkerParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	nodes := buildTreeForTest()
	selection, err := NewWalker(nodes[5]).Parent().Promise()()
	if err != nil {
		t.Fatalf("parent walk returned error: %v", err)
	}
	if len(selection) != 1 || selection[0].Payload != 2 {
		t.Errorf("expected parent of node 5 to be node 2, got %v", selection)
	}
}

func TestWalkerAncestorWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	nodes := buildTreeForTest()
	isRoot := func(test *Node[int], node *Node[int]) (*Node[int], error) {
		if test.Parent() == nil {
			return test, nil
		}
		return nil, nil
	}
	selection, err := NewWalker(nodes[4]).AncestorWith(isRoot).Promise()()
	if err != nil {
		t.Fatalf("ancestor walk returned error: %v", err)
	}
	if len(selection) != 1 || selection[0].Payload != 1 {
		t.Errorf("expected ancestor-with-root to find node 1, got %v", selection)
	}
}

func TestWalkerDescendentsWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	nodes := buildTreeForTest()
	selection, err := NewWalker(nodes[1]).DescendentsWith(NodeIsLeaf[int]()).Promise()()
	if err != nil {
		t.Fatalf("descendents walk returned error: %v", err)
	}
	if len(selection) != 3 {
		t.Fatalf("expected 3 leafs, got %d", len(selection))
	}
	leafs := map[int]bool{}
	for _, n := range selection {
		leafs[n.Payload] = true
	}
	for _, l := range []int{4, 5, 6} {
		if !leafs[l] {
			t.Errorf("expected node %d in leaf selection, isn't", l)
		}
	}
}

func TestWalkerFilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	nodes := buildTreeForTest()
	even := func(test *Node[int], node *Node[int]) (*Node[int], error) {
		if test.Payload%2 == 0 {
			return test, nil
		}
		return nil, nil
	}
	selection, err := NewWalker(nodes[1]).AllDescendents().Filter(even).Promise()()
	if err != nil {
		t.Fatalf("filter walk returned error: %v", err)
	}
	if len(selection) != 3 { // nodes 2, 4 and 6
		t.Errorf("expected 3 even descendents, got %d", len(selection))
	}
}

func TestWalkerTopDown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	nodes := buildTreeForTest()
	var visited int32
	count := func(n *Node[int], parent *Node[int], position int) (*Node[int], error) {
		atomic.AddInt32(&visited, 1)
		return n, nil
	}
	selection, err := NewWalker(nodes[1]).TopDown(count).Promise()()
	if err != nil {
		t.Fatalf("top-down walk returned error: %v", err)
	}
	if atomic.LoadInt32(&visited) != 6 {
		t.Errorf("expected action to visit 6 nodes, visited %d", visited)
	}
	if len(selection) != 6 {
		t.Errorf("expected top-down walk to select all 6 nodes, got %d", len(selection))
	}
}

func TestWalkerBottomUpCalcRank(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	nodes := buildTreeForTest()
	selection, err := NewWalker(nodes[1]).DescendentsWith(NodeIsLeaf[int]()).BottomUp(CalcRank[int]).Promise()()
	if err != nil {
		t.Fatalf("bottom-up walk returned error: %v", err)
	}
	if len(selection) != 6 {
		t.Errorf("expected bottom-up walk to process all 6 nodes, got %d", len(selection))
	}
	if nodes[1].Rank != 6 {
		t.Errorf("expected rank of root to be 6, is %d", nodes[1].Rank)
	}
	if nodes[2].Rank != 3 {
		t.Errorf("expected rank of node 2 to be 3, is %d", nodes[2].Rank)
	}
	if nodes[6].Rank != 1 {
		t.Errorf("expected rank of leaf 6 to be 1, is %d", nodes[6].Rank)
	}
}

func TestWalkerRejectsFiltersAfterPromise(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bladebar.tree")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	nodes := buildTreeForTest()
	w := NewWalker(nodes[1]).AllDescendents()
	if _, err := w.Promise()(); err != nil {
		t.Fatalf("walk returned error: %v", err)
	}
	if _, err := appendFilterForTask(w, clientFilter[int], Whatever[int](), 0); err != ErrNoMoreFiltersAccepted {
		t.Errorf("expected walker to reject filters after Promise(), got %v", err)
	}
}
