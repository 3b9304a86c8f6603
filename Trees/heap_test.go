package Trees

import (
	"slices"
	"testing"
)

func TestHeap_Scenario(t *testing.T) {
	var root *Node
	for _, v := range []int{5, 3, 8, 1, 9, 2} {
		if n := HeapInsert(&root, v); n == nil || n.V != v {
			t.Fatalf("failed to insert %d", v)
		}
		if !IsHeap(root) {
			t.Fatalf("not a heap after inserting %d", v)
		}
		linkedRoot(t, root)
	}
	var got []int
	for range 6 {
		got = append(got, HeapExtract(&root))
		if root != nil && !IsHeap(root) {
			t.Fatalf("not a heap after extracting %d", got[len(got)-1])
		}
		linkedRoot(t, root)
	}
	if !slices.Equal(got, []int{9, 8, 5, 3, 2, 1}) {
		t.Errorf("extracted %v", got)
	}
	if root != nil {
		t.Error("heap should be empty")
	}
}

func TestHeap_Empty(t *testing.T) {
	var root *Node
	if HeapExtract(&root) != 0 || root != nil {
		t.Error("extracting from an empty heap should return 0")
	}
	if HeapExtract(nil) != 0 {
		t.Error("extracting through nil reference should return 0")
	}
	if HeapInsert(nil, 1) != nil {
		t.Error("insert through nil reference should fail")
	}
	n := HeapInsert(&root, 0)
	if root != n {
		t.Fatal("first node should become the root")
	}
	// a stored 0 looks like the sentinel, only root tells them apart.
	if HeapExtract(&root) != 0 || root != nil {
		t.Error("single node heap should become empty")
	}
	if n.Parent != nil || n.Left != nil || n.Right != nil {
		t.Error("extracted node keeps links")
	}
}

func TestHeap_Ordering(t *testing.T) {
	var root *Node
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange / 10) // repeated values are allowed.
		HeapInsert(&root, a[i])
		if i%64 == 0 && !IsHeap(root) {
			t.Fatalf("not a heap after %d insertions", i+1)
		}
	}
	if Size(root) != tAddN || completeSize(root) != tAddN {
		t.Fatalf("size is %d, want %d", Size(root), tAddN)
	}
	if !IsHeap(root) {
		t.Fatal("not a heap")
	}
	linkedRoot(t, root)
	slices.Sort(a)
	slices.Reverse(a)
	for i, want := range a {
		if v := HeapExtract(&root); v != want {
			t.Fatalf("extraction %d gave %d, want %d", i, v, want)
		}
		if i%64 == 0 {
			if root != nil && !IsHeap(root) {
				t.Fatalf("not a heap after %d extractions", i+1)
			}
			linkedRoot(t, root)
		}
	}
	if root != nil {
		t.Error("heap should be empty")
	}
}

func TestHeap_NodeIdentity(t *testing.T) {
	var root *Node
	nodes := make(map[*Node]int)
	for _, v := range rg.Perm(500) {
		nodes[HeapInsert(&root, v)] = v
	}
	for n, v := range nodes {
		if n.V != v {
			t.Fatalf("node inserted with %d holds %d", v, n.V)
		}
	}
	for range 250 {
		v := HeapExtract(&root)
		for n, w := range nodes {
			if w == v {
				if n.Parent != nil || n.Left != nil || n.Right != nil {
					t.Fatalf("extracted node %d keeps links", v)
				}
				delete(nodes, n)
			} else if n.V != w {
				t.Fatalf("node inserted with %d holds %d", w, n.V)
			}
		}
	}
	reached := 0
	levelOrder(root, func(n *Node) bool {
		if _, in := nodes[n]; !in {
			t.Errorf("unknown node %d in heap", n.V)
		}
		reached++
		return true
	})
	if reached != len(nodes) {
		t.Errorf("reached %d nodes, want %d", reached, len(nodes))
	}
}

func TestHeap_SizeAndPositions(t *testing.T) {
	var root *Node
	for i := uint(1); i <= 100; i++ {
		HeapInsert(&root, -int(i)) // decreasing values never sift, level order matches insertion order.
		if completeSize(root) != i {
			t.Fatalf("complete size %d, want %d", completeSize(root), i)
		}
	}
	for k := uint(1); k <= 100; k++ {
		if n := nodeAt(root, k); n == nil || n.V != -int(k) {
			t.Fatalf("position %d holds the wrong node", k)
		}
	}
	if nodeAt(root, 101) != nil {
		t.Error("position past the end should be empty")
	}
	if completeSize(nil) != 0 {
		t.Error("empty tree should have size 0")
	}
}

func TestArrayToHeap(t *testing.T) {
	if ArrayToHeap(nil) != nil {
		t.Error("empty slice should build nil")
	}
	a := rg.Perm(1000)
	root := ArrayToHeap(a)
	if !IsHeap(root) {
		t.Fatal("not a heap")
	}
	s := HeapToSortedArray(&root)
	if root != nil {
		t.Error("heap should be consumed")
	}
	if len(s) != len(a) || !slices.IsSortedFunc(s, func(x, y int) int { return y - x }) {
		t.Error("sorted array isn't in descending order")
	}
	if HeapToSortedArray(nil) != nil {
		t.Error("nil reference should give nil")
	}
}

func TestSwapUp(t *testing.T) {
	// 1(2(4,5),3) swapping 2 up gives 2(1(4,5),3).
	root := NewNode(nil, 1)
	l, r := InsertLeft(root, 2), InsertRight(root, 3)
	ll, lr := InsertLeft(l, 4), InsertRight(l, 5)
	swapUp(l)
	if l.Parent != nil || l.Left != root || l.Right != r || r.Parent != l || root.Parent != l {
		t.Fatal("swapped node is linked wrong")
	}
	if root.Left != ll || root.Right != lr || ll.Parent != root || lr.Parent != root {
		t.Fatal("former parent is linked wrong")
	}
	// right child with a grandparent.
	swapUp(lr)
	if l.Left != lr || lr.Parent != l || lr.Left != ll || lr.Right != root || root.Parent != lr {
		t.Fatal("right child swap is linked wrong")
	}
	if root.Left != nil || root.Right != nil || ll.Parent != lr {
		t.Fatal("leaf after swap keeps children")
	}
}
