package Trees

import "math/bits"

// completeSize is the number of nodes of the complete tree rooted at root. At each
// level either the left subtree is perfect (its left spine is as deep as the right
// spine of the whole tree) or the right one is, so only one side is counted
// recursively.
// Time: O(D^2); Space: O(1)
func completeSize(root *Node) uint {
	var sz uint
	for root != nil {
		l, r := 0, 0
		for c := root.Left; c != nil; c = c.Left {
			l++
		}
		for c := root.Right; c != nil; c = c.Left {
			r++
		}
		if l == r { // left subtree is perfect with 2^l-1 nodes.
			sz += 1 << l
			root = root.Right
		} else { // right subtree is perfect with 2^r-1 nodes.
			sz += 1 << r
			root = root.Left
		}
	}
	return sz
}

// nodeAt walks from root to the k-th node of a complete tree in level order,
// 1-based. Below the leading bit, the binary digits of k select left (0) or right
// (1) at each level. Returns nil if that position is empty.
// Time: O(D); Space: O(1)
func nodeAt(root *Node, k uint) *Node {
	cur := root
	for i := bits.Len(k) - 2; i >= 0 && cur != nil; i-- {
		if k>>i&1 == 0 {
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
	return cur
}

// swapUp exchanges n with its parent structurally: n takes the position of its
// parent and the parent takes the former position of n, every neighbour is
// relinked and both nodes keep their values.
func swapUp(n *Node) {
	p := n.Parent
	g, nl, nr := p.Parent, n.Left, n.Right
	if p.Left == n {
		n.Left, n.Right = p, p.Right
		if n.Right != nil {
			n.Right.Parent = n
		}
	} else {
		n.Left, n.Right = p.Left, p
		if n.Left != nil {
			n.Left.Parent = n
		}
	}
	if p.Left, p.Right = nl, nr; nl != nil {
		nl.Parent = p
	}
	if nr != nil {
		nr.Parent = p
	}
	p.Parent, n.Parent = n, g
	if g != nil {
		if g.Left == p {
			g.Left = n
		} else {
			g.Right = n
		}
	}
}

// siftUp moves n upwards while it's larger than its parent.
func siftUp(n *Node) {
	for n.Parent != nil && n.Parent.V < n.V {
		swapUp(n)
	}
}

// siftDown moves n downwards, swapping it with its larger child, until it's no
// smaller than both children. Returns the node that ends up at the original
// position of n.
func siftDown(n *Node) *Node {
	top := n
	for {
		largest := n
		if n.Left != nil && n.Left.V > largest.V {
			largest = n.Left
		}
		if n.Right != nil && n.Right.V > largest.V {
			largest = n.Right
		}
		if largest == n {
			return top
		}
		if top == n {
			top = largest
		}
		swapUp(largest)
	}
}

// heapInsert is HeapInsert with the size of the heap already known.
func heapInsert(root **Node, v int, sz uint) *Node {
	if *root == nil {
		*root = NewNode(nil, v)
		return *root
	}
	k := sz + 1
	p := nodeAt(*root, k>>1)
	n := NewNode(p, v)
	if k&1 == 0 {
		p.Left = n
	} else {
		p.Right = n
	}
	if siftUp(n); n.Parent == nil {
		*root = n
	}
	return n
}

// heapExtract is HeapExtract with the size of the heap already known.
func heapExtract(root **Node, sz uint) int {
	r := *root
	v := r.V
	if sz == 1 {
		r.detach()
		*root = nil
		return v
	}
	last := nodeAt(r, sz)
	if p := last.Parent; p.Left == last {
		p.Left = nil
	} else {
		p.Right = nil
	}
	if last.Left, last.Right = r.Left, r.Right; last.Left != nil {
		last.Left.Parent = last
	}
	if last.Right != nil {
		last.Right.Parent = last
	}
	last.Parent = nil
	r.detach()
	*root = siftDown(last)
	return v
}

// HeapInsert inserts v into the binary max heap held by root and returns the new
// node. The new node is attached at the next free position of the last level and
// sifted up by swapping nodes, not values, so the returned pointer keeps holding v.
// *root is updated when the new node becomes the root.
// Returns nil if root is nil.
// Time: O(D^2)
func HeapInsert(root **Node, v int) *Node {
	if root == nil {
		return nil
	}
	return heapInsert(root, v, completeSize(*root))
}

// HeapExtract removes the root of the binary max heap held by root and returns its
// value. The last node of the last level takes the place of the root and is sifted
// down.
// Returns 0 if the heap is empty. 0 can also be a stored value, so emptiness must
// be checked on *root, not on the returned value.
// Time: O(D^2)
func HeapExtract(root **Node) int {
	if root == nil || *root == nil {
		return 0
	}
	return heapExtract(root, completeSize(*root))
}

// ArrayToHeap builds a binary max heap by inserting the elements of sli in order.
// Returns nil for an empty slice.
func ArrayToHeap(sli []int) *Node {
	var root *Node
	for i, v := range sli {
		heapInsert(&root, v, uint(i))
	}
	return root
}

// HeapToSortedArray extracts every element of the heap held by root in descending
// order. The heap is empty afterwards.
func HeapToSortedArray(root **Node) []int {
	if root == nil {
		return nil
	}
	sz := completeSize(*root)
	sli := make([]int, 0, sz)
	for ; sz > 0; sz-- {
		sli = append(sli, heapExtract(root, sz))
	}
	return sli
}
