package Trees

// fixInsert restores the balance of the subtree held by curPtr after an insertion
// below it. curPtr is passed by reference and receives the new subtree root.
// After an insertion the heavy child is never balanced, so single rotations only
// happen when its balance leans strictly outwards.
func fixInsert(curPtr **Node) {
	cur := *curPtr
	if b := Balance(cur); b > 1 {
		if lb := Balance(cur.Left); lb > 0 {
			rotateRightAt(curPtr)
		} else if lb < 0 {
			rotateLeftAt(&cur.Left)
			rotateRightAt(curPtr)
		}
	} else if b < -1 {
		if rb := Balance(cur.Right); rb < 0 {
			rotateLeftAt(curPtr)
		} else if rb > 0 {
			rotateRightAt(&cur.Right)
			rotateLeftAt(curPtr)
		}
	}
}

// fixRemove is fixInsert for removals. A removal can leave the heavy child
// balanced, which is resolved by a single rotation.
func fixRemove(curPtr **Node) {
	cur := *curPtr
	if b := Balance(cur); b > 1 {
		if Balance(cur.Left) < 0 {
			rotateLeftAt(&cur.Left)
		}
		rotateRightAt(curPtr)
	} else if b < -1 {
		if Balance(cur.Right) > 0 {
			rotateRightAt(&cur.Right)
		}
		rotateLeftAt(curPtr)
	}
}

// AVLInsert inserts v into the AVL tree held by tree and returns the new node.
// The ancestors of the new node are rebalanced bottom up, *tree is updated if the
// root changes.
// Returns nil if tree is nil or v is already present.
// Time: O(D^2) since heights aren't cached.
func AVLInsert(tree **Node, v int) *Node {
	n := BSTInsert(tree, v)
	if n == nil {
		return nil
	}
	for cur := n.Parent; cur != nil; {
		p := cur.Parent
		fixInsert(link(tree, cur))
		cur = p
	}
	return n
}

// AVLRemove removes v from the AVL tree rooted at root, rebalancing every node on
// the path back to the root, and returns the possibly new root.
// The tree is unchanged if v isn't present. Recursive.
// Time: O(D^2)
func AVLRemove(root *Node, v int) *Node {
	remove(&root, v, fixRemove)
	return root
}

// ArrayToAVL builds an AVL tree by inserting the elements of sli in order.
// Repeated elements are skipped. Returns nil for an empty slice.
func ArrayToAVL(sli []int) *Node {
	var root *Node
	for _, v := range sli {
		AVLInsert(&root, v)
	}
	return root
}

// SortedArrayToAVL builds an AVL tree from a slice sorted in ascending order without
// performing any rotation, by always taking the middle element as the subtree root.
// Recursive. If safe==true, sli is checked to be strictly increasing and this
// function panics with InvalidSliceError otherwise. If safe==false, it's up to the
// caller to ensure the order (otherwise the tree will be corrupt).
// Time: O(n).
func SortedArrayToAVL(sli []int, safe bool) *Node {
	if safe {
		for i := 1; i < len(sli); i++ {
			if sli[i-1] >= sli[i] {
				panic(InvalidSliceError{i - 1, sli[i-1], sli[i]})
			}
		}
	}
	var build func(p *Node, s []int) *Node
	build = func(p *Node, s []int) *Node {
		if len(s) == 0 {
			return nil
		}
		mid := (len(s) - 1) >> 1
		n := NewNode(p, s[mid])
		n.Left, n.Right = build(n, s[:mid]), build(n, s[mid+1:])
		return n
	}
	return build(nil, sli)
}
