package Trees

// IsBST reports whether every value in a left subtree is strictly less than its
// root and every value in a right subtree strictly greater. false for nil.
// Recursive.
func IsBST(root *Node) bool {
	if root == nil {
		return false
	}
	// lo and hi are exclusive bounds, nil meaning unbounded.
	var within func(n, lo, hi *Node) bool
	within = func(n, lo, hi *Node) bool {
		if n == nil {
			return true
		} else if (lo != nil && n.V <= lo.V) || (hi != nil && n.V >= hi.V) {
			return false
		}
		return within(n.Left, lo, n) && within(n.Right, n, hi)
	}
	return within(root, nil, nil)
}

// balancedHeight returns the height of n, or false if some node below it has a
// balance factor outside [-1, 1].
func balancedHeight(n *Node) (int, bool) {
	if n == nil {
		return -1, true
	}
	lh, lok := balancedHeight(n.Left)
	if !lok {
		return 0, false
	}
	rh, rok := balancedHeight(n.Right)
	if !rok || lh-rh > 1 || rh-lh > 1 {
		return 0, false
	}
	return Max(lh, rh) + 1, true
}

// IsAVL reports whether the tree is a BST in which every node has a balance factor
// in [-1, 1]. false for nil.
// Time: O(n)
func IsAVL(root *Node) bool {
	_, ok := balancedHeight(root)
	return ok && IsBST(root)
}

// IsHeap reports whether the tree is complete and no node is smaller than its
// children. false for nil.
func IsHeap(root *Node) bool {
	if !IsComplete(root) {
		return false
	}
	ordered := true
	levelOrder(root, func(n *Node) bool {
		ordered = (n.Left == nil || n.Left.V <= n.V) && (n.Right == nil || n.Right.V <= n.V)
		return ordered
	})
	return ordered
}

// ParentLinked reports whether the Parent of every child below root is the node
// that holds it. root itself may have any Parent. Recursive.
func ParentLinked(root *Node) bool {
	if root == nil {
		return true
	}
	return (root.Left == nil || root.Left.Parent == root) &&
		(root.Right == nil || root.Right.Parent == root) &&
		ParentLinked(root.Left) && ParentLinked(root.Right)
}
