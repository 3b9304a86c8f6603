package Trees

import "golang.org/x/exp/constraints"

func Max[T constraints.Ordered](a, b T) T {
	if a < b {
		return b
	}
	return a
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// height of the subtree rooted at n in edges, -1 for nil. Recursive.
func height(n *Node) int {
	if n == nil {
		return -1
	}
	return Max(height(n.Left), height(n.Right)) + 1
}

// Height of the tree rooted at n in edges. Both nil and a single node have height 0.
// Recursive.
func Height(n *Node) uint {
	if n == nil {
		return 0
	}
	return uint(height(n))
}

// Depth of n, which is the number of edges between n and the root. 0 for nil.
func Depth(n *Node) uint {
	var d uint
	for ; n != nil && n.Parent != nil; n = n.Parent {
		d++
	}
	return d
}

// Size is the number of nodes in the tree rooted at n. Recursive.
func Size(n *Node) uint {
	if n == nil {
		return 0
	}
	return Size(n.Left) + Size(n.Right) + 1
}

// Leaves counts the nodes without children. Recursive.
func Leaves(n *Node) uint {
	if n == nil {
		return 0
	} else if n.Left == nil && n.Right == nil {
		return 1
	}
	return Leaves(n.Left) + Leaves(n.Right)
}

// Nodes counts the nodes with at least one child. Recursive.
func Nodes(n *Node) uint {
	if n == nil || (n.Left == nil && n.Right == nil) {
		return 0
	}
	return Nodes(n.Left) + Nodes(n.Right) + 1
}

// Balance factor of n: height of the left subtree minus height of the right subtree,
// where a missing subtree has height -1. 0 for nil.
// Time: O(size of n)
func Balance(n *Node) int {
	if n == nil {
		return 0
	}
	return height(n.Left) - height(n.Right)
}

func IsLeaf(n *Node) bool {
	return n != nil && n.Left == nil && n.Right == nil
}

func IsRoot(n *Node) bool {
	return n != nil && n.Parent == nil
}

// IsFull reports whether every node has either 0 or 2 children. false for nil.
func IsFull(n *Node) bool {
	if n == nil {
		return false
	}
	var full func(*Node) bool
	full = func(c *Node) bool {
		if c.Left == nil && c.Right == nil {
			return true
		} else if c.Left == nil || c.Right == nil {
			return false
		}
		return full(c.Left) && full(c.Right)
	}
	return full(n)
}

// minLeafDepth is the depth of the shallowest leaf below n, counted from n.
func minLeafDepth(n *Node) int {
	if n.Left == nil && n.Right == nil {
		return 0
	} else if n.Left == nil {
		return minLeafDepth(n.Right) + 1
	} else if n.Right == nil {
		return minLeafDepth(n.Left) + 1
	}
	return Min(minLeafDepth(n.Left), minLeafDepth(n.Right)) + 1
}

// IsPerfect reports whether the tree is full and all leaves are on the same level.
// false for nil.
func IsPerfect(n *Node) bool {
	return IsFull(n) && minLeafDepth(n) == height(n)
}

// Sibling of n, nil if n or its parent is nil, or if n is an only child.
func Sibling(n *Node) *Node {
	if n == nil || n.Parent == nil {
		return nil
	} else if n.Parent.Left == n {
		return n.Parent.Right
	}
	return n.Parent.Left
}

// Uncle of n, which is the sibling of its parent.
func Uncle(n *Node) *Node {
	if n == nil {
		return nil
	}
	return Sibling(n.Parent)
}

// Ancestor returns the lowest common ancestor of a and b, nil if they aren't in
// the same tree. A node is its own ancestor.
// Time: O(D); Space: O(1)
func Ancestor(a, b *Node) *Node {
	if a == nil || b == nil {
		return nil
	}
	da, db := Depth(a), Depth(b)
	for ; da > db; da-- {
		a = a.Parent
	}
	for ; db > da; db-- {
		b = b.Parent
	}
	for a != b {
		a, b = a.Parent, b.Parent
	}
	return a
}
