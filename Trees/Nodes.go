package Trees

// Node is the single node type shared by every tree and heap in this package.
// Left and Right are owned by the node; Parent is only a back reference and is
// kept equal to the structural parent by every exported mutation.
// The zero value is a valid single node holding 0.
type Node struct {
	V                   int
	Parent, Left, Right *Node
}

// NewNode returns a node holding v whose Parent is parent. The node is not linked
// into parent; that is left to the caller.
func NewNode(parent *Node, v int) *Node {
	return &Node{V: v, Parent: parent}
}

// detach clears all links of n so that stale references held by callers can't
// reach back into the structure n was removed from.
func (n *Node) detach() {
	n.Parent, n.Left, n.Right = nil, nil, nil
}

// link returns the slot that holds n: the child field of its parent, or tree if n
// is the root.
func link(tree **Node, n *Node) **Node {
	if p := n.Parent; p == nil {
		return tree
	} else if p.Left == n {
		return &p.Left
	} else {
		return &p.Right
	}
}

// InsertLeft creates a node holding v as the left child of parent. An existing left
// child becomes the left child of the new node.
// Returns nil if parent is nil.
func InsertLeft(parent *Node, v int) *Node {
	if parent == nil {
		return nil
	}
	n := NewNode(parent, v)
	if n.Left = parent.Left; n.Left != nil {
		n.Left.Parent = n
	}
	parent.Left = n
	return n
}

// InsertRight is the mirror of InsertLeft.
func InsertRight(parent *Node, v int) *Node {
	if parent == nil {
		return nil
	}
	n := NewNode(parent, v)
	if n.Right = parent.Right; n.Right != nil {
		n.Right.Parent = n
	}
	parent.Right = n
	return n
}

// Delete detaches every node of the tree rooted at root. Post-order, recursive.
func Delete(root *Node) {
	if root == nil {
		return
	}
	Delete(root.Left)
	Delete(root.Right)
	root.detach()
}

// RotateLeft performs a left rotation on the subtree rooted at n and returns the
// new subtree root, which was n.Right. The new root inherits n.Parent, but the
// child field of that parent is left for the caller to relink.
// Returns nil and changes nothing if n or n.Right is nil.
// Time: O(1); Space: O(1)
func RotateLeft(n *Node) *Node {
	if n == nil || n.Right == nil {
		return nil
	}
	rc := n.Right
	if n.Right = rc.Left; n.Right != nil {
		n.Right.Parent = n
	}
	rc.Parent = n.Parent
	rc.Left = n
	n.Parent = rc
	return rc
}

// RotateRight is the mirror of RotateLeft, promoting n.Left.
// Time: O(1); Space: O(1)
func RotateRight(n *Node) *Node {
	if n == nil || n.Left == nil {
		return nil
	}
	lc := n.Left
	if n.Left = lc.Right; n.Left != nil {
		n.Left.Parent = n
	}
	lc.Parent = n.Parent
	lc.Right = n
	n.Parent = lc
	return lc
}

// rotateLeftAt rotates the subtree held by slot n and stores the new subtree root
// back into the slot. n is passed by reference in order to modify its content.
func rotateLeftAt(n **Node) {
	*n = RotateLeft(*n)
}

// rotateRightAt is the mirror of rotateLeftAt.
func rotateRightAt(n **Node) {
	*n = RotateRight(*n)
}
