package Trees

// BSTInsert inserts v into the binary search tree held by tree and returns the new
// node. An empty tree (*tree == nil) gets the new node as its root.
// Returns nil and leaves the tree untouched if tree is nil or v is already present.
// Time: O(D); Space: O(1)
func BSTInsert(tree **Node, v int) *Node {
	if tree == nil {
		return nil
	}
	curPtr, p := tree, (*Node)(nil)
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if v < cur.V {
			curPtr = &cur.Left
		} else if v == cur.V {
			return nil
		} else {
			curPtr = &cur.Right
		}
		p = cur
	}
	*curPtr = NewNode(p, v)
	return *curPtr
}

// BSTSearch returns the node holding v, or nil if there is none.
// Time: O(D); Space: O(1)
func BSTSearch(root *Node, v int) *Node {
	for cur := root; cur != nil; {
		if v < cur.V {
			cur = cur.Left
		} else if v == cur.V {
			return cur
		} else {
			cur = cur.Right
		}
	}
	return nil
}

// BSTRemove removes v from the binary search tree rooted at root and returns the
// possibly new root. The tree is unchanged if v isn't present. Recursive.
// Time: O(D)
func BSTRemove(root *Node, v int) *Node {
	remove(&root, v, nil)
	return root
}

// remove v from the subtree held by curPtr recursively. cur is passed by reference.
// Returns false if v doesn't exist in the subtree, otherwise true. When fix isn't
// nil, it's called on every slot along the path back up after a removal.
// A node with two children takes the value of its in-order successor, the
// successor node itself is then removed from the right subtree.
func remove(curPtr **Node, v int, fix func(**Node)) bool {
	cur := *curPtr
	if cur == nil {
		return false
	}
	removed := false
	if v < cur.V {
		removed = remove(&cur.Left, v, fix)
	} else if v > cur.V {
		removed = remove(&cur.Right, v, fix)
	} else if cur.Left == nil || cur.Right == nil {
		c := cur.Left
		if c == nil {
			c = cur.Right
		}
		if c != nil {
			c.Parent = cur.Parent
		}
		*curPtr = c
		cur.detach()
		return true
	} else {
		succ := cur.Right
		for succ.Left != nil {
			succ = succ.Left
		}
		cur.V = succ.V
		removed = remove(&cur.Right, succ.V, fix)
	}
	if removed && fix != nil {
		fix(curPtr)
	}
	return removed
}

// ArrayToBST builds a binary search tree by inserting the elements of sli in order.
// Repeated elements are skipped. Returns nil for an empty slice.
func ArrayToBST(sli []int) *Node {
	var root *Node
	for _, v := range sli {
		BSTInsert(&root, v)
	}
	return root
}
