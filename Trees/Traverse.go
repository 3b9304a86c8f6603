package Trees

import "github.com/g-m-twostay/bintrees/Queues"

// PreOrder calls f on every value of the tree in pre-order. Recursive.
func PreOrder(n *Node, f func(int)) {
	if n == nil || f == nil {
		return
	}
	f(n.V)
	PreOrder(n.Left, f)
	PreOrder(n.Right, f)
}

// InOrder calls f on every value of the tree in in-order. Recursive.
func InOrder(n *Node, f func(int)) {
	if n == nil || f == nil {
		return
	}
	InOrder(n.Left, f)
	f(n.V)
	InOrder(n.Right, f)
}

// PostOrder calls f on every value of the tree in post-order. Recursive.
func PostOrder(n *Node, f func(int)) {
	if n == nil || f == nil {
		return
	}
	PostOrder(n.Left, f)
	PostOrder(n.Right, f)
	f(n.V)
}

// levelOrder calls f on every node in level order until f returns false.
func levelOrder(root *Node, f func(*Node) bool) {
	if root == nil {
		return
	}
	q := Queues.MakeArrayQueue[*Node](Height(root) + 1)
	for q.Push(root); !q.Empty(); {
		n, _ := q.Pop()
		if !f(n) {
			return
		}
		if n.Left != nil {
			q.Push(n.Left)
		}
		if n.Right != nil {
			q.Push(n.Right)
		}
	}
}

// LevelOrder calls f on every value of the tree level by level, left to right.
func LevelOrder(root *Node, f func(int)) {
	if f == nil {
		return
	}
	levelOrder(root, func(n *Node) bool {
		f(n.V)
		return true
	})
}

// IsComplete reports whether every level is full except possibly the last one,
// which is filled from the left. false for nil.
func IsComplete(root *Node) bool {
	if root == nil {
		return false
	}
	gap, complete := false, true
	levelOrder(root, func(n *Node) bool {
		for _, c := range [2]*Node{n.Left, n.Right} {
			if c == nil {
				gap = true
			} else if gap {
				complete = false
				return false
			}
		}
		return true
	})
	return complete
}
