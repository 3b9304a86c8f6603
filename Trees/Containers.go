package Trees

// base holds what BST and AVL have in common: lookups don't depend on how the
// tree is balanced.
type base struct {
	root *Node
	sz   uint
}

func (u *base) Root() *Node {
	return u.root
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *base) Size() uint {
	return u.sz
}

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *base) Has(v int) bool {
	return BSTSearch(u.root, v) != nil
}

func leftmost(n *Node) *Node {
	for n != nil && n.Left != nil {
		n = n.Left
	}
	return n
}

func rightmost(n *Node) *Node {
	for n != nil && n.Right != nil {
		n = n.Right
	}
	return n
}

// next node of n in in-order, found through the Parent links.
func next(n *Node) *Node {
	if n.Right != nil {
		return leftmost(n.Right)
	}
	for n.Parent != nil && n.Parent.Right == n {
		n = n.Parent
	}
	return n.Parent
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *base) Minimum() (int, bool) {
	if n := leftmost(u.root); n != nil {
		return n.V, true
	}
	return 0, false
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *base) Maximum() (int, bool) {
	if n := rightmost(u.root); n != nil {
		return n.V, true
	}
	return 0, false
}

// Predecessor [Tree.Predecessor]
// Time: O(D); Space: O(1)
func (u *base) Predecessor(v int) (int, bool) {
	var p *Node
	for cur := u.root; cur != nil; {
		if v <= cur.V {
			cur = cur.Left
		} else {
			p = cur
			cur = cur.Right
		}
	}
	if p == nil {
		return 0, false
	}
	return p.V, true
}

// Successor [Tree.Successor]
// Time: O(D); Space: O(1)
func (u *base) Successor(v int) (int, bool) {
	var p *Node
	for cur := u.root; cur != nil; {
		if v < cur.V {
			p = cur
			cur = cur.Left
		} else {
			cur = cur.Right
		}
	}
	if p == nil {
		return 0, false
	}
	return p.V, true
}

// InOrder [Tree.InOrder]
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *base) InOrder() func() (int, bool) {
	cur := leftmost(u.root)
	return func() (r int, has bool) {
		if cur == nil {
			return
		}
		r, has = cur.V, true
		cur = next(cur)
		return
	}
}

// linked checks what every container here must satisfy apart from its ordering.
func linked(root *Node, sz uint) bool {
	return (root == nil || root.Parent == nil) && ParentLinked(root) && Size(root) == sz
}

// BST is a binary search tree with no repeated values and no balancing. The
// height D of the tree can be O(n) for adversarial insertion orders.
type BST struct {
	base
}

// MakeBST returns an empty BST.
func MakeBST() *BST {
	return &BST{}
}

// Insert [Tree.Insert]
// Time: O(D)
func (u *BST) Insert(v int) bool {
	if BSTInsert(&u.root, v) == nil {
		return false
	}
	u.sz++
	return true
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D)
func (u *BST) Remove(v int) bool {
	if !remove(&u.root, v, nil) {
		return false
	}
	u.sz--
	return true
}

// Corrupt [Tree.Corrupt]
// Time: O(n)
func (u *BST) Corrupt() bool {
	return !linked(u.root, u.sz) || (u.root != nil && !IsBST(u.root))
}

// AVL is a binary search tree with no repeated values, balanced through rotations
// so that the heights of the two subtrees of any node differ by at most one. The
// height D of the tree is less than 1.44*log2(n+2).
// Heights aren't stored in the nodes, they are computed when needed.
type AVL struct {
	base
}

// MakeAVL returns an empty AVL.
func MakeAVL() *AVL {
	return &AVL{}
}

// BuildAVL builds an AVL using the given sorted slice, see SortedArrayToAVL for the
// meaning of safe. This is faster than repeatedly calling Insert.
// Time: O(n).
func BuildAVL(sli []int, safe bool) *AVL {
	return &AVL{base{SortedArrayToAVL(sli, safe), uint(len(sli))}}
}

// Insert [Tree.Insert]
// Time: O(D^2)
func (u *AVL) Insert(v int) bool {
	if AVLInsert(&u.root, v) == nil {
		return false
	}
	u.sz++
	return true
}

// Remove [Tree.Remove]. Recursive.
// Time: O(D^2)
func (u *AVL) Remove(v int) bool {
	if !remove(&u.root, v, fixRemove) {
		return false
	}
	u.sz--
	return true
}

// Corrupt [Tree.Corrupt]
// Time: O(n)
func (u *AVL) Corrupt() bool {
	return !linked(u.root, u.sz) || (u.root != nil && !IsAVL(u.root))
}

// MaxHeap is a binary max heap of linked nodes, allowing repeated values. Unlike
// HeapExtract, Pop can tell an empty heap from a stored 0.
type MaxHeap struct {
	root *Node
	sz   uint
}

// MakeMaxHeap returns an empty MaxHeap.
func MakeMaxHeap() *MaxHeap {
	return &MaxHeap{}
}

func (u *MaxHeap) Root() *Node {
	return u.root
}

func (u *MaxHeap) Size() uint {
	return u.sz
}

func (u *MaxHeap) Empty() bool {
	return u.sz == 0
}

// Push v to the heap. Returns the node holding v, it stays valid until v is popped.
// Time: O(D)
func (u *MaxHeap) Push(v int) *Node {
	n := heapInsert(&u.root, v, u.sz)
	u.sz++
	return n
}

// Pop the largest element.
// Time: O(D)
func (u *MaxHeap) Pop() (int, bool) {
	if u.sz == 0 {
		return 0, false
	}
	v := heapExtract(&u.root, u.sz)
	u.sz--
	return v, true
}

// Peek the largest element.
// Time: O(1)
func (u *MaxHeap) Peek() (int, bool) {
	if u.root == nil {
		return 0, false
	}
	return u.root.V, true
}

// Corrupt returns whether the heap isn't complete, some node is larger than its
// parent, or the links are broken.
// Time: O(n)
func (u *MaxHeap) Corrupt() bool {
	return !linked(u.root, u.sz) || (u.root != nil && !IsHeap(u.root))
}
