package Trees

// Tree represents an ordered set of ints stored in linked Nodes.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x int, false bool), and x
// should not be used.
// Methods implemented recursively are noted, otherwise functions are
// implemented iteratively. No implementation is safe for concurrent use.
type Tree interface {
	//Insert v to the Tree. Returning true if successful, false if v is
	//already in the Tree.
	Insert(v int) bool
	//Remove v from the Tree. Returning true if successful, false if v isn't
	//in the Tree.
	Remove(v int) bool
	//Has element v.
	Has(v int) bool
	//Minimum element of the tree.
	Minimum() (int, bool)
	//Maximum element of the tree.
	Maximum() (int, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v int) (int, bool)
	//Successor returns the smallest element greater than v.
	Successor(v int) (int, bool)
	//Size of the tree.
	Size() uint
	//InOrder returns a closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (int, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//or the links at some node violate the properties of that specific
	//implementation.
	Corrupt() bool
	//Root of the underlying nodes. Modifying them directly can corrupt the tree.
	Root() *Node
}

var (
	_ Tree = (*BST)(nil)
	_ Tree = (*AVL)(nil)
)
