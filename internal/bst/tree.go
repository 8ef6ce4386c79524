package bst

import (
	"iter"
	"sync"
)

// Tree owns a root node and keeps track of its size. It is not safe for
// concurrent use; see Locked.
type Tree struct {
	root *Node
	size int
}

// NewTree builds a tree by inserting values in the given order.
func NewTree(values ...int) *Tree {
	t := &Tree{}
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// Insert adds a value. Duplicates are kept and stored to the right.
func (t *Tree) Insert(value int) {
	t.root = Insert(t.root, value)
	t.size++
}

// Contains reports whether value is in the tree.
func (t *Tree) Contains(value int) bool {
	return Find(t.root, value)
}

// Remove deletes one occurrence of value and reports whether a node was removed.
func (t *Tree) Remove(value int) bool {
	var removed bool
	t.root, removed = remove(t.root, value)
	if removed {
		t.size--
	}
	return removed
}

// Min returns the smallest value, or false when the tree is empty.
func (t *Tree) Min() (int, bool) {
	n := FindMin(t.root)
	if n == nil {
		return 0, false
	}
	return n.Value, true
}

// Values returns the in-order traversal.
func (t *Tree) Values() []int {
	return InOrder(t.root)
}

// All iterates the values in order.
func (t *Tree) All() iter.Seq[int] {
	return All(t.root)
}

func (t *Tree) Len() int {
	return t.size
}

func (t *Tree) Height() int {
	return Height(t.root)
}

// Root exposes the underlying root node. Mutating it directly bypasses the
// size bookkeeping; use Check to detect a broken ordering.
func (t *Tree) Root() *Node {
	return t.root
}

// Check validates the ordering invariant.
func (t *Tree) Check() error {
	return Validate(t.root)
}

// Clear destroys every node and returns how many were released.
func (t *Tree) Clear() int {
	released := Destroy(t.root)
	t.root = nil
	t.size = 0
	return released
}

// Locked guards a Tree with a read/write mutex so it can be shared between
// goroutines. Mutations take the write lock for the whole operation.
type Locked struct {
	mutex sync.RWMutex
	tree  *Tree
}

// NewLocked wraps t. A nil t starts from an empty tree.
func NewLocked(t *Tree) *Locked {
	if t == nil {
		t = &Tree{}
	}
	return &Locked{tree: t}
}

func (l *Locked) Insert(value int) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.tree.Insert(value)
}

func (l *Locked) Remove(value int) bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.tree.Remove(value)
}

func (l *Locked) Clear() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.tree.Clear()
}

func (l *Locked) Contains(value int) bool {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.tree.Contains(value)
}

// Values returns a copy of the in-order traversal taken under the read lock.
func (l *Locked) Values() []int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.tree.Values()
}

func (l *Locked) Len() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return l.tree.Len()
}

// Do runs fn with exclusive access to the underlying tree. fn must not
// retain the tree or any of its nodes after it returns.
func (l *Locked) Do(fn func(t *Tree)) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	fn(l.tree)
}
