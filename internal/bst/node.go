// Package bst implements an unbalanced binary search tree of integers.
//
// The package-level functions operate on a *Node root and return the new
// root, so an empty tree is simply a nil *Node:
//
//	var root *bst.Node
//	for _, v := range []int{4, 2, 6, 1, 3, 5, 7} {
//		root = bst.Insert(root, v)
//	}
//	root = bst.Remove(root, 2)
//	fmt.Println(bst.InOrder(root)) // [1 3 4 5 6 7]
//
// Ordering invariant: every value in a node's left subtree is strictly less
// than the node's value, and every value in its right subtree is greater than
// or equal to it. Equal values are therefore always routed right.
//
// No rebalancing is performed. Depth degrades to O(n) on sorted input.
package bst

import "iter"

// Node is a single tree element. Each node exclusively owns its two subtrees.
type Node struct {
	Value int
	Left  *Node
	Right *Node
}

// Insert adds value below root and returns the root of the resulting tree.
// A nil root yields a new single-node tree.
func Insert(root *Node, value int) *Node {
	if root == nil {
		return &Node{Value: value}
	}
	if value < root.Value {
		root.Left = Insert(root.Left, value)
	} else {
		root.Right = Insert(root.Right, value)
	}
	return root
}

// Find reports whether value is present in the tree rooted at root.
func Find(root *Node, value int) bool {
	if root == nil {
		return false
	}
	if root.Value == value {
		return true
	}
	if value < root.Value {
		return Find(root.Left, value)
	}
	return Find(root.Right, value)
}

// FindMin returns the leftmost node, or nil for an empty tree.
func FindMin(root *Node) *Node {
	if root == nil {
		return nil
	}
	for root.Left != nil {
		root = root.Left
	}
	return root
}

// Remove deletes one occurrence of value and returns the new root.
// Removing a value that is not present leaves the tree untouched.
func Remove(root *Node, value int) *Node {
	root, _ = remove(root, value)
	return root
}

// remove detaches exactly one node holding value, if any. A node with two
// children takes its in-order successor's value, and the successor is then
// removed from the right subtree instead.
func remove(root *Node, value int) (*Node, bool) {
	if root == nil {
		return nil, false
	}

	var removed bool
	switch {
	case value < root.Value:
		root.Left, removed = remove(root.Left, value)
	case value > root.Value:
		root.Right, removed = remove(root.Right, value)
	default:
		if root.Left == nil {
			child := root.Right
			root.Right = nil
			return child, true
		}
		if root.Right == nil {
			child := root.Left
			root.Left = nil
			return child, true
		}

		successor := FindMin(root.Right)
		root.Value = successor.Value
		root.Right, removed = remove(root.Right, successor.Value)
	}
	return root, removed
}

// Destroy tears the tree down in post-order, detaching every node from its
// parent, and returns the number of nodes released. The caller must drop its
// root reference afterwards.
func Destroy(root *Node) int {
	if root == nil {
		return 0
	}
	released := Destroy(root.Left) + Destroy(root.Right)
	root.Left = nil
	root.Right = nil
	return released + 1
}

// InOrder collects the tree's values left, node, right. For a valid tree the
// result is sorted ascending.
func InOrder(root *Node) []int {
	values := make([]int, 0, Count(root))
	for v := range All(root) {
		values = append(values, v)
	}
	return values
}

// All returns an iterator over the tree's values in order. Iteration stops
// as soon as the consumer breaks out of the loop.
func All(root *Node) iter.Seq[int] {
	return func(yield func(int) bool) {
		walk(root, yield)
	}
}

func walk(n *Node, yield func(int) bool) bool {
	if n == nil {
		return true
	}
	return walk(n.Left, yield) && yield(n.Value) && walk(n.Right, yield)
}

// Count returns the number of nodes in the tree.
func Count(root *Node) int {
	if root == nil {
		return 0
	}
	return Count(root.Left) + Count(root.Right) + 1
}

// Height returns the number of nodes on the longest root-to-leaf path.
func Height(root *Node) int {
	if root == nil {
		return 0
	}
	return max(Height(root.Left), Height(root.Right)) + 1
}
