package bst

import "fmt"

// Side identifies which subtree of an ancestor a node was found in.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// InvariantError reports a node whose value breaks the ordering invariant
// relative to one of its ancestors.
type InvariantError struct {
	Value int
	Bound int
	Side  Side
}

// Error implements the error interface
func (e *InvariantError) Error() string {
	if e.Side == SideLeft {
		return fmt.Sprintf("value %d in left subtree is not less than ancestor %d", e.Value, e.Bound)
	}
	return fmt.Sprintf("value %d in right subtree is less than ancestor %d", e.Value, e.Bound)
}

// Validate checks the ordering invariant for the whole tree and returns an
// *InvariantError describing the first violation found in pre-order.
func Validate(root *Node) error {
	return validate(root, nil, nil)
}

// lo is an inclusive lower bound, hi an exclusive upper bound.
func validate(n *Node, lo, hi *int) error {
	if n == nil {
		return nil
	}
	if lo != nil && n.Value < *lo {
		return &InvariantError{Value: n.Value, Bound: *lo, Side: SideRight}
	}
	if hi != nil && n.Value >= *hi {
		return &InvariantError{Value: n.Value, Bound: *hi, Side: SideLeft}
	}
	if err := validate(n.Left, lo, &n.Value); err != nil {
		return err
	}
	return validate(n.Right, &n.Value, hi)
}
