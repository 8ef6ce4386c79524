package bst

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(values ...int) *Node {
	var root *Node
	for _, v := range values {
		root = Insert(root, v)
	}
	return root
}

func clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	return &Node{Value: n.Value, Left: clone(n.Left), Right: clone(n.Right)}
}

func TestInsertBuildsOrderedTree(t *testing.T) {
	root := build(4, 2, 6, 1, 3, 5, 7)

	require.NotNil(t, root)
	assert.Equal(t, 4, root.Value)
	assert.Equal(t, 2, root.Left.Value)
	assert.Equal(t, 6, root.Right.Value)
	assert.Equal(t, 1, root.Left.Left.Value)
	assert.Equal(t, 3, root.Left.Right.Value)
	assert.Equal(t, 5, root.Right.Left.Value)
	assert.Equal(t, 7, root.Right.Right.Value)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, InOrder(root))
}

func TestInsertIntoEmptyTree(t *testing.T) {
	root := Insert(nil, 42)

	require.NotNil(t, root)
	assert.Equal(t, 42, root.Value)
	assert.Nil(t, root.Left)
	assert.Nil(t, root.Right)
}

func TestInsertReturnsSameRoot(t *testing.T) {
	root := build(10)
	assert.Same(t, root, Insert(root, 5))
	assert.Same(t, root, Insert(root, 15))
}

func TestInsertDuplicatesGoRight(t *testing.T) {
	root := build(5, 5, 5)

	assert.Nil(t, root.Left)
	require.NotNil(t, root.Right)
	assert.Equal(t, 5, root.Right.Value)
	require.NotNil(t, root.Right.Right)
	assert.Equal(t, []int{5, 5, 5}, InOrder(root))
	assert.NoError(t, Validate(root))
}

func TestFind(t *testing.T) {
	root := build(4, 2, 6, 1, 3, 5, 7)

	testCases := []struct {
		value    int
		expected bool
	}{
		{5, true},
		{8, false},
		{1, true},
		{7, true},
		{4, true},
		{0, false},
		{-3, false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("find_%d", tc.value), func(t *testing.T) {
			assert.Equal(t, tc.expected, Find(root, tc.value), "Find(%d)", tc.value)
		})
	}

	assert.False(t, Find(nil, 1))
}

func TestFindMin(t *testing.T) {
	assert.Nil(t, FindMin(nil))

	root := build(4, 2, 6, 1, 3)
	minNode := FindMin(root)
	require.NotNil(t, minNode)
	assert.Equal(t, 1, minNode.Value)

	assert.Equal(t, 6, FindMin(root.Right).Value)
}

func TestRemoveTwoChildNodeUsesSuccessor(t *testing.T) {
	root := build(4, 2, 6, 1, 3, 5, 7)
	two := root.Left

	root = Remove(root, 2)

	assert.Equal(t, []int{1, 3, 4, 5, 6, 7}, InOrder(root))
	// The node keeps its position and takes the successor's value.
	assert.Same(t, two, root.Left)
	assert.Equal(t, 3, two.Value)
	assert.Equal(t, 1, two.Left.Value)
	assert.Nil(t, two.Right)
}

func TestRemoveRootWithTwoChildren(t *testing.T) {
	root := build(4, 2, 6, 1, 3, 5, 7)

	root = Remove(root, 4)

	assert.Equal(t, 5, root.Value)
	assert.Equal(t, []int{1, 2, 3, 5, 6, 7}, InOrder(root))
	assert.Nil(t, root.Right.Left)
	assert.NoError(t, Validate(root))
}

func TestRemoveLeafAndSingleChild(t *testing.T) {
	testCases := []struct {
		name     string
		values   []int
		remove   int
		expected []int
	}{
		{"leaf", []int{4, 2, 6}, 6, []int{2, 4}},
		{"only left child", []int{4, 2, 1}, 2, []int{1, 4}},
		{"only right child", []int{4, 6, 7}, 6, []int{4, 7}},
		{"root with right child", []int{4, 6}, 4, []int{6}},
		{"root with left child", []int{4, 2}, 4, []int{2}},
		{"single node", []int{4}, 4, []int{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := Remove(build(tc.values...), tc.remove)
			assert.Equal(t, tc.expected, InOrder(root))
			assert.NoError(t, Validate(root))
		})
	}
}

func TestRemoveSingleChildPromotesChild(t *testing.T) {
	root := build(4, 6, 7)
	seven := root.Right.Right

	root = Remove(root, 6)

	assert.Same(t, seven, root.Right)
}

func TestRemoveAbsentValueIsNoop(t *testing.T) {
	root := build(4, 2, 6, 1, 3, 5, 7)
	before := clone(root)

	after := Remove(root, 8)

	assert.Same(t, root, after)
	assert.Equal(t, before, after)
	assert.Nil(t, Remove(nil, 1))
}

func TestRemoveOneDuplicateAtATime(t *testing.T) {
	root := build(5, 3, 5, 8, 5)

	root = Remove(root, 5)
	assert.Equal(t, []int{3, 5, 5, 8}, InOrder(root))
	assert.NoError(t, Validate(root))

	root = Remove(root, 5)
	assert.Equal(t, []int{3, 5, 8}, InOrder(root))

	root = Remove(root, 5)
	assert.Equal(t, []int{3, 8}, InOrder(root))
	assert.False(t, Find(root, 5))
}

func TestDestroy(t *testing.T) {
	root := build(4, 2, 6, 1, 3, 5, 7)
	left, right := root.Left, root.Right

	assert.Equal(t, 7, Destroy(root))
	assert.Nil(t, root.Left)
	assert.Nil(t, root.Right)
	assert.Nil(t, left.Left)
	assert.Nil(t, right.Right)

	assert.Equal(t, 0, Destroy(nil))
}

func TestDestroyThenRebuild(t *testing.T) {
	values := []int{9, 3, 14, 3, 1, 20, 11}
	root := build(values...)
	first := InOrder(root)

	Destroy(root)
	root = build(values...)

	assert.Equal(t, first, InOrder(root))
}

func TestAllStopsEarly(t *testing.T) {
	root := build(4, 2, 6, 1, 3, 5, 7)

	var got []int
	for v := range All(root) {
		if len(got) == 3 {
			break
		}
		got = append(got, v)
	}

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestAllOnEmptyTree(t *testing.T) {
	for range All(nil) {
		t.Fatal("empty tree must not yield")
	}
	assert.Empty(t, InOrder(nil))
}

func TestCountAndHeight(t *testing.T) {
	assert.Equal(t, 0, Count(nil))
	assert.Equal(t, 0, Height(nil))

	balanced := build(4, 2, 6, 1, 3, 5, 7)
	assert.Equal(t, 7, Count(balanced))
	assert.Equal(t, 3, Height(balanced))

	// Sorted input degrades to a list.
	chain := build(1, 2, 3, 4, 5)
	assert.Equal(t, 5, Height(chain))
}
