// Package render turns a binary search tree into console output. Traversal
// lives in the bst package; this package only formats what it is given.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pterm/pterm"
	"gopkg.in/yaml.v3"

	"github.com/conneroisu/bintree/internal/bst"
)

// Format names accepted by Render
const (
	FormatText = "text"
	FormatTree = "tree"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Formats returns the supported output formats
func Formats() []string {
	return []string{FormatText, FormatTree, FormatJSON, FormatYAML}
}

// IsFormat reports whether name is a supported format
func IsFormat(name string) bool {
	for _, f := range Formats() {
		if f == name {
			return true
		}
	}
	return false
}

// Snapshot is a serializable copy of a subtree
type Snapshot struct {
	Value int       `json:"value" yaml:"value"`
	Left  *Snapshot `json:"left,omitempty" yaml:"left,omitempty"`
	Right *Snapshot `json:"right,omitempty" yaml:"right,omitempty"`
}

// Document is the structured form written by the json and yaml formats
type Document struct {
	Size   int       `json:"size" yaml:"size"`
	Height int       `json:"height" yaml:"height"`
	Values []int     `json:"values" yaml:"values,flow"`
	Root   *Snapshot `json:"root" yaml:"root"`
}

// Snap copies the tree rooted at root into a Snapshot
func Snap(root *bst.Node) *Snapshot {
	if root == nil {
		return nil
	}
	return &Snapshot{
		Value: root.Value,
		Left:  Snap(root.Left),
		Right: Snap(root.Right),
	}
}

// NewDocument builds the structured view of a tree
func NewDocument(root *bst.Node) *Document {
	return &Document{
		Size:   bst.Count(root),
		Height: bst.Height(root),
		Values: bst.InOrder(root),
		Root:   Snap(root),
	}
}

// Render writes the tree rooted at root to w in the given format
func Render(w io.Writer, root *bst.Node, format string) error {
	switch format {
	case FormatText:
		_, err := fmt.Fprintln(w, Values(bst.InOrder(root)))
		return err
	case FormatTree:
		return renderTree(w, root)
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(NewDocument(root))
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(NewDocument(root)); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported format: %s (supported: %s)", format, strings.Join(Formats(), ", "))
	}
}

// Values joins values with single spaces, the way the traversal is printed
func Values(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func renderTree(w io.Writer, root *bst.Node) error {
	if root == nil {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}

	out, err := pterm.DefaultTree.WithRoot(treeNode("", root)).Srender()
	if err != nil {
		return fmt.Errorf("failed to draw tree: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// treeNode labels children with L or R since a lone child's side matters
func treeNode(label string, n *bst.Node) pterm.TreeNode {
	node := pterm.TreeNode{Text: label + strconv.Itoa(n.Value)}
	if n.Left != nil {
		node.Children = append(node.Children, treeNode("L ", n.Left))
	}
	if n.Right != nil {
		node.Children = append(node.Children, treeNode("R ", n.Right))
	}
	return node
}
