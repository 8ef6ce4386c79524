package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/conneroisu/bintree/internal/bst"
	"github.com/conneroisu/bintree/internal/render"
)

var demoCmd = &cobra.Command{
	Use:     "demo [values...]",
	Aliases: []string{"d"},
	Short:   "Replay the insert, find and remove walkthrough",
	Long: `Build a tree, print its in-order traversal, look values up, remove values
and print the traversal again, then tear the whole tree down.

The insertion order defaults to 4 2 6 1 3 5 7 and can be set through
positional arguments or tree.values in the config file. Lookups and removals
come from demo.find and demo.remove (defaults: find 5 and 8, remove 2).

Examples:
  bintree demo                       # Classic walkthrough
  bintree demo 50 30 70 20 40        # Custom insertion order
  bintree demo --find 30 --remove 30 # Custom lookups and removals`,
	RunE: runDemo,
}

var (
	demoFind   []int
	demoRemove []int
)

func init() {
	rootCmd.AddCommand(demoCmd)

	demoCmd.Flags().IntSliceVar(&demoFind, "find", nil, "Values to look up (overrides demo.find)")
	demoCmd.Flags().IntSliceVar(&demoRemove, "remove", nil, "Values to remove (overrides demo.remove)")
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	values, err := parseValues(args)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		values = cfg.Tree.Values
	}

	find := cfg.Demo.Find
	if cmd.Flags().Changed("find") {
		find = demoFind
	}
	remove := cfg.Demo.Remove
	if cmd.Flags().Changed("remove") {
		remove = demoRemove
	}

	released := walkthrough(cmd.OutOrStdout(), values, find, remove)

	cfg.Logger().WithComponent("demo").Debug(cmd.Context(), "Tree destroyed", "released", released)
	return nil
}

// walkthrough prints each stage of the demonstration and returns the number
// of nodes released by the final teardown
func walkthrough(w io.Writer, values, find, remove []int) int {
	var root *bst.Node

	fmt.Fprintf(w, "Inserting values: %s\n", render.Values(values))
	for _, v := range values {
		root = bst.Insert(root, v)
	}

	fmt.Fprintf(w, "Inorder traversal (sorted): %s\n", render.Values(bst.InOrder(root)))

	for _, v := range find {
		result := "Not found"
		if bst.Find(root, v) {
			result = "Found"
		}
		fmt.Fprintf(w, "Finding value %d: %s\n", v, result)
	}

	if len(remove) > 0 {
		for _, v := range remove {
			fmt.Fprintf(w, "Removing value %d\n", v)
			root = bst.Remove(root, v)
		}
		fmt.Fprintf(w, "Inorder traversal after removal: %s\n", render.Values(bst.InOrder(root)))
	}

	return bst.Destroy(root)
}
