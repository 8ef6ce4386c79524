package cmd

import (
	"github.com/spf13/cobra"

	"github.com/conneroisu/bintree/internal/bst"
	"github.com/conneroisu/bintree/internal/render"
)

var showCmd = &cobra.Command{
	Use:     "show [values...]",
	Aliases: []string{"s"},
	Short:   "Build a tree and print it",
	Long: `Insert the given values in order and print the resulting tree.

Formats:
  text   in-order traversal on one line
  tree   the tree's shape, children marked L (left) and R (right)
  json   size, height, traversal and nested nodes
  yaml   same document as json

Examples:
  bintree show 8 3 10 1 6 -o tree     # Draw the shape
  bintree show 1,2,3,4 -o json        # Degenerate (list-shaped) tree as JSON
  bintree show 8 3 10 --remove 8      # Remove the root before printing`,
	RunE: runShow,
}

var (
	showFlags  *StandardFlags
	showRemove []int
)

func init() {
	rootCmd.AddCommand(showCmd)

	showFlags = AddStandardFlags(showCmd, "output")
	showCmd.Flags().IntSliceVarP(&showRemove, "remove", "r", nil, "Values to remove before printing")
}

func runShow(cmd *cobra.Command, args []string) error {
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

	tree := bst.NewTree(values...)
	for _, v := range showRemove {
		tree.Remove(v)
	}

	logger := cfg.Logger().WithComponent("show")
	logger.Debug(cmd.Context(), "Tree built",
		"size", tree.Len(),
		"height", tree.Height(),
	)

	return render.Render(cmd.OutOrStdout(), tree.Root(), showFlags.ResolveFormat(cfg.Output.Format))
}
