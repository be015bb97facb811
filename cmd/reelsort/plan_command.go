package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"reelsort/internal/plan"
	"reelsort/internal/selection"
)

func newPlanCommand(ctx *commandContext) *cobra.Command {
	var asTree bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Scan the source directories and show where files would go",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder, cfg, err := ctx.newBuilder()
			if err != nil {
				return err
			}
			if err := cfg.ValidateRoots(); err != nil {
				return err
			}

			items, warnings := builder.Build(cfg.Paths.SourceDirs, cfg.Paths.DestinationDir)
			out := cmd.OutOrStdout()

			if len(items) == 0 {
				fmt.Fprintln(out, "No video files found under the source directories.")
			} else if asTree {
				printTree(out, selection.Build(items))
			} else {
				printPlanTable(out, items, cfg.Paths.DestinationDir)
			}

			printWarnings(out, warnings)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asTree, "tree", false, "Show the plan grouped by show and season")
	return cmd
}

func printPlanTable(out io.Writer, items []plan.Item, destRoot string) {
	headers := []string{"#", "Type", "Size", "Source", "Destination"}
	rows := make([][]string, 0, len(items))
	for i, item := range items {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			item.Type.String(),
			humanize.Bytes(uint64(statSize(item.SourcePath))),
			filepath.Base(item.SourcePath),
			displayPath(item.DestPath, destRoot),
		})
	}
	fmt.Fprintln(out, renderTable(headers, rows, []columnAlignment{alignRight, alignLeft, alignRight, alignLeft, alignLeft}))
	fmt.Fprintf(out, "%d file(s) planned\n", len(items))
}

// printTree renders the selection hierarchy with checkbox markers so the
// output matches what apply's filters operate on.
func printTree(out io.Writer, tree *selection.Tree) {
	var render func(node *selection.Node, depth int)
	render = func(node *selection.Node, depth int) {
		fmt.Fprintf(out, "%s%s %s\n", strings.Repeat("  ", depth), checkbox(node.State()), node.Label)
		for _, child := range node.Children() {
			render(child, depth+1)
		}
	}
	for _, category := range tree.Categories() {
		render(category, 0)
	}
	fmt.Fprintf(out, "%d file(s) planned\n", tree.LeafCount())
}

func checkbox(state selection.State) string {
	switch state {
	case selection.Checked:
		return "[x]"
	case selection.Partial:
		return "[~]"
	default:
		return "[ ]"
	}
}

func printWarnings(out io.Writer, warnings []plan.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(out, "warning: %s\n", w)
	}
}

// displayPath shortens destination paths to be relative to the library root
// when possible.
func displayPath(path, root string) string {
	if rel, err := filepath.Rel(root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

func statSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
