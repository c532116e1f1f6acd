package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nordicast/go-podplay/render"
)

// categoriesCmd represents the categories command
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the podcast category tree",
	Long: `Print the full category tree of the catalog. Top-level categories are
rendered as headings with their subcategories nested below them.`,
	RunE: runCategories,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	roots, err := client.Categories(ctx)
	if err != nil {
		return err
	}

	fmt.Print(render.CategoryTree(roots))
	return nil
}
