package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nordicast/go-podplay/filter"
	"github.com/nordicast/go-podplay/render"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <term>...",
	Short: "Search the catalog for podcasts",
	Long: `Search the catalog for podcasts matching a term. Results can be
narrowed with a filter expression, for example:

  podplay search crime --filter 'Original && Popularity > 50'
  podplay search news --filter 'hasCategory(226)'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	searchCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runSearch(cmd *cobra.Command, args []string) error {
	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	match, err := filter.ParsePodcastFilter(expression)
	if err != nil {
		return fmt.Errorf("invalid filter expression: %w", err)
	}

	ctx := context.Background()

	term := strings.Join(args, " ")
	podcasts, err := client.SearchPodcast(ctx, term)
	if err != nil {
		return err
	}

	var shown int
	for _, pod := range podcasts {
		if !match(pod) {
			continue
		}
		fmt.Print(render.Detail(pod.Title, render.PodcastFields(pod)))
		shown++
	}

	if shown == 0 {
		fmt.Println("No podcasts found.")
	}
	return nil
}
