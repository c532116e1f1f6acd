package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nordicast/go-podplay/filter"
	"github.com/nordicast/go-podplay/render"
)

// episodesCmd represents the episodes command
var episodesCmd = &cobra.Command{
	Use:   "episodes <podcast-id>",
	Short: "List the episodes of a podcast",
	Long: `List the episodes of a podcast, newest first. The list can be narrowed
with a filter expression, for example:

  podplay episodes 31428 --filter 'Duration > minutes(30)'
  podplay episodes 31428 --filter '!isTrailer() && daysSince(Published) < 90'`,
	Args: cobra.ExactArgs(1),
	RunE: runEpisodes,
}

func init() {
	rootCmd.AddCommand(episodesCmd)

	episodesCmd.Flags().IntVar(&pages, "pages", 0, "maximum number of pages to fetch (default 99)")
	episodesCmd.Flags().IntVar(&perPage, "per-page", 0, "episodes per page (default 50)")
	episodesCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	episodesCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
}

func runEpisodes(cmd *cobra.Command, args []string) error {
	podcastID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid podcast id %q", args[0])
	}

	expression, err := getFilterExpression()
	if err != nil {
		return err
	}

	match, err := filter.ParseEpisodeFilter(expression)
	if err != nil {
		return fmt.Errorf("invalid filter expression: %w", err)
	}

	ctx := context.Background()

	episodes, err := client.GetPodcastEpisodes(ctx, podcastID, pages, perPage)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(episodes))
	for _, ep := range episodes {
		if !match(ep) {
			continue
		}
		duration := ""
		if ep.Duration != nil {
			duration = render.Duration(*ep.Duration)
		}
		rows = append(rows, []string{
			strconv.FormatInt(ep.ID, 10),
			ep.Title,
			ep.Published.Format("2006-01-02"),
			duration,
			string(ep.Type),
		})
	}

	if len(rows) == 0 {
		fmt.Println("No episodes found.")
		return nil
	}

	fmt.Print(render.Table("Episodes", []string{"ID", "Title", "Published", "Duration", "Type"}, rows))
	return nil
}
