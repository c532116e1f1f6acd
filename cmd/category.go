package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nordicast/go-podplay/render"
)

// categoryCmd represents the category command
var categoryCmd = &cobra.Command{
	Use:   "category <id>",
	Short: "List the top podcasts of a category",
	Long: `List the most popular podcasts of a category. Category ids can be
looked up with the categories command.`,
	Args: cobra.ExactArgs(1),
	RunE: runCategory,
}

func init() {
	rootCmd.AddCommand(categoryCmd)

	categoryCmd.Flags().BoolVar(&originalsOnly, "originals", false, "only list PodPlay originals")
}

func runCategory(cmd *cobra.Command, args []string) error {
	categoryID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid category id %q", args[0])
	}

	ctx := context.Background()

	podcasts, err := client.GetPodcastsByCategory(ctx, categoryID, originalsOnly)
	if err != nil {
		return err
	}

	if len(podcasts) == 0 {
		fmt.Println("No podcasts found in this category.")
		return nil
	}

	rows := make([][]string, 0, len(podcasts))
	for _, pod := range podcasts {
		rows = append(rows, []string{
			strconv.FormatInt(pod.ID, 10),
			pod.Title,
			fmt.Sprintf("%.1f", pod.Popularity),
		})
	}

	fmt.Print(render.Table("Podcasts", []string{"ID", "Title", "Popularity"}, rows))
	fmt.Println("\nShow details:  podplay podcast <id>")
	fmt.Println("List episodes: podplay episodes <id>")
	return nil
}
