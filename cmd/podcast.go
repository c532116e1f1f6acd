package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nordicast/go-podplay/podplay"
	"github.com/nordicast/go-podplay/render"
)

// podcastCmd represents the podcast command
var podcastCmd = &cobra.Command{
	Use:   "podcast <id>...",
	Short: "Show details for one or more podcasts",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPodcast,
}

func init() {
	rootCmd.AddCommand(podcastCmd)
}

func runPodcast(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var podcasts []*podplay.Podcast
	if len(ids) == 1 {
		pod, err := client.GetPodcast(ctx, ids[0])
		if err != nil {
			return err
		}
		podcasts = append(podcasts, pod)
	} else {
		podcasts, err = client.GetPodcasts(ctx, ids)
		if err != nil {
			return err
		}
	}

	if len(podcasts) == 0 {
		fmt.Println("No podcasts found.")
		return nil
	}

	for _, pod := range podcasts {
		fmt.Print(render.Detail(pod.Title, render.PodcastFields(pod)))
	}
	return nil
}

// parseIDs parses numeric command arguments.
func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
