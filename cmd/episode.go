package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nordicast/go-podplay/podplay"
	"github.com/nordicast/go-podplay/render"
)

// episodeCmd represents the episode command
var episodeCmd = &cobra.Command{
	Use:   "episode <id>...",
	Short: "Show details for one or more episodes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEpisode,
}

func init() {
	rootCmd.AddCommand(episodeCmd)
}

func runEpisode(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var episodes []*podplay.Episode
	if len(ids) == 1 {
		ep, err := client.GetEpisode(ctx, ids[0])
		if err != nil {
			return err
		}
		episodes = append(episodes, ep)
	} else {
		episodes, err = client.GetEpisodes(ctx, ids)
		if err != nil {
			return err
		}
	}

	if len(episodes) == 0 {
		fmt.Println("No episodes found.")
		return nil
	}

	for _, ep := range episodes {
		fmt.Print(render.Detail(ep.Title, render.EpisodeFields(ep)))
	}
	return nil
}
