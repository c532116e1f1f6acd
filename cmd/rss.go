package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/eduncan911/podcast"
	"github.com/spf13/cobra"

	"github.com/nordicast/go-podplay/podplay"
)

// rssCmd represents the rss command
var rssCmd = &cobra.Command{
	Use:   "rss <podcast-id>",
	Short: "Write an RSS feed for a podcast to stdout",
	Long: `Write an iTunes-compatible RSS feed for a podcast to stdout, built from
the podcast details and its episode list.`,
	Args: cobra.ExactArgs(1),
	RunE: runRSS,
}

func init() {
	rootCmd.AddCommand(rssCmd)

	rssCmd.Flags().IntVar(&pages, "pages", 0, "maximum number of pages to fetch (default 99)")
	rssCmd.Flags().IntVar(&perPage, "per-page", 0, "episodes per page (default 50)")
}

func runRSS(cmd *cobra.Command, args []string) error {
	podcastID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid podcast id %q", args[0])
	}

	ctx := context.Background()

	pod, err := client.GetPodcast(ctx, podcastID)
	if err != nil {
		return err
	}

	episodes, err := client.GetPodcastEpisodes(ctx, podcastID, pages, perPage)
	if err != nil {
		return err
	}

	feed, err := buildFeed(pod, episodes)
	if err != nil {
		return err
	}

	fmt.Print(feed)
	return nil
}

// buildFeed assembles the RSS document. Episodes are expected newest first,
// the way the API returns them.
func buildFeed(pod *podplay.Podcast, episodes []*podplay.Episode) (string, error) {
	now := time.Now()
	pubDate := now
	if len(episodes) > 0 {
		pubDate = episodes[0].Published.Time
	}

	link := ""
	if pod.Link != nil {
		link = *pod.Link
	} else if pod.RSS != nil {
		link = *pod.RSS
	}

	feed := podcast.New(pod.Title, link, pod.Description, &pubDate, &now)
	if pod.LanguageISO != "" {
		feed.Language = pod.LanguageISO
	}
	if pod.Author != "" {
		feed.IAuthor = pod.Author
	}
	if pod.Image != "" {
		feed.AddImage(podplay.BuildImageURL(pod.Image, podplay.ImageParams{}))
	}
	for _, category := range pod.Category {
		feed.AddCategory(category.Name, nil)
	}

	for _, ep := range episodes {
		description := ep.Description
		if description == "" {
			description = ep.Title
		}

		item := podcast.Item{
			Title:       ep.Title,
			Description: description,
			Link:        ep.URL,
		}
		published := ep.Published.Time
		item.PubDate = &published
		item.AddEnclosure(ep.URL, enclosureType(ep.MimeType), 0)
		if ep.Duration != nil {
			item.AddDuration(*ep.Duration)
		}

		if _, err := feed.AddItem(item); err != nil {
			return "", fmt.Errorf("episode %d: %w", ep.ID, err)
		}
	}

	return feed.String(), nil
}

// enclosureType maps an episode MIME type onto the feed enclosure types.
func enclosureType(mimeType string) podcast.EnclosureType {
	switch {
	case strings.Contains(mimeType, "m4a"), strings.Contains(mimeType, "audio/mp4"):
		return podcast.M4A
	case strings.Contains(mimeType, "video/mp4"):
		return podcast.MP4
	default:
		return podcast.MP3
	}
}
