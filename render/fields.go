package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nordicast/go-podplay/podplay"
)

// FieldValue is one printable field of a record.
type FieldValue struct {
	Name  string
	Value string
}

// PodcastFields returns the printable fields of a podcast in display order.
// Absent optionals are skipped.
func PodcastFields(podcast *podplay.Podcast) []FieldValue {
	fields := []FieldValue{
		{Name: "ID", Value: strconv.FormatInt(podcast.ID, 10)},
		{Name: "Title", Value: podcast.Title},
		{Name: "Author", Value: podcast.Author},
	}

	if podcast.Type != "" {
		fields = append(fields, FieldValue{Name: "Type", Value: string(podcast.Type)})
	}
	fields = append(fields,
		FieldValue{Name: "Original", Value: yesNo(podcast.Original)},
		FieldValue{Name: "Language", Value: podcast.LanguageISO},
		FieldValue{Name: "Popularity", Value: fmt.Sprintf("%.1f", podcast.Popularity)},
	)

	if len(podcast.Category) > 0 {
		names := make([]string, 0, len(podcast.Category))
		for _, category := range podcast.Category {
			names = append(names, category.Name)
		}
		fields = append(fields, FieldValue{Name: "Categories", Value: strings.Join(names, ", ")})
	} else if len(podcast.CategoryID) > 0 {
		ids := make([]string, 0, len(podcast.CategoryID))
		for _, id := range podcast.CategoryID {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		fields = append(fields, FieldValue{Name: "Categories", Value: strings.Join(ids, ", ")})
	}

	if podcast.Seasonal != nil && *podcast.Seasonal {
		fields = append(fields, FieldValue{Name: "Seasonal", Value: "yes"})
	}
	if podcast.Slug != nil {
		fields = append(fields, FieldValue{Name: "Slug", Value: *podcast.Slug})
	}
	if podcast.Link != nil {
		fields = append(fields, FieldValue{Name: "Link", Value: *podcast.Link})
	}
	if podcast.RSS != nil {
		fields = append(fields, FieldValue{Name: "RSS", Value: *podcast.RSS})
	}
	if podcast.Image != "" {
		fields = append(fields, FieldValue{Name: "Image", Value: podplay.BuildImageURL(podcast.Image, podplay.ImageParams{})})
	}
	if podcast.Description != "" {
		fields = append(fields, FieldValue{Name: "Description", Value: podcast.Description})
	}

	return fields
}

// EpisodeFields returns the printable fields of an episode in display order.
// Absent optionals are skipped.
func EpisodeFields(episode *podplay.Episode) []FieldValue {
	fields := []FieldValue{
		{Name: "ID", Value: strconv.FormatInt(episode.ID, 10)},
		{Name: "Title", Value: episode.Title},
		{Name: "Podcast", Value: strconv.FormatInt(episode.PodcastID, 10)},
	}

	if episode.SeasonNumber != nil {
		fields = append(fields, FieldValue{Name: "Season", Value: strconv.FormatInt(*episode.SeasonNumber, 10)})
	}
	if episode.EpisodeNumber != nil {
		fields = append(fields, FieldValue{Name: "Episode", Value: strconv.FormatInt(*episode.EpisodeNumber, 10)})
	}

	fields = append(fields,
		FieldValue{Name: "Type", Value: string(episode.Type)},
		FieldValue{Name: "Published", Value: episode.Published.Format("2006-01-02")},
	)

	if episode.Duration != nil {
		fields = append(fields, FieldValue{Name: "Duration", Value: Duration(*episode.Duration)})
	}
	if episode.Exclusive {
		fields = append(fields, FieldValue{Name: "Exclusive", Value: "yes"})
	}

	fields = append(fields,
		FieldValue{Name: "MIME", Value: episode.MimeType},
		FieldValue{Name: "URL", Value: episode.URL},
	)

	if episode.Slug != "" {
		fields = append(fields, FieldValue{Name: "Slug", Value: episode.Slug})
	}
	if episode.Description != "" {
		fields = append(fields, FieldValue{Name: "Description", Value: episode.Description})
	}

	return fields
}

// CategoryFields returns the printable fields of a category.
func CategoryFields(category *podplay.Category) []FieldValue {
	fields := []FieldValue{
		{Name: "ID", Value: strconv.FormatInt(category.ID, 10)},
		{Name: "Name", Value: category.Name},
	}
	if category.ParentID != nil {
		fields = append(fields, FieldValue{Name: "Parent", Value: strconv.FormatInt(*category.ParentID, 10)})
	}
	if len(category.Children) > 0 {
		fields = append(fields, FieldValue{Name: "Children", Value: strconv.Itoa(len(category.Children))})
	}
	return fields
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
