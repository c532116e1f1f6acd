package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordicast/go-podplay/podplay"
)

func int64Ptr(n int64) *int64 {
	return &n
}

func TestDuration(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{seconds: 0, want: "00s"},
		{seconds: 34, want: "34s"},
		{seconds: 59, want: "59s"},
		{seconds: 60, want: "01m00s"},
		{seconds: 1834, want: "30m34s"},
		{seconds: 3600, want: "01h00s"},
		{seconds: 3661, want: "01h01m01s"},
		{seconds: 7323, want: "02h02m03s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Duration(tt.seconds))
		})
	}
}

func TestCategoryTree(t *testing.T) {
	forest := []*podplay.Category{
		{
			ID:   1,
			Name: "True Crime",
			Children: []*podplay.Category{
				{
					ID:   11,
					Name: "Cold Cases",
					Children: []*podplay.Category{
						{ID: 111, Name: "Unsolved"},
					},
				},
				{ID: 12, Name: "Forensics"},
			},
		},
		{
			ID:   2,
			Name: "Comedy",
			Children: []*podplay.Category{
				{ID: 21, Name: "Stand-up"},
			},
		},
	}

	want := "# True Crime (1)\n" +
		"├── Cold Cases (11)\n" +
		"│   └── Unsolved (111)\n" +
		"└── Forensics (12)\n" +
		"# Comedy (2)\n" +
		"└── Stand-up (21)\n"

	assert.Equal(t, want, CategoryTree(forest))
}

func TestTable(t *testing.T) {
	t.Run("renders header and rows", func(t *testing.T) {
		out := Table("Podcasts", []string{"id", "title", "popularity"}, [][]string{
			{"10", "Crime Stories", "87.5"},
			{"20", "Laugh Track", "61.2"},
		})

		assert.Contains(t, out, "Podcasts (2):")
		assert.Contains(t, out, "id")
		assert.Contains(t, out, "Crime Stories")
		assert.Contains(t, out, "61.2")
	})

	t.Run("empty rows", func(t *testing.T) {
		assert.Equal(t, "Episodes: No results\n", Table("Episodes", []string{"id"}, nil))
		assert.Equal(t, "No results\n", Table("", []string{"id"}, nil))
	})
}

func TestDetail(t *testing.T) {
	out := Detail("Podcast", []FieldValue{
		{Name: "ID", Value: "31428"},
		{Name: "Title", Value: "Crime Stories"},
	})

	assert.Contains(t, out, "Podcast\n")
	assert.Contains(t, out, "  ID     31428\n")
	assert.Contains(t, out, "  Title  Crime Stories\n")
}

func TestPodcastFields(t *testing.T) {
	rss := "https://feeds.example.com/crime.rss"
	podcast := &podplay.Podcast{
		ID:          31428,
		Title:       "Crime Stories",
		Author:      "PodPlay Studios",
		Image:       "a1b2c3",
		Original:    true,
		Description: "Weekly deep dives.",
		LanguageISO: "no",
		Popularity:  87.5,
		CategoryID:  []int64{1, 7},
		RSS:         &rss,
		Type:        podplay.PodcastTypeEpisodic,
	}

	t.Run("unenriched podcasts fall back to raw category ids", func(t *testing.T) {
		fields := PodcastFields(podcast)

		value, ok := fieldValue(fields, "Categories")
		require.True(t, ok)
		assert.Equal(t, "1, 7", value)

		value, ok = fieldValue(fields, "RSS")
		require.True(t, ok)
		assert.Equal(t, rss, value)

		_, ok = fieldValue(fields, "Link")
		assert.False(t, ok)
		_, ok = fieldValue(fields, "Seasonal")
		assert.False(t, ok)

		value, ok = fieldValue(fields, "Image")
		require.True(t, ok)
		assert.Equal(t, podplay.DefaultImageURL+"/a1b2c3", value)
	})

	t.Run("enriched podcasts show category names", func(t *testing.T) {
		enriched := *podcast
		enriched.Category = []*podplay.Category{
			{ID: 1, Name: "True Crime"},
			{ID: 7, Name: "Documentary"},
		}

		value, ok := fieldValue(PodcastFields(&enriched), "Categories")
		require.True(t, ok)
		assert.Equal(t, "True Crime, Documentary", value)
	})
}

func TestEpisodeFields(t *testing.T) {
	duration := int64(1834)
	episode := &podplay.Episode{
		ID:        555,
		Title:     "The First Clue",
		PodcastID: 31428,
		Published: podplay.Timestamp{Time: time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)},
		Type:      podplay.EpisodeTypeFull,
		MimeType:  "audio/mpeg",
		URL:       "https://cdn.example.com/e555.mp3",
		Duration:  &duration,
	}

	fields := EpisodeFields(episode)

	value, ok := fieldValue(fields, "Published")
	require.True(t, ok)
	assert.Equal(t, "2023-11-14", value)

	value, ok = fieldValue(fields, "Duration")
	require.True(t, ok)
	assert.Equal(t, "30m34s", value)

	_, ok = fieldValue(fields, "Season")
	assert.False(t, ok)
	_, ok = fieldValue(fields, "Exclusive")
	assert.False(t, ok)
}

func TestCategoryFields(t *testing.T) {
	category := &podplay.Category{
		ID:       11,
		Name:     "Cold Cases",
		ParentID: int64Ptr(1),
		Children: []*podplay.Category{{ID: 111, Name: "Unsolved"}},
	}

	fields := CategoryFields(category)

	value, ok := fieldValue(fields, "Parent")
	require.True(t, ok)
	assert.Equal(t, "1", value)

	value, ok = fieldValue(fields, "Children")
	require.True(t, ok)
	assert.Equal(t, "1", value)
}

func fieldValue(fields []FieldValue, name string) (string, bool) {
	for _, field := range fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return "", false
}
