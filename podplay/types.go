package podplay

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Language selects the catalog language segment of every request URL.
type Language string

const (
	// LanguageNorwegian selects the Norwegian catalog.
	LanguageNorwegian Language = "no"
	// LanguageSwedish selects the Swedish catalog.
	LanguageSwedish Language = "sv"
	// LanguageFinnish selects the Finnish catalog.
	LanguageFinnish Language = "fi"
	// LanguageEnglish selects the global English catalog.
	LanguageEnglish Language = "en"
)

// ParseLanguage converts a language code into a Language.
func ParseLanguage(code string) (Language, error) {
	switch Language(code) {
	case LanguageNorwegian, LanguageSwedish, LanguageFinnish, LanguageEnglish:
		return Language(code), nil
	}
	return "", fmt.Errorf("unsupported language code: %q", code)
}

// Region identifies the market a catalog entry belongs to.
type Region string

const (
	// RegionNorway is the Norwegian market.
	RegionNorway Region = "no"
	// RegionSweden is the Swedish market.
	RegionSweden Region = "se"
	// RegionFinland is the Finnish market.
	RegionFinland Region = "fi"
	// RegionGlobal is the global market.
	RegionGlobal Region = "en"
)

// PodcastType distinguishes serials from episodic shows.
type PodcastType string

const (
	// PodcastTypeSerial marks podcasts meant to be consumed in order.
	PodcastTypeSerial PodcastType = "serial"
	// PodcastTypeEpisodic marks podcasts with standalone episodes.
	PodcastTypeEpisodic PodcastType = "episodic"
)

// EpisodeType distinguishes full episodes from trailers.
type EpisodeType string

const (
	// EpisodeTypeFull marks a regular episode.
	EpisodeTypeFull EpisodeType = "full"
	// EpisodeTypeTrailer marks a trailer.
	EpisodeTypeTrailer EpisodeType = "trailer"
)

// IsTrailer reports whether the episode is a trailer.
func (t EpisodeType) IsTrailer() bool {
	return t == EpisodeTypeTrailer
}

// Order is the sort direction of paginated list endpoints.
type Order string

const (
	// OrderAscending sorts oldest first.
	OrderAscending Order = "asc"
	// OrderDescending sorts newest first.
	OrderDescending Order = "desc"
)

// Timestamp is a point in time transmitted by the API as Unix epoch seconds.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON decodes epoch seconds into a UTC timestamp.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	secs, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", string(data), err)
	}
	t.Time = time.Unix(secs, 0).UTC()
	return nil
}

// MarshalJSON encodes the timestamp back into epoch seconds.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(t.Unix(), 10)), nil
}

// Category is a node in the catalog's category forest. Children is empty
// until the flat category list has been run through NestCategories.
type Category struct {
	ID       int64       `json:"id"`
	Name     string      `json:"name"`
	ParentID *int64      `json:"parent_id,omitempty"`
	Children []*Category `json:"children,omitempty"`
}

// Image is one fixed-width rendition of a podcast cover. Images are never
// transmitted by the API; they are derived from the podcast's image id.
type Image struct {
	URL   string `json:"url"`
	Width int    `json:"width"`
}

// Podcast is a single show in the catalog.
//
// Category stays nil until an enrichment step resolves CategoryID against the
// category forest; after enrichment it is non-nil even when no id resolved.
type Podcast struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Author      string      `json:"author"`
	Image       string      `json:"image"`
	Images      []Image     `json:"images,omitempty"`
	Original    bool        `json:"original"`
	Description string      `json:"description"`
	LanguageISO string      `json:"language_iso"`
	Popularity  float64     `json:"popularity"`
	CategoryID  []int64     `json:"category_id,omitempty"`
	Category    []*Category `json:"category,omitempty"`
	Link        *string     `json:"link,omitempty"`
	RSS         *string     `json:"rss,omitempty"`
	Seasonal    *bool       `json:"seasonal,omitempty"`
	Slug        *string     `json:"slug,omitempty"`
	Type        PodcastType `json:"type,omitempty"`
}

// podcastAlias avoids recursing into Podcast.UnmarshalJSON.
type podcastAlias Podcast

// UnmarshalJSON decodes a podcast and derives its fixed-width image
// renditions from the base image id.
func (p *Podcast) UnmarshalJSON(data []byte) error {
	var alias podcastAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*p = Podcast(alias)
	p.Images = imageVariants(p.Image)
	return nil
}

// Episode is a single episode of a podcast.
type Episode struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Encoded       bool        `json:"encoded"`
	Exclusive     bool        `json:"exclusive"`
	MimeType      string      `json:"mime_type"`
	PodcastID     int64       `json:"podcast_id"`
	Published     Timestamp   `json:"published"`
	Slug          string      `json:"slug"`
	Type          EpisodeType `json:"type"`
	URL           string      `json:"url"`
	Duration      *int64      `json:"duration,omitempty"`
	EpisodeNumber *int64      `json:"episode,omitempty"`
	SeasonNumber  *int64      `json:"season,omitempty"`
}

// DurationSeconds returns the episode length, or zero when unknown.
func (e *Episode) DurationSeconds() int64 {
	if e.Duration == nil {
		return 0
	}
	return *e.Duration
}
