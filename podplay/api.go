package podplay

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Categories returns the catalog's category forest. The forest is fetched at
// most once per client instance; concurrent first calls share one request.
// Fetch failures are not cached.
func (c *Client) Categories(ctx context.Context) ([]*Category, error) {
	c.categoryMu.RLock()
	roots := c.categoryRoots
	c.categoryMu.RUnlock()
	if roots != nil {
		return roots, nil
	}

	result, err, _ := c.categoryGroup.Do("categories", func() (any, error) {
		c.categoryMu.RLock()
		cached := c.categoryRoots
		c.categoryMu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		raw, err := c.request(ctx, http.MethodGet, "category", nil, nil)
		if err != nil {
			return nil, err
		}

		var envelope struct {
			Results []*Category `json:"results"`
		}
		if err := decode(raw, &envelope); err != nil {
			return nil, err
		}
		nested := NestCategories(envelope.Results)

		c.categoryMu.Lock()
		c.categoryRoots = nested
		c.categoryMu.Unlock()
		return nested, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]*Category), nil
}

// ResolveCategoryIDs returns the root categories whose id appears in ids, in
// forest order. Only roots are considered; child categories never resolve.
// The returned slice is non-nil even when nothing resolved.
func (c *Client) ResolveCategoryIDs(ctx context.Context, ids []int64) ([]*Category, error) {
	roots, err := c.Categories(ctx)
	if err != nil {
		return nil, err
	}

	resolved := make([]*Category, 0, len(ids))
	for _, root := range roots {
		for _, id := range ids {
			if root.ID == id {
				resolved = append(resolved, root)
				break
			}
		}
	}
	return resolved, nil
}

// enrich resolves the podcast's raw category ids into Category values.
func (c *Client) enrich(ctx context.Context, podcast *Podcast) error {
	resolved, err := c.ResolveCategoryIDs(ctx, podcast.CategoryID)
	if err != nil {
		return err
	}
	podcast.Category = resolved
	return nil
}

// GetPodcastsByCategory returns the toplist of a category. Set originals to
// restrict the list to PodPlay originals. The results are not enriched.
func (c *Client) GetPodcastsByCategory(ctx context.Context, categoryID int64, originals bool) ([]*Podcast, error) {
	params := url.Values{}
	params.Set("category_id", strconv.FormatInt(categoryID, 10))
	params.Set("original", strconv.FormatBool(originals))

	raw, err := c.request(ctx, http.MethodGet, "toplist", params, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Results []*Podcast `json:"results"`
	}
	if err := decode(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

// GetPodcast returns a single podcast by id, enriched with its categories.
func (c *Client) GetPodcast(ctx context.Context, id int64) (*Podcast, error) {
	raw, err := c.request(ctx, http.MethodGet, fmt.Sprintf("podcast/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Podcast *Podcast `json:"podcast"`
	}
	if err := decode(raw, &envelope); err != nil {
		return nil, err
	}
	if envelope.Podcast == nil {
		return nil, &APIError{
			ContentType: "application/json",
			Body:        string(raw),
			Err:         errors.New("missing podcast in response"),
		}
	}

	if err := c.enrich(ctx, envelope.Podcast); err != nil {
		return nil, err
	}
	return envelope.Podcast, nil
}

// GetPodcasts returns the podcasts with the given ids, enriched with their
// categories. Unknown ids are absent from the result.
func (c *Client) GetPodcasts(ctx context.Context, ids []int64) ([]*Podcast, error) {
	params := url.Values{}
	for _, id := range ids {
		params.Add("id", strconv.FormatInt(id, 10))
	}

	raw, err := c.request(ctx, http.MethodGet, "podcast-by-id", params, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Results []*Podcast `json:"results"`
	}
	if err := decode(raw, &envelope); err != nil {
		return nil, err
	}

	for _, podcast := range envelope.Results {
		if err := c.enrich(ctx, podcast); err != nil {
			return nil, err
		}
	}
	return envelope.Results, nil
}

// GetEpisode returns a single episode by id.
func (c *Client) GetEpisode(ctx context.Context, id int64) (*Episode, error) {
	raw, err := c.request(ctx, http.MethodGet, fmt.Sprintf("episode/%d", id), nil, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Episode *Episode `json:"episode"`
	}
	if err := decode(raw, &envelope); err != nil {
		return nil, err
	}
	if envelope.Episode == nil {
		return nil, &APIError{
			ContentType: "application/json",
			Body:        string(raw),
			Err:         errors.New("missing episode in response"),
		}
	}
	return envelope.Episode, nil
}

// GetEpisodes returns the episodes with the given ids. Unknown ids are
// absent from the result.
func (c *Client) GetEpisodes(ctx context.Context, ids []int64) ([]*Episode, error) {
	params := url.Values{}
	for _, id := range ids {
		params.Add("id", strconv.FormatInt(id, 10))
	}

	raw, err := c.request(ctx, http.MethodGet, "episode-by-id", params, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Results []*Episode `json:"results"`
	}
	if err := decode(raw, &envelope); err != nil {
		return nil, err
	}
	return envelope.Results, nil
}

// GetPodcastEpisodes returns a podcast's episodes, newest first. Zero pages
// or pageSize fall back to the defaults; an API error mid-listing yields the
// episodes fetched so far.
func (c *Client) GetPodcastEpisodes(ctx context.Context, podcastID int64, pages, pageSize int) ([]*Episode, error) {
	items, err := c.getPages(ctx, pageRequest{
		path:     fmt.Sprintf("podcast/%d/episode", podcastID),
		pages:    pages,
		pageSize: pageSize,
		itemsKey: "results",
	})
	if err != nil {
		return nil, err
	}

	episodes := make([]*Episode, 0, len(items))
	for _, item := range items {
		var episode Episode
		if err := decode(item, &episode); err != nil {
			return nil, err
		}
		episodes = append(episodes, &episode)
	}
	return episodes, nil
}

// SearchPodcast searches the catalog and returns the matching podcasts,
// enriched with their categories.
func (c *Client) SearchPodcast(ctx context.Context, term string) ([]*Podcast, error) {
	params := url.Values{}
	params.Set("q", term)

	raw, err := c.request(ctx, http.MethodGet, "search", params, nil)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Results []*Podcast `json:"results"`
	}
	if err := decode(raw, &envelope); err != nil {
		return nil, err
	}

	for _, podcast := range envelope.Results {
		if err := c.enrich(ctx, podcast); err != nil {
			return nil, err
		}
	}
	return envelope.Results, nil
}

// GetEpisodeIDs returns the ids of every episode of a podcast.
func (c *Client) GetEpisodeIDs(ctx context.Context, podcastID int64) ([]int64, error) {
	episodes, err := c.GetPodcastEpisodes(ctx, podcastID, 0, 0)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(episodes))
	for _, episode := range episodes {
		ids = append(ids, episode.ID)
	}
	return ids, nil
}
