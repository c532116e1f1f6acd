package podplay

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const categoriesPayload = `{"results":[
	{"id":1,"name":"True Crime"},
	{"id":2,"name":"Comedy"},
	{"id":11,"name":"Cold Cases","parent_id":1}
]}`

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(zerolog.Nop(), WithBaseURL(server.URL))
	require.NoError(t, err)
	t.Cleanup(client.Close)
	return client
}

func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(body))
}

func TestCategories(t *testing.T) {
	t.Run("memoizes the forest", func(t *testing.T) {
		var requests int
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			assert.Equal(t, "/en/category", r.URL.Path)
			writeJSON(w, categoriesPayload)
		}))

		for i := 0; i < 2; i++ {
			roots, err := client.Categories(context.Background())
			require.NoError(t, err)
			require.Len(t, roots, 2)
			assert.Equal(t, "True Crime", roots[0].Name)
			require.Len(t, roots[0].Children, 1)
			assert.Equal(t, "Cold Cases", roots[0].Children[0].Name)
		}
		assert.Equal(t, 1, requests)
	})

	t.Run("collapses concurrent first calls", func(t *testing.T) {
		var requests int32
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&requests, 1)
			time.Sleep(20 * time.Millisecond)
			writeJSON(w, categoriesPayload)
		}))

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				roots, err := client.Categories(context.Background())
				assert.NoError(t, err)
				assert.Len(t, roots, 2)
			}()
		}
		wg.Wait()
		assert.EqualValues(t, 1, atomic.LoadInt32(&requests))
	})

	t.Run("does not cache failures", func(t *testing.T) {
		var requests int
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests++
			if requests == 1 {
				http.Error(w, "boom", http.StatusInternalServerError)
				return
			}
			writeJSON(w, categoriesPayload)
		}))

		_, err := client.Categories(context.Background())
		require.Error(t, err)
		assert.True(t, IsConnectionError(err))

		roots, err := client.Categories(context.Background())
		require.NoError(t, err)
		assert.Len(t, roots, 2)
		assert.Equal(t, 2, requests)
	})
}

func TestResolveCategoryIDs(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, categoriesPayload)
	}))

	t.Run("resolves root ids only", func(t *testing.T) {
		// 11 is a child of 1 and must not resolve.
		resolved, err := client.ResolveCategoryIDs(context.Background(), []int64{1, 11})
		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.Equal(t, int64(1), resolved[0].ID)
	})

	t.Run("unknown ids yield an empty slice", func(t *testing.T) {
		resolved, err := client.ResolveCategoryIDs(context.Background(), []int64{404})
		require.NoError(t, err)
		assert.NotNil(t, resolved)
		assert.Empty(t, resolved)
	})
}

func TestGetPodcast(t *testing.T) {
	t.Run("decodes and enriches", func(t *testing.T) {
		var categoryRequests int
		mux := http.NewServeMux()
		mux.HandleFunc("/en/category", func(w http.ResponseWriter, r *http.Request) {
			categoryRequests++
			writeJSON(w, categoriesPayload)
		})
		mux.HandleFunc("/en/podcast/31428", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{"podcast":{
				"id": 31428,
				"title": "Crime Stories",
				"author": "PodPlay Studios",
				"image": "a1b2c3",
				"original": true,
				"description": "Weekly deep dives.",
				"language_iso": "no",
				"popularity": 87.5,
				"category_id": [1]
			}}`)
		})
		client := newTestClient(t, mux)

		podcast, err := client.GetPodcast(context.Background(), 31428)
		require.NoError(t, err)

		assert.Equal(t, int64(31428), podcast.ID)
		assert.Len(t, podcast.Images, len(ImageWidths))
		require.Len(t, podcast.Category, 1)
		assert.Equal(t, "True Crime", podcast.Category[0].Name)
		assert.Equal(t, 1, categoryRequests)
	})

	t.Run("missing envelope is an API error", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{}`)
		}))

		_, err := client.GetPodcast(context.Background(), 1)
		require.Error(t, err)
		assert.True(t, IsAPIError(err))
	})
}

func TestGetPodcasts(t *testing.T) {
	var categoryRequests int
	mux := http.NewServeMux()
	mux.HandleFunc("/en/category", func(w http.ResponseWriter, r *http.Request) {
		categoryRequests++
		writeJSON(w, categoriesPayload)
	})
	mux.HandleFunc("/en/podcast-by-id", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"10", "20"}, r.URL.Query()["id"])
		writeJSON(w, `{"results":[
			{"id":10,"title":"A","author":"x","image":"i1","original":false,"description":"","language_iso":"en","popularity":1,"category_id":[1]},
			{"id":20,"title":"B","author":"y","image":"i2","original":false,"description":"","language_iso":"en","popularity":2,"category_id":[404]}
		]}`)
	})
	client := newTestClient(t, mux)

	podcasts, err := client.GetPodcasts(context.Background(), []int64{10, 20})
	require.NoError(t, err)
	require.Len(t, podcasts, 2)

	require.Len(t, podcasts[0].Category, 1)
	assert.Equal(t, "True Crime", podcasts[0].Category[0].Name)

	// Enrichment misses still mark the podcast as enriched.
	assert.NotNil(t, podcasts[1].Category)
	assert.Empty(t, podcasts[1].Category)

	assert.Equal(t, 1, categoryRequests)
}

func TestGetPodcastsByCategory(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/en/toplist", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("category_id"))
		assert.Equal(t, "true", r.URL.Query().Get("original"))
		writeJSON(w, `{"results":[
			{"id":10,"title":"A","author":"x","image":"i1","original":true,"description":"","language_iso":"en","popularity":1,"category_id":[7]}
		]}`)
	}))

	podcasts, err := client.GetPodcastsByCategory(context.Background(), 7, true)
	require.NoError(t, err)
	require.Len(t, podcasts, 1)
	assert.Nil(t, podcasts[0].Category)
}

func TestGetEpisode(t *testing.T) {
	t.Run("decodes the envelope", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/en/episode/555", r.URL.Path)
			writeJSON(w, `{"episode":{
				"id": 555,
				"title": "The First Clue",
				"description": "It begins.",
				"encoded": true,
				"exclusive": false,
				"mime_type": "audio/mpeg",
				"podcast_id": 31428,
				"published": 1700000000,
				"slug": "the-first-clue",
				"type": "full",
				"url": "https://cdn.example.com/e555.mp3"
			}}`)
		}))

		episode, err := client.GetEpisode(context.Background(), 555)
		require.NoError(t, err)
		assert.Equal(t, int64(555), episode.ID)
		assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), episode.Published.Time)
	})

	t.Run("missing envelope is an API error", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, `{}`)
		}))

		_, err := client.GetEpisode(context.Background(), 1)
		require.Error(t, err)
		assert.True(t, IsAPIError(err))
	})
}

func TestGetEpisodes(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/en/episode-by-id", r.URL.Path)
		assert.Equal(t, []string{"5", "6"}, r.URL.Query()["id"])
		writeJSON(w, `{"results":[{"id":5},{"id":6}]}`)
	}))

	episodes, err := client.GetEpisodes(context.Background(), []int64{5, 6})
	require.NoError(t, err)
	require.Len(t, episodes, 2)
	assert.Equal(t, int64(5), episodes[0].ID)
	assert.Equal(t, int64(6), episodes[1].ID)
}

func TestGetPodcastEpisodes(t *testing.T) {
	var requests int
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/en/podcast/31428/episode", r.URL.Path)
		pagingHandler(t, 120, &requests)(w, r)
	}))

	episodes, err := client.GetPodcastEpisodes(context.Background(), 31428, 0, 0)
	require.NoError(t, err)
	require.Len(t, episodes, 120)
	assert.Equal(t, 3, requests)
	assert.Equal(t, int64(0), episodes[0].ID)
	assert.Equal(t, int64(119), episodes[119].ID)
}

func TestSearchPodcast(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/en/category", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, categoriesPayload)
	})
	mux.HandleFunc("/en/search", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "crime", r.URL.Query().Get("q"))
		writeJSON(w, `{"results":[
			{"id":10,"title":"Crime Stories","author":"x","image":"i1","original":false,"description":"","language_iso":"en","popularity":1,"category_id":[2]}
		]}`)
	})
	client := newTestClient(t, mux)

	podcasts, err := client.SearchPodcast(context.Background(), "crime")
	require.NoError(t, err)
	require.Len(t, podcasts, 1)
	require.Len(t, podcasts[0].Category, 1)
	assert.Equal(t, "Comedy", podcasts[0].Category[0].Name)
}

func TestGetEpisodeIDs(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ids := make([]string, 0, 3)
		for _, id := range []int{7, 8, 9} {
			ids = append(ids, fmt.Sprintf(`{"id":%d}`, id))
		}
		writeJSON(w, fmt.Sprintf(`{"total":3,"results":[%s]}`, strings.Join(ids, ",")))
	}))

	ids, err := client.GetEpisodeIDs(context.Background(), 31428)
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 8, 9}, ids)
}
