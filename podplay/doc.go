// Package podplay provides a client for the PodPlay podcast catalog API.
//
// PodPlay is a podcast platform for the Nordic markets. This package
// implements a clean, idiomatic Go client for browsing its public catalog:
// categories, podcasts, episodes and search.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: The main API client with request building and pool ownership
//   - Types: Domain models (categories, podcasts, episodes, images)
//   - Pages: Offset-based pagination over listing endpoints
//   - Errors: Structured error types for transport, timeout and API failures
//
// # Usage
//
// Create a client and browse the catalog:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := podplay.NewClient(
//		logger,
//		podplay.WithLanguage(podplay.LanguageNorwegian),
//		podplay.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//	podcast, err := client.GetPodcast(ctx, 31428)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	episodes, err := client.GetPodcastEpisodes(ctx, podcast.ID, 0, 0)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// The package defines three error types:
//
//   - ConnectionTimeoutError: The request deadline expired
//   - ConnectionError: Transport failure or non-2xx status
//   - APIError: A response the API client could not make sense of
//
// Classification helpers work through wrapped chains:
//
//	if podplay.IsTimeout(err) {
//		// retry later
//	}
//
// Paginated listings deliberately treat API errors as the end of the data:
// the items fetched before the failure are returned with a nil error, while
// connection and timeout errors always propagate.
package podplay
