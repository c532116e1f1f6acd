package podplay

import "time"

// Default client configuration. Every value can be overridden per client
// through the Option functions.
const (
	// DefaultAPIURL is the base URL of the PodPlay catalog API.
	DefaultAPIURL = "https://api.podplay.com/v1"

	// DefaultImageURL is the base URL of the PodPlay image CDN.
	DefaultImageURL = "https://podplay.imgix.net"

	// DefaultUserAgent identifies this library to the API.
	DefaultUserAgent = "go-podplay/1.0.0"

	// DefaultTimeout bounds a single request, not a whole pagination run.
	DefaultTimeout = 10 * time.Second

	// DefaultLanguage is used when no language is configured.
	DefaultLanguage = LanguageEnglish
)

// Paging defaults used by the pagination engine.
const (
	// DefaultPageCap is the maximum number of pages fetched in one run when
	// the caller does not ask for a specific page count.
	DefaultPageCap = 99

	// DefaultPageSize is the number of items requested per page.
	DefaultPageSize = 50
)

// ImageWidths are the fixed rendition widths derived for every podcast image.
var ImageWidths = []int{300, 600, 960, 1280, 1600, 1920}
