package podplay

import (
	"net/url"
	"strconv"
)

const defaultImageQuality = 75

// ImageFit controls how the CDN resizes a cover image into the requested box.
type ImageFit string

const (
	// ImageFitCrop crops the image to fill the box.
	ImageFitCrop ImageFit = "crop"
	// ImageFitScale scales the image to fit inside the box.
	ImageFitScale ImageFit = "scale"
)

// ImageParams are the resize parameters for BuildImageURL. The zero value
// requests the original image without any transformation.
type ImageParams struct {
	Fit     ImageFit
	Width   int
	Height  int
	Quality int
}

// BuildImageURL returns the CDN URL for a cover image id. Resize parameters
// are only applied when a width or height is requested.
func BuildImageURL(imageID string, params ImageParams) string {
	base := DefaultImageURL + "/" + url.PathEscape(imageID)
	if params.Width <= 0 && params.Height <= 0 {
		return base
	}

	fit := params.Fit
	if fit == "" {
		fit = ImageFitCrop
	}
	quality := params.Quality
	if quality <= 0 {
		quality = defaultImageQuality
	}

	query := url.Values{}
	query.Set("auto", "format,compress")
	query.Set("fit", string(fit))
	if params.Width > 0 {
		query.Set("width", strconv.Itoa(params.Width))
	}
	if params.Height > 0 {
		query.Set("height", strconv.Itoa(params.Height))
	}
	query.Set("q", strconv.Itoa(quality))

	return base + "?" + query.Encode()
}

// imageVariants derives the fixed-width cover renditions for an image id.
func imageVariants(imageID string) []Image {
	if imageID == "" {
		return nil
	}
	variants := make([]Image, 0, len(ImageWidths))
	for _, width := range ImageWidths {
		variants = append(variants, Image{
			URL:   BuildImageURL(imageID, ImageParams{Width: width}),
			Width: width,
		})
	}
	return variants
}
