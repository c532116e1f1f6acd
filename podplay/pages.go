package podplay

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// pageRequest describes one paginated listing run. Zero pages, pageSize and
// order fall back to DefaultPageCap, DefaultPageSize and descending. Params
// are sent alongside the paging parameters and may override them.
type pageRequest struct {
	path     string
	pages    int
	pageSize int
	params   url.Values
	order    Order
	itemsKey string
}

// getPages fetches a listing page by page and returns the raw items in order.
// An API error on any page stops the run with a warning and returns what was
// accumulated; connection and timeout errors abort the run entirely.
func (c *Client) getPages(ctx context.Context, req pageRequest) ([]json.RawMessage, error) {
	pages := req.pages
	if pages <= 0 {
		pages = DefaultPageCap
	}
	pageSize := req.pageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	order := req.order
	if order == "" {
		order = OrderDescending
	}

	var items []json.RawMessage
	offset := 0

	for page := 0; page < pages; page++ {
		params := url.Values{}
		params.Set("limit", strconv.Itoa(pageSize))
		params.Set("offset", strconv.Itoa(offset))
		params.Set("order", string(order))
		for key, values := range req.params {
			params[key] = values
		}

		raw, err := c.request(ctx, http.MethodGet, req.path, params, nil)
		if err != nil {
			if IsAPIError(err) {
				c.logger.Warn().
					Str("path", req.path).
					Int("items", len(items)).
					Err(err).
					Msg("Stopping pagination on API error")
				return items, nil
			}
			return nil, err
		}

		pageItems, total, err := splitPage(raw, req.itemsKey)
		if err != nil {
			c.logger.Warn().
				Str("path", req.path).
				Int("items", len(items)).
				Err(err).
				Msg("Stopping pagination on API error")
			return items, nil
		}
		if len(pageItems) == 0 {
			break
		}

		items = append(items, pageItems...)
		offset += len(pageItems)

		c.logger.Debug().
			Str("path", req.path).
			Int("page", page+1).
			Int("count", len(pageItems)).
			Int("total", len(items)).
			Msg("Retrieved page")

		if total != nil && int64(offset) >= *total {
			break
		}
	}

	return items, nil
}

// splitPage extracts the items and the optional total count from one page
// body. A bare array is the items itself; an object carries items under
// itemsKey and may carry a total. An object page without a configured
// itemsKey, or without that key, yields no items.
func splitPage(raw json.RawMessage, itemsKey string) ([]json.RawMessage, *int64, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []json.RawMessage
		if err := decode(raw, &items); err != nil {
			return nil, nil, err
		}
		return items, nil, nil
	}

	var envelope map[string]json.RawMessage
	if err := decode(raw, &envelope); err != nil {
		return nil, nil, err
	}

	var total *int64
	if rawTotal, ok := envelope["total"]; ok {
		var n int64
		if err := json.Unmarshal(rawTotal, &n); err == nil {
			total = &n
		}
	}

	if itemsKey == "" {
		return nil, total, nil
	}
	rawItems, ok := envelope[itemsKey]
	if !ok {
		return nil, total, nil
	}

	var items []json.RawMessage
	if err := decode(rawItems, &items); err != nil {
		return nil, nil, err
	}
	return items, total, nil
}
