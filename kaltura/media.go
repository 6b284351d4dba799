package kaltura

import (
	"context"
	"net/url"
)

// MediaEntry is a media item as returned by media.list.
type MediaEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MediaFilter selects media entries. Exactly one field should be set.
type MediaFilter struct {
	// IDEqual matches a single entry by id.
	IDEqual string
	// CategoriesMatchAnd matches every entry in a category, given the
	// category's full path, e.g. "site>channel>courses>course name".
	CategoriesMatchAnd string
}

type mediaListResponse struct {
	Objects    []MediaEntry `json:"objects"`
	TotalCount int          `json:"totalCount"`
}

// ListMedia returns the media entries matching the filter, in API order.
func (c *Client) ListMedia(ctx context.Context, filter MediaFilter) ([]MediaEntry, error) {
	params := url.Values{}
	if filter.IDEqual != "" {
		params.Set("filter[idEqual]", filter.IDEqual)
	}
	if filter.CategoriesMatchAnd != "" {
		params.Set("filter[categoriesMatchAnd]", filter.CategoriesMatchAnd)
	}

	var resp mediaListResponse
	if err := c.call(ctx, "media", "list", params, &resp); err != nil {
		return nil, err
	}
	return resp.Objects, nil
}
