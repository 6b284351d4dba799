package kaltura

import (
	"context"
	"net/url"
)

// CaptionFormatSRT is the caption asset format tag for SRT timed text, the
// only format the chunker consumes.
const CaptionFormatSRT = "1"

// CaptionAsset is one caption track attached to a media entry.
type CaptionAsset struct {
	ID           string `json:"id"`
	LanguageCode string `json:"languageCode"`
	Format       string `json:"format"`
	IsDefault    bool   `json:"isDefault"`
}

type captionAssetListResponse struct {
	Objects    []CaptionAsset `json:"objects"`
	TotalCount int            `json:"totalCount"`
}

// ListCaptionAssets returns the caption assets of a media entry, in API
// order.
func (c *Client) ListCaptionAssets(ctx context.Context, entryID string) ([]CaptionAsset, error) {
	var resp captionAssetListResponse
	err := c.call(ctx, "caption_captionasset", "list", url.Values{
		"filter[entryIdEqual]": {entryID},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Objects, nil
}

// CaptionAssetURL resolves the download URL of a caption asset. The serve
// action also only ever returned a URL, so getUrl is used directly.
func (c *Client) CaptionAssetURL(ctx context.Context, captionID string) (string, error) {
	var captionURL string
	err := c.call(ctx, "caption_captionasset", "getUrl", url.Values{
		"id": {captionID},
	}, &captionURL)
	if err != nil {
		return "", err
	}
	return captionURL, nil
}
