package loader

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Chunk is one fixed-duration window of caption text with its provenance.
// Once emitted it carries no reference back to its source track.
type Chunk struct {
	// Text is the joined text of every cue starting inside the window.
	Text string `json:"text"`
	// Source is the URL template with the media id and the start offset,
	// truncated to whole seconds, substituted in.
	Source string `json:"source"`
	// Filename is the display name of the media entry.
	Filename string `json:"filename"`
	MediaID  string `json:"media_id"`
	// Timestamp is the chunk start rendered as HH:MM:SS.
	Timestamp    string `json:"timestamp"`
	CaptionID    string `json:"caption_id"`
	LanguageCode string `json:"language_code"`
	// CaptionFormat is always "SRT"; no other format survives selection.
	CaptionFormat string `json:"caption_format"`

	// Start is the native-precision start offset of the chunk's first cue.
	Start time.Duration `json:"-"`
}

// StartSeconds is the chunk start truncated to whole seconds, the value
// substituted into source URLs.
func (c Chunk) StartSeconds() int {
	return int(c.Start / time.Second)
}

const (
	templateFieldMediaID      = "{mediaId}"
	templateFieldStartSeconds = "{startSeconds}"
)

func validateURLTemplate(template string) error {
	if template == "" {
		return &ConfigurationError{Msg: fmt.Sprintf(
			"url template must be specified, with fields for %q and %q",
			templateFieldMediaID, templateFieldStartSeconds)}
	}
	for _, field := range []string{templateFieldMediaID, templateFieldStartSeconds} {
		if !strings.Contains(template, field) {
			return &ConfigurationError{Msg: fmt.Sprintf(
				"url template must contain the field %q", field)}
		}
	}
	return nil
}

func expandURLTemplate(template, mediaID string, startSeconds int) string {
	return strings.NewReplacer(
		templateFieldMediaID, mediaID,
		templateFieldStartSeconds, strconv.Itoa(startSeconds),
	).Replace(template)
}

// FormatTimestamp renders an offset as HH:MM:SS, dropping the fractional
// part.
func FormatTimestamp(d time.Duration) string {
	seconds := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds/60)%60, seconds%60)
}
