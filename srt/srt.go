package srt

import (
	"io"
	"strings"
	"time"

	"github.com/asticode/go-astisub"
)

// Cue is a single timed subtitle entry. Start and End are offsets from the
// beginning of the track.
type Cue struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

// Cues is an ordered sequence of cues. The order is track-provided and
// assumed non-decreasing by start offset.
type Cues []Cue

// Parse reads SRT content and returns its cues in track order.
func Parse(r io.Reader) (Cues, error) {
	subs, err := astisub.ReadFromSRT(r)
	if err != nil {
		return nil, err
	}

	cues := make(Cues, 0, len(subs.Items))
	for _, item := range subs.Items {
		lines := make([]string, 0, len(item.Lines))
		for _, line := range item.Lines {
			lines = append(lines, line.String())
		}
		cues = append(cues, Cue{
			Start: item.StartAt,
			End:   item.EndAt,
			Text:  strings.Join(lines, "\n"),
		})
	}

	return cues, nil
}

// Slice returns the cues whose start offset lies in the half-open range
// [from, to). A cue spanning the upper bound stays with the range
// containing its start.
func (c Cues) Slice(from, to time.Duration) Cues {
	var out Cues
	for _, cue := range c {
		if cue.Start >= from && cue.Start < to {
			out = append(out, cue)
		}
	}
	return out
}

// Text joins the cue texts with newlines, the same join SRT files use
// between entries.
func (c Cues) Text() string {
	texts := make([]string, 0, len(c))
	for _, cue := range c {
		texts = append(texts, cue.Text)
	}
	return strings.Join(texts, "\n")
}
