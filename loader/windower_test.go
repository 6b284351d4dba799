package loader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaym/kapchunk/srt"
)

func cue(start time.Duration, text string) srt.Cue {
	return srt.Cue{Start: start, End: start + 2*time.Second, Text: text}
}

func TestWindowsExample(t *testing.T) {
	// cues at 0:05, 1:50 and 2:30 with 2 minute windows
	cues := srt.Cues{
		cue(5*time.Second, "one"),
		cue(110*time.Second, "two"),
		cue(150*time.Second, "three"),
	}

	w := NewWindows(cues, 2*time.Minute)

	require.True(t, w.Next())
	assert.Equal(t, 5*time.Second, w.Start())
	assert.Equal(t, "one\ntwo", w.Cues().Text())

	require.True(t, w.Next())
	assert.Equal(t, 150*time.Second, w.Start())
	assert.Equal(t, "three", w.Cues().Text())

	assert.False(t, w.Next())
	assert.False(t, w.Next())
}

func TestWindowsNoCues(t *testing.T) {
	w := NewWindows(nil, 2*time.Minute)
	assert.False(t, w.Next())
}

func TestWindowsSingleWindow(t *testing.T) {
	cues := srt.Cues{
		cue(time.Second, "a"),
		cue(30*time.Second, "b"),
		cue(119*time.Second, "c"),
	}

	w := NewWindows(cues, 2*time.Minute)
	require.True(t, w.Next())
	assert.Equal(t, time.Second, w.Start())
	assert.Len(t, w.Cues(), 3)
	assert.False(t, w.Next())
}

func TestWindowsSkipEmpty(t *testing.T) {
	// cues at 0:30 and 3:10: window 1 (2:00-4:00 area split) has a gap
	cues := srt.Cues{
		cue(30*time.Second, "early"),
		cue(190*time.Second, "late"),
	}

	w := NewWindows(cues, 2*time.Minute)

	require.True(t, w.Next())
	assert.Equal(t, 30*time.Second, w.Start())

	require.True(t, w.Next())
	assert.Equal(t, 190*time.Second, w.Start())

	assert.False(t, w.Next())
}

func TestWindowsBoundary(t *testing.T) {
	cues := srt.Cues{
		// ends past the boundary but starts before it
		{Start: 119 * time.Second, End: 125 * time.Second, Text: "spans"},
		// starts exactly on the boundary
		{Start: 120 * time.Second, End: 122 * time.Second, Text: "next"},
	}

	w := NewWindows(cues, 2*time.Minute)

	require.True(t, w.Next())
	assert.Equal(t, srt.Cues{cues[0]}, w.Cues())

	require.True(t, w.Next())
	assert.Equal(t, srt.Cues{cues[1]}, w.Cues())

	assert.False(t, w.Next())
}

func TestWindowsEveryCueExactlyOnce(t *testing.T) {
	var cues srt.Cues
	var offset time.Duration
	for i := 0; i < 500; i++ {
		// irregular spacing with a long captioning gap every 13th cue
		offset += 7 * time.Second
		if i%13 == 0 {
			offset += 10 * time.Minute
		}
		cues = append(cues, cue(offset, "x"))
	}

	seen := 0
	var lastStart time.Duration = -1
	w := NewWindows(cues, 90*time.Second)
	for w.Next() {
		require.NotEmpty(t, w.Cues())
		assert.Greater(t, w.Start(), lastStart, "chunks must be emitted in increasing start order")
		lastStart = w.Start()
		seen += len(w.Cues())
	}

	assert.Equal(t, len(cues), seen)
}
