package srt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSRT = `1
00:00:05,000 --> 00:00:07,500
Hello there.

2
00:01:50,250 --> 00:01:52,000
Still going.
On two lines.

3
00:02:30,000 --> 00:02:33,000
A later entry.
`

func TestParse(t *testing.T) {
	cues, err := Parse(strings.NewReader(sampleSRT))
	require.NoError(t, err)
	require.Len(t, cues, 3)

	assert.Equal(t, 5*time.Second, cues[0].Start)
	assert.Equal(t, 7500*time.Millisecond, cues[0].End)
	assert.Equal(t, "Hello there.", cues[0].Text)

	assert.Equal(t, 110250*time.Millisecond, cues[1].Start)
	assert.Equal(t, "Still going.\nOn two lines.", cues[1].Text)

	assert.Equal(t, 150*time.Second, cues[2].Start)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse(strings.NewReader("1\nnot a --> timecode\nText\n"))
	assert.Error(t, err)
}

func TestSlice(t *testing.T) {
	cues, err := Parse(strings.NewReader(sampleSRT))
	require.NoError(t, err)

	t.Run("half-open range", func(t *testing.T) {
		got := cues.Slice(0, 2*time.Minute)
		require.Len(t, got, 2)
		assert.Equal(t, 5*time.Second, got[0].Start)
		assert.Equal(t, 110250*time.Millisecond, got[1].Start)
	})

	t.Run("start offset decides membership", func(t *testing.T) {
		// cue 1 ends after the bound but starts inside it
		got := cues.Slice(0, 111*time.Second)
		assert.Len(t, got, 2)
	})

	t.Run("lower bound inclusive", func(t *testing.T) {
		got := cues.Slice(5*time.Second, 6*time.Second)
		require.Len(t, got, 1)
		assert.Equal(t, "Hello there.", got[0].Text)
	})

	t.Run("empty range", func(t *testing.T) {
		assert.Empty(t, cues.Slice(time.Minute, 90*time.Second))
	})
}

func TestText(t *testing.T) {
	cues, err := Parse(strings.NewReader(sampleSRT))
	require.NoError(t, err)

	assert.Equal(t, "Hello there.\nStill going.\nOn two lines.\nA later entry.", cues.Text())
	assert.Equal(t, "", Cues{}.Text())
}
