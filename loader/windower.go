package loader

import (
	"time"

	"github.com/jaym/kapchunk/srt"
)

// Windows partitions a cue sequence into consecutive fixed-duration
// windows. Window i covers [i*size, (i+1)*size); a cue belongs to the
// window containing its start offset, even if it runs past the boundary.
//
// Windows is consumed like sql.Rows: call Next until it returns false,
// reading the current window through Start and Cues. Windows with no cues
// are skipped, so successive windows are not necessarily adjacent. The
// sequence is not restartable.
type Windows struct {
	cues srt.Cues
	size time.Duration
	pos  int
	cur  srt.Cues
}

// NewWindows returns a window iterator over cues, which must be ordered by
// start offset. The size must be positive; callers validate it before
// windowing begins.
func NewWindows(cues srt.Cues, size time.Duration) *Windows {
	return &Windows{cues: cues, size: size}
}

// Next advances to the next non-empty window. It returns false once every
// cue has been consumed.
func (w *Windows) Next() bool {
	if w.pos >= len(w.cues) {
		w.cur = nil
		return false
	}

	// Jump straight to the window containing the next unconsumed cue;
	// everything before it is an empty window.
	index := int64(w.cues[w.pos].Start / w.size)
	end := time.Duration(index+1) * w.size

	next := w.pos
	for next < len(w.cues) && w.cues[next].Start < end {
		next++
	}

	w.cur = w.cues[w.pos:next]
	w.pos = next
	return true
}

// Start is the start offset of the current window's first cue.
func (w *Windows) Start() time.Duration {
	return w.cur[0].Start
}

// Cues is the cue selection of the current window.
func (w *Windows) Cues() srt.Cues {
	return w.cur
}
