// SPDX-License-Identifier: MIT
package steps

// Cursor is a playback position over a step sequence.
// The index is always clamped to [0, len-1], so a sequence that shrinks after
// the input is edited never leaves the cursor pointing past its end.
type Cursor struct {
	seq []Step
	idx int
}

// NewCursor returns a cursor positioned on the first step of seq.
func NewCursor(seq []Step) *Cursor {
	return &Cursor{seq: seq}
}

// Len returns the sequence length.
func (c *Cursor) Len() int { return len(c.seq) }

// Index returns the current position.
func (c *Cursor) Index() int { return c.idx }

// Current returns the step under the cursor, or false for an empty sequence.
func (c *Cursor) Current() (Step, bool) {
	if len(c.seq) == 0 {
		return Step{}, false
	}

	return c.seq[c.idx], true
}

// Next advances one step; it reports false when already at the end.
func (c *Cursor) Next() bool {
	if c.idx >= len(c.seq)-1 {
		return false
	}
	c.idx++

	return true
}

// Prev moves back one step; it reports false when already at the start.
func (c *Cursor) Prev() bool {
	if c.idx == 0 {
		return false
	}
	c.idx--

	return true
}

// Reset returns to the first step.
func (c *Cursor) Reset() { c.idx = 0 }

// Seek moves to i clamped into range and returns the resulting index.
func (c *Cursor) Seek(i int) int {
	c.idx = clamp(i, len(c.seq))

	return c.idx
}

// Replace swaps in a recomputed sequence, keeping the position when possible.
func (c *Cursor) Replace(seq []Step) {
	c.seq = seq
	c.idx = clamp(c.idx, len(seq))
}

// AtEnd reports whether the cursor is on the last step (or the sequence is empty).
func (c *Cursor) AtEnd() bool { return c.idx >= len(c.seq)-1 }

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i > n-1 {
		return n - 1
	}

	return i
}
