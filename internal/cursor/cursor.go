// Package cursor implements the scroll window and selection shared by every
// list view.
package cursor

// DefaultHeight is the number of rows a selection-driven list keeps visible.
const DefaultHeight = 5

// Cursor tracks the first visible row (Offset) and the highlighted row
// (Selected) of a list whose length is supplied by the caller on each move.
//
// After any method returns, Offset <= Selected < Offset+Height, and
// Selected < n whenever the list is non-empty.
type Cursor struct {
	Offset   int
	Selected int
	height   int
}

// New returns a cursor at the top of a list with the given viewport height.
// Non-positive heights fall back to DefaultHeight.
func New(height int) Cursor {
	if height <= 0 {
		height = DefaultHeight
	}
	return Cursor{height: height}
}

// Height returns the viewport height.
func (c *Cursor) Height() int {
	if c.height <= 0 {
		return DefaultHeight
	}
	return c.height
}

// SetHeight changes the viewport height and scrolls so the selection stays
// visible.
func (c *Cursor) SetHeight(height int) {
	if height <= 0 {
		height = DefaultHeight
	}
	c.height = height
	if c.Selected >= c.Offset+height {
		c.Offset = c.Selected - height + 1
	}
}

// Up moves the selection one row towards the top.
func (c *Cursor) Up() {
	if c.Selected == 0 {
		return
	}
	c.Selected--
	if c.Selected < c.Offset {
		c.Offset = c.Selected
	}
}

// Down moves the selection one row towards the bottom of a list of n rows.
func (c *Cursor) Down(n int) {
	if c.Selected+1 >= n {
		return
	}
	c.Selected++
	if h := c.Height(); c.Selected >= c.Offset+h {
		c.Offset = c.Selected - h + 1
	}
}

// Reclamp pulls Offset and Selected back inside a list that now has n rows.
func (c *Cursor) Reclamp(n int) {
	last := max(n-1, 0)
	if c.Offset >= n {
		c.Offset = last
	}
	if c.Selected >= n {
		c.Selected = last
	}
}

// Reset returns to the top of the list.
func (c *Cursor) Reset() {
	c.Offset = 0
	c.Selected = 0
}

// Window returns the half-open range [start, end) of rows visible in a list
// of n rows.
func (c Cursor) Window(n int) (start, end int) {
	start = min(c.Offset, n)
	end = min(start+c.Height(), n)
	return start, end
}
