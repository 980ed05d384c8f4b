package state

// MoveCursorUp moves the highlight one entry up.
func (d *Dropdown) MoveCursorUp() bool {
	return d.moveCursorBy(-1)
}

// MoveCursorDown moves the highlight one entry down.
func (d *Dropdown) MoveCursorDown() bool {
	return d.moveCursorBy(1)
}

// MoveCursorHome moves the cursor to the first item.
func (d *Dropdown) MoveCursorHome() bool {
	if len(d.Items) == 0 {
		d.Cursor = 0
		return false
	}
	old := d.Cursor
	d.Cursor = 0
	return old != d.Cursor
}

// MoveCursorEnd moves the cursor to the last item.
func (d *Dropdown) MoveCursorEnd() bool {
	n := len(d.Items)
	if n == 0 {
		d.Cursor = 0
		return false
	}
	old := d.Cursor
	d.Cursor = n - 1
	return old != d.Cursor
}

// MoveCursorPageUp moves the cursor up by the given page size.
func (d *Dropdown) MoveCursorPageUp(maxVisible int) bool {
	return d.moveCursorBy(-d.pageSize(maxVisible))
}

// MoveCursorPageDown moves the cursor down by the given page size.
func (d *Dropdown) MoveCursorPageDown(maxVisible int) bool {
	return d.moveCursorBy(d.pageSize(maxVisible))
}

func (d *Dropdown) moveCursorBy(delta int) bool {
	if len(d.Items) == 0 {
		d.Cursor = 0
		return false
	}
	old := d.Cursor
	if d.Cursor < 0 {
		d.Cursor = 0
	}
	d.Cursor += delta
	if d.Cursor < 0 {
		d.Cursor = 0
	}
	if d.Cursor >= len(d.Items) {
		d.Cursor = len(d.Items) - 1
	}
	return d.Cursor != old
}

func (d *Dropdown) pageSize(maxVisible int) int {
	total := len(d.Items)
	if total == 0 {
		return 0
	}
	size := maxVisible
	if size <= 0 || size > total {
		size = total
	}
	if size < 1 {
		size = 1
	}
	return size
}

// EnsureCursorVisible adjusts the viewport offset so the cursor stays visible.
func (d *Dropdown) EnsureCursorVisible(maxVisible int) {
	if len(d.Items) == 0 {
		d.Cursor = 0
		d.ViewportOffset = 0
		return
	}
	if d.Cursor < 0 {
		d.Cursor = 0
	}
	if d.Cursor >= len(d.Items) {
		d.Cursor = len(d.Items) - 1
	}
	if maxVisible <= 0 {
		d.ViewportOffset = 0
		return
	}
	maxOffset := len(d.Items) - maxVisible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if d.ViewportOffset > maxOffset {
		d.ViewportOffset = maxOffset
	}
	if d.ViewportOffset < 0 {
		d.ViewportOffset = 0
	}
	if d.Cursor < d.ViewportOffset {
		d.ViewportOffset = d.Cursor
	}
	upper := d.ViewportOffset + maxVisible - 1
	if d.Cursor > upper {
		d.ViewportOffset = d.Cursor - maxVisible + 1
		if d.ViewportOffset < 0 {
			d.ViewportOffset = 0
		}
		if d.ViewportOffset > maxOffset {
			d.ViewportOffset = maxOffset
		}
	}
}
