package tui

type pageLayout struct {
	windowWidth    int
	windowHeight   int
	viewportWidth  int
	viewportHeight int
	inputWidth     int
}

func newPageLayout() pageLayout {
	return pageLayout{
		viewportWidth:  80,
		viewportHeight: 16,
		inputWidth:     70,
	}
}

// Update recomputes panel sizes for a terminal of width x height cells.
func (l *pageLayout) Update(width, height int) {
	l.windowWidth = width
	l.windowHeight = height
	innerWidth := width - viewportHorizontalPadding
	if innerWidth < minViewportWidth {
		innerWidth = minViewportWidth
	}
	l.viewportWidth = innerWidth
	l.inputWidth = innerWidth - 6
	if l.inputWidth > 100 {
		l.inputWidth = 100
	}
	// header row, email title, copy hint, status bar and spacing
	const chrome = 9
	usable := height - chrome
	if usable < 6 {
		usable = 6
	}
	l.viewportHeight = usable
}

func (l pageLayout) wrapWidth() int {
	width := l.viewportWidth - emailWrapPadding
	if width < minViewportWidth-emailWrapPadding {
		return minViewportWidth - emailWrapPadding
	}
	return width
}
