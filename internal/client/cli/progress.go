package cli

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

const progressBarWidth = 30

// progressBar redraws a single terminal line as upload progress arrives.
// Update may be called from the transport goroutine.
type progressBar struct {
	mu      sync.Mutex
	w       io.Writer
	width   int
	last    int
	started bool
}

func newProgressBar(w io.Writer, width int) *progressBar {
	return &progressBar{w: w, width: width, last: -1}
}

func (b *progressBar) Update(percent int) {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if percent == b.last {
		return
	}
	b.last = percent
	b.started = true

	filled := percent * b.width / 100
	fmt.Fprintf(b.w, "\r[%s%s] %3d%%", strings.Repeat("#", filled), strings.Repeat(".", b.width-filled), percent)
}

// Finish ends the bar's line if anything was drawn.
func (b *progressBar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		fmt.Fprintln(b.w)
		b.started = false
	}
}
