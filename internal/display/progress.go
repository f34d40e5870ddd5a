package display

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

const (
	clearLine   = "\033[2K" // ANSI: clear entire line
	moveToStart = "\r"
)

// Spinner frames for indeterminate progress
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Progress is a single-line progress indicator for long builds. The total
// is unknown up front (the corpus is streamed), so it shows a spinner, a
// running count and the latest message.
type Progress struct {
	title      string
	mutex      sync.Mutex
	count      int
	spinnerIdx int
	done       bool
}

// NewProgress creates a progress line with the given title
func NewProgress(title string) *Progress {
	return &Progress{title: title}
}

// ShouldShowProgress returns true if the log level is info: debug output
// would interleave with the progress line, and quiet mode suppresses it.
func ShouldShowProgress() bool {
	return zerolog.GlobalLevel() == zerolog.InfoLevel
}

// Update advances the counter and redraws the line
func (p *Progress) Update(count int, message string) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.done {
		return
	}

	p.count = count
	frame := spinnerFrames[p.spinnerIdx%len(spinnerFrames)]
	p.spinnerIdx++

	if len(message) > 60 {
		message = message[:57] + "..."
	}
	fmt.Printf("%s%s%s %s: %d  %s", clearLine, moveToStart, frame, p.title, p.count, message)
}

// Complete clears the progress line
func (p *Progress) Complete() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.done {
		return
	}
	p.done = true
	fmt.Print(clearLine + moveToStart)
	fmt.Printf("%s: %d done\n", p.title, p.count)
}
