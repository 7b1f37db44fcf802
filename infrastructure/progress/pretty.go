// ABOUTME: Terminal progress bar for batch operations using go-pretty
// ABOUTME: One tracker per Start/Finish cycle, rendered in the background

package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"

	"sync-bookmarks/core/interfaces"
)

// Bar implements interfaces.Progress with a go-pretty progress writer
type Bar struct {
	output io.Writer

	mu      sync.Mutex
	writer  progress.Writer
	tracker *progress.Tracker
	done    chan struct{}
}

// NewBar creates a progress bar that renders to output, or stdout when nil
func NewBar(output io.Writer) *Bar {
	if output == nil {
		output = os.Stdout
	}
	return &Bar{output: output}
}

// Start begins tracking total steps labelled with message
func (b *Bar) Start(message string, total int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.tracker != nil {
		b.finishLocked("")
	}

	writer := progress.NewWriter()
	writer.SetOutputWriter(b.output)
	writer.SetAutoStop(true)
	writer.SetTrackerLength(40)
	writer.SetUpdateFrequency(100 * time.Millisecond)
	writer.SetStyle(progress.StyleDefault)
	writer.Style().Options.DoneString = ""
	writer.Style().Visibility.ETA = true
	writer.Style().Visibility.TrackerOverall = false

	tracker := &progress.Tracker{
		Message: message,
		Total:   int64(total),
		Units:   progress.UnitsDefault,
	}
	writer.AppendTracker(tracker)

	done := make(chan struct{})
	go func() {
		writer.Render()
		close(done)
	}()

	b.writer = writer
	b.tracker = tracker
	b.done = done
}

// Increment advances the current tracker by one step
func (b *Bar) Increment() {
	b.mu.Lock()
	tracker := b.tracker
	b.mu.Unlock()

	if tracker != nil {
		tracker.Increment(1)
	}
}

// Finish marks the tracker done with message and waits for the final render
func (b *Bar) Finish(message string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.finishLocked(message)
}

func (b *Bar) finishLocked(message string) {
	if b.tracker == nil {
		return
	}
	if message != "" {
		b.tracker.UpdateMessage(message)
	}
	b.tracker.MarkAsDone()
	<-b.done

	b.writer = nil
	b.tracker = nil
	b.done = nil
}

// Silent discards all progress updates
type Silent struct{}

// Start implements interfaces.Progress
func (Silent) Start(string, int) {}

// Increment implements interfaces.Progress
func (Silent) Increment() {}

// Finish implements interfaces.Progress
func (Silent) Finish(string) {}

var (
	_ interfaces.Progress = (*Bar)(nil)
	_ interfaces.Progress = Silent{}
)
