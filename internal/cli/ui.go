package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/dhcalc/internal/format"
	"github.com/agbru/dhcalc/internal/orchestration"
)

// ProgressRefreshRate is the spinner frame and elapsed-time refresh interval.
const ProgressRefreshRate = 200 * time.Millisecond

// Spinner abstracts a terminal spinner so the progress reporter can be
// tested without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner followed by the label and the elapsed time.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// Begin starts a spinner on out and returns the function that stops it.
func (CLIProgressReporter) Begin(label string, out io.Writer) func() {
	return DisplayProgress(label, out)
}

// DisplayProgress shows a spinner with label and a running elapsed time
// until the returned function is called. The stop function is idempotent.
func DisplayProgress(label string, out io.Writer) func() {
	s := newSpinner(spinner.WithWriter(out))
	start := time.Now()
	s.UpdateSuffix(" " + label)
	s.Start()

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(ProgressRefreshRate)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.UpdateSuffix(fmt.Sprintf(" %s (%s)", label, format.FormatExecutionDuration(time.Since(start).Round(time.Millisecond))))
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
			s.Stop()
		})
	}
}
