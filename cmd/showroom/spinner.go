package main

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"showroom/internal/ui"
)

const defaultSpinnerInterval = 120 * time.Millisecond

type spinnerEvent struct {
	stage  ui.StartupStage
	detail string
}

// startupSpinner draws a one-line progress indicator on stderr while the
// inventory loads. Nothing is drawn until delay has passed.
type startupSpinner struct {
	writer        io.Writer
	delay         time.Duration
	frameInterval time.Duration
	frames        []rune

	events chan spinnerEvent
	stopCh chan struct{}
	doneCh chan struct{}
	once   sync.Once

	mu       sync.Mutex
	frameIdx int
}

func newStartupSpinner(w io.Writer, delay time.Duration) *startupSpinner {
	return newCustomStartupSpinner(w, delay, defaultSpinnerInterval)
}

func newCustomStartupSpinner(w io.Writer, delay, frameInterval time.Duration) *startupSpinner {
	if w == nil {
		w = io.Discard
	}
	sp := &startupSpinner{
		writer:        w,
		delay:         delay,
		frameInterval: frameInterval,
		frames:        []rune{'◐', '◓', '◑', '◒'},
		events:        make(chan spinnerEvent, 8),
		stopCh:        make(chan struct{}),
		doneCh:        make(chan struct{}),
	}
	go sp.loop()
	return sp
}

// Stage implements ui.StartupReporter. Events are dropped once stopped or
// when the buffer is full.
func (s *startupSpinner) Stage(stage ui.StartupStage, detail string) {
	if s == nil {
		return
	}
	select {
	case <-s.stopCh:
		return
	default:
	}
	select {
	case s.events <- spinnerEvent{stage: stage, detail: detail}:
	default:
	}
}

// Stop clears the line and waits for the draw loop to exit. Safe to call
// more than once.
func (s *startupSpinner) Stop() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		close(s.stopCh)
		<-s.doneCh
	})
}

func (s *startupSpinner) loop() {
	defer close(s.doneCh)

	var delayCh <-chan time.Time
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		delayCh = timer.C
	}

	ticker := time.NewTicker(s.frameInterval)
	defer ticker.Stop()

	var current spinnerEvent
	hasStage := false
	visible := s.delay == 0

	for {
		select {
		case <-s.stopCh:
			if visible {
				s.clearLine()
			}
			return
		case ev := <-s.events:
			current = ev
			hasStage = true
			if visible {
				s.render(current)
			}
		case <-ticker.C:
			if visible && hasStage {
				s.render(current)
			}
		case <-delayCh:
			delayCh = nil
			if hasStage {
				visible = true
				s.render(current)
			}
		}
	}
}

func (s *startupSpinner) render(ev spinnerEvent) {
	_, _ = fmt.Fprintf(s.writer, "\r\033[2K%c %s", s.nextFrame(), formatStageMessage(ev.stage, ev.detail))
}

func (s *startupSpinner) clearLine() {
	_, _ = fmt.Fprint(s.writer, "\r\033[2K")
}

func (s *startupSpinner) nextFrame() rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	frame := s.frames[s.frameIdx%len(s.frames)]
	s.frameIdx++
	return frame
}

var stageMessages = map[ui.StartupStage]string{
	ui.StartupStageOpeningInventory: "Unlocking the lot...",
	ui.StartupStageLoadingRecords:   "Parking vehicles...",
	ui.StartupStageComputingFacets:  "Sorting by brand and model...",
	ui.StartupStageReady:            "Opening the showroom...",
}

func formatStageMessage(stage ui.StartupStage, detail string) string {
	msg := stageMessages[stage]
	if msg == "" {
		msg = "Warming up..."
	}
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return msg
	}
	return fmt.Sprintf("%s - %s", msg, detail)
}
