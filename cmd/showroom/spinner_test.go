package main

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"showroom/internal/ui"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestFormatStageMessage(t *testing.T) {
	tests := []struct {
		stage  ui.StartupStage
		detail string
		want   string
	}{
		{ui.StartupStageLoadingRecords, "", "Parking vehicles..."},
		{ui.StartupStageOpeningInventory, " file:lot.yaml ", "Unlocking the lot... - file:lot.yaml"},
		{ui.StartupStageInit, "", "Warming up..."},
	}
	for _, tt := range tests {
		if got := formatStageMessage(tt.stage, tt.detail); got != tt.want {
			t.Errorf("formatStageMessage(%v, %q) = %q, want %q", tt.stage, tt.detail, got, tt.want)
		}
	}
}

func TestStartupSpinnerRendersAndClears(t *testing.T) {
	var buf syncBuffer
	sp := newCustomStartupSpinner(&buf, 0, 5*time.Millisecond)
	sp.Stage(ui.StartupStageComputingFacets, "")

	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(buf.String(), "Sorting by brand and model...") {
		if time.Now().After(deadline) {
			t.Fatal("spinner never rendered the stage")
		}
		time.Sleep(5 * time.Millisecond)
	}
	sp.Stop()
	sp.Stop()
	if !strings.HasSuffix(buf.String(), "\r\033[2K") {
		t.Fatalf("expected the line cleared on stop, got %q", buf.String())
	}
	sp.Stage(ui.StartupStageReady, "")
}

func TestStartupSpinnerStaysHiddenForFastLoads(t *testing.T) {
	var buf syncBuffer
	sp := newCustomStartupSpinner(&buf, time.Hour, time.Millisecond)
	sp.Stage(ui.StartupStageLoadingRecords, "")
	time.Sleep(20 * time.Millisecond)
	sp.Stop()
	if buf.String() != "" {
		t.Fatalf("expected no output before the delay, got %q", buf.String())
	}
}

func TestNilSpinnerIsSafe(t *testing.T) {
	var sp *startupSpinner
	sp.Stage(ui.StartupStageReady, "")
	sp.Stop()
}
