package main

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hailam/materialeval/internal/board"
	"github.com/hailam/materialeval/internal/endgame"
)

func TestAnalyzeStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fens := make(chan string, 4)
	for i := 0; i < 4; i++ {
		fens <- board.StartFEN
	}
	// Not closed on purpose: without honoring cancellation the worker
	// would drain the buffer and then block here forever.
	results := make(chan result)

	err := analyze(ctx, zerolog.Nop(), endgame.NewRegistry(), board.VariantStandard, fens, results)
	if err != context.Canceled {
		t.Errorf("analyze returned %v, want context.Canceled", err)
	}
}

func TestAnalyzeDrainsClosedChannel(t *testing.T) {
	fens := make(chan string, 2)
	fens <- board.StartFEN
	fens <- "4k3/8/8/8/8/8/8/R3K3 w - - 0 1"
	close(fens)

	results := make(chan result, 2)
	err := analyze(context.Background(), zerolog.Nop(), endgame.NewRegistry(), board.VariantStandard, fens, results)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("got %d results, want 2", len(results))
	}
}
