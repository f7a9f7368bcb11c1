// Command materialprobe computes material evaluation records for positions
// given as FEN lines, one per line, from a file or stdin. Each worker owns a
// private material cache; only the endgame registry is shared.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/hailam/materialeval/internal/board"
	"github.com/hailam/materialeval/internal/endgame"
	"github.com/hailam/materialeval/internal/eval"
	"github.com/hailam/materialeval/internal/storage"
)

var (
	fensPath    = flag.String("fens", "", "file with one FEN per line (default stdin)")
	jobs        = flag.Int("jobs", 1, "number of workers, each with a private material cache")
	variantName = flag.String("variant", "standard", "rule variant: standard or antichess")
	dbPath      = flag.String("db", "", "optional badger directory to persist records")
	verbose     = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	variant, err := board.ParseVariant(*variantName)
	if err != nil {
		log.Fatal().Err(err).Msg("bad -variant")
	}

	var store *storage.Store
	if *dbPath != "" {
		store, err = storage.Open(*dbPath)
		if err != nil {
			log.Fatal().Err(err).Str("dir", *dbPath).Msg("open store")
		}
		defer store.Close()
	}

	input := os.Stdin
	if *fensPath != "" {
		f, err := os.Open(*fensPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *fensPath).Msg("open fens")
		}
		defer f.Close()
		input = f
	}

	if err := run(context.Background(), log, input, store, variant); err != nil {
		log.Fatal().Err(err).Msg("analysis failed")
	}
}

type result struct {
	fen string
	key uint64
	rec storage.Record
}

func run(ctx context.Context, log zerolog.Logger, input *os.File, store *storage.Store, variant board.Variant) error {
	registry := endgame.NewRegistry()

	g, ctx := errgroup.WithContext(ctx)

	fens := make(chan string, 128)
	results := make(chan result, 128)

	g.Go(func() error {
		defer close(fens)
		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			select {
			case fens <- line:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return scanner.Err()
	})

	var wg sync.WaitGroup
	for i := 0; i < *jobs; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return analyze(ctx, log, registry, variant, fens, results)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	g.Go(func() error {
		for r := range results {
			fmt.Printf("%s\tkey=%016x value=%d phase=%d factor=%d/%d specialized=%t score=%d\n",
				r.fen, r.key, r.rec.Value, r.rec.GamePhase,
				r.rec.Factor[0], r.rec.Factor[1], r.rec.Specialized, r.rec.Score)

			if store != nil {
				if err := store.Put(r.key, r.rec); err != nil {
					return err
				}
			}
		}
		return nil
	})

	return g.Wait()
}

// analyze is one worker: it owns its evaluator (and so its material cache)
// for its whole lifetime, which is what makes the lock-free probe path safe.
func analyze(ctx context.Context, log zerolog.Logger, registry *endgame.Registry, variant board.Variant, fens <-chan string, results chan<- result) error {
	ev := eval.NewEvaluator(registry)

	for {
		var fen string
		select {
		case f, ok := <-fens:
			if !ok {
				return nil
			}
			fen = f
		case <-ctx.Done():
			return ctx.Err()
		}

		pos, err := board.ParseFENVariant(fen, variant)
		if err != nil {
			log.Warn().Err(err).Str("fen", fen).Msg("skipping position")
			continue
		}

		entry := ev.Probe(pos)
		log.Debug().Str("fen", fen).Uint64("key", pos.MaterialKey).Msg("probed")

		r := result{
			fen: fen,
			key: pos.MaterialKey,
			rec: storage.Record{
				FEN:       fen,
				Variant:   variant.String(),
				Value:     entry.Value(),
				GamePhase: entry.GamePhase(),
				Factor: [2]uint8{
					uint8(entry.ScaleFactor(pos, board.White)),
					uint8(entry.ScaleFactor(pos, board.Black)),
				},
				Specialized: entry.Specialized(),
				Score:       ev.Evaluate(pos),
			},
		}

		select {
		case results <- r:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
