package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/b-paul/chess-engine/internal/batch"
	"github.com/b-paul/chess-engine/internal/board"
	"github.com/b-paul/chess-engine/internal/store"
)

var (
	fenFlag    = flag.String("fen", board.StartFEN, "FEN of the position to generate for")
	fileFlag   = flag.String("file", "", "read one FEN per line from file (- for stdin)")
	workers    = flag.Int("workers", runtime.GOMAXPROCS(0), "positions generated concurrently in file mode")
	cacheDir   = flag.String("cache", "", "cache results in this directory (auto for the default data dir)")
	mode       = flag.String("mode", "all", "moves to print: quiet, noisy or all")
	verbose    = flag.Bool("v", false, "log per-position timings and cache hits")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("movegen: ")

	if *mode != "quiet" && *mode != "noisy" && *mode != "all" {
		log.Fatalf("unknown -mode %q", *mode)
	}

	if err := execute(); err != nil {
		log.Print(err)
		os.Exit(1)
	}
}

// execute owns every resource that must be released before exit.
func execute() error {
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	opts := []batch.Option{batch.WithWorkers(*workers)}
	if *verbose {
		opts = append(opts, batch.WithLogger(log.New(os.Stderr, "movegen: ", log.Lmicroseconds)))
	}
	if *cacheDir != "" {
		dir := *cacheDir
		if dir == "auto" {
			dir = ""
		}
		s, err := store.Open(dir)
		if err != nil {
			return err
		}
		defer s.Close()
		opts = append(opts, batch.WithStore(s))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return run(ctx, opts)
}

func run(ctx context.Context, opts []batch.Option) error {
	if *fileFlag == "" {
		results, err := batch.Run(ctx, []string{*fenFlag}, opts...)
		if err != nil {
			return err
		}
		res := results[0]
		if res.Err != nil {
			return res.Err
		}
		for _, m := range selected(res) {
			fmt.Println(m)
		}
		return nil
	}

	fens, err := readFENs(*fileFlag)
	if err != nil {
		return err
	}
	results, err := batch.Run(ctx, fens, opts...)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Printf("%s\terror: %v\n", res.FEN, res.Err)
			continue
		}
		fmt.Printf("%s\tquiet %d\tnoisy %d\n", res.FEN, len(res.Quiet), len(res.Noisy))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d positions failed", failed, len(results))
	}
	return nil
}

func selected(res batch.Result) []string {
	switch *mode {
	case "quiet":
		return res.Quiet
	case "noisy":
		return res.Noisy
	default:
		return append(append([]string(nil), res.Quiet...), res.Noisy...)
	}
}

// readFENs returns the non-blank lines of path, skipping # comments.
func readFENs(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}

	var fens []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fens = append(fens, line)
	}
	return fens, sc.Err()
}
