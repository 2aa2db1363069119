// crossfill fills a crossword structure from a word list:
//
//	crossfill [flags] structure.txt words.txt [output.png]
//
// With --batch=jobs.yaml it instead runs every job listed in the file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/crossfill/crossfill/config"
	"github.com/crossfill/crossfill/grid"
	"github.com/crossfill/crossfill/render"
	"github.com/crossfill/crossfill/solver"
	"github.com/crossfill/crossfill/wordlist"
)

func main() {
	cfg := &config.Config{}
	if err := cfg.Load(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	var logger zerolog.Logger
	if cfg.GetBool(config.Debug) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(output).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		logger = zerolog.New(output).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	}
	log.Logger = logger

	if profile := cfg.GetString(config.CPUProfile); profile != "" {
		f, err := os.Create(profile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	if batchFile := cfg.GetString(config.Batch); batchFile != "" {
		if err := runBatch(cfg, batchFile); err != nil {
			log.Fatal().Err(err).Msg("batch failed")
		}
		return
	}

	args := cfg.Args()
	if len(args) != 2 && len(args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: crossfill [flags] structure words [output.png]")
		os.Exit(2)
	}
	j := job{Structure: args[0], Words: args[1]}
	if len(args) == 3 {
		j.Output = args[2]
	}
	if err := runJob(cfg, j, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("solve failed")
	}
}

// A job names the inputs of one fill. Batch files hold a YAML list of these.
type job struct {
	Structure string `yaml:"structure"`
	Words     string `yaml:"words"`
	Output    string `yaml:"output,omitempty"`
}

func runBatch(cfg *config.Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var jobs []job
	if err := yaml.Unmarshal(content, &jobs); err != nil {
		return fmt.Errorf("parsing batch file %s: %w", path, err)
	}
	log.Info().Int("jobs", len(jobs)).Str("path", path).Msg("running batch")
	for i, j := range jobs {
		fmt.Printf("--- job %d: %s + %s\n", i+1, j.Structure, j.Words)
		if err := runJob(cfg, j, os.Stdout); err != nil {
			return fmt.Errorf("job %d (%s): %w", i+1, j.Structure, err)
		}
	}
	return nil
}

func runJob(cfg *config.Config, j job, out *os.File) error {
	// The structure and the word list are independent files; load them
	// concurrently.
	var g *grid.Grid
	var words *wordlist.Set
	eg, _ := errgroup.WithContext(context.Background())
	eg.Go(func() error {
		var err error
		g, err = grid.Load(cfg, resolve(cfg, j.Structure))
		return err
	})
	eg.Go(func() error {
		var err error
		words, err = wordlist.Load(cfg, resolve(cfg, j.Words))
		return err
	})
	if err := eg.Wait(); err != nil {
		return err
	}

	filler := solver.New(g, words, solver.Options{
		Randomize: cfg.GetBool(config.Randomize),
	})
	ctx := context.Background()
	if timeout := cfg.GetDuration(config.SolveTimeout); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	start := time.Now()
	a, err := filler.Solve(ctx)
	switch {
	case errors.Is(err, solver.ErrNoSolution):
		// A valid negative outcome, not a failure.
		fmt.Fprintln(out, "No solution.")
		return nil
	case errors.Is(err, context.DeadlineExceeded):
		fmt.Fprintln(out, "No solution found within the time limit.")
		return nil
	case err != nil:
		return err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("solved")

	fmt.Fprint(out, render.Text(g, a))
	if j.Output != "" {
		if err := render.SavePNG(g, a, j.Output); err != nil {
			return err
		}
		log.Info().Str("path", j.Output).Msg("wrote image")
	}
	return nil
}

// resolve leaves absolute paths and paths to existing files alone, and
// otherwise tries them under the configured data directory.
func resolve(cfg *config.Config, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return filepath.Join(cfg.GetString(config.DataPath), path)
}
