// Package simulate parses simulator flags and runs a Monty Hall batch.
package simulate

import (
	"context"
	"flag"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/montyhall/internal/montyhall"
	"github.com/louisbranch/montyhall/internal/montyhall/report"
	entrypoint "github.com/louisbranch/montyhall/internal/platform/cmd"
	"github.com/louisbranch/montyhall/internal/random"
)

// Config holds simulate command configuration.
type Config struct {
	Trials int   `env:"MONTYHALL_TRIALS" envDefault:"100"`
	Seed   int64 `env:"MONTYHALL_SEED"`
	Quiet  bool  `env:"MONTYHALL_QUIET"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "number of trials to simulate")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	fs.BoolVar(&cfg.Quiet, "q", cfg.Quiet, "suppress the seed log line")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes a simulation batch and writes the proportions table to out.
// When no seed is configured one is generated and logged to errOut so the
// run can be replayed.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSimulate, func(ctx context.Context) error {
		seed := cfg.Seed
		if seed == 0 {
			generated, err := random.NewSeed()
			if err != nil {
				return fmt.Errorf("generate seed: %w", err)
			}
			seed = generated
			if !cfg.Quiet {
				fmt.Fprintf(errOut, "Using seed: %d\n", seed)
			}
		}

		tracer := otel.Tracer("montyhall/simulate")
		_, span := tracer.Start(ctx, "simulate.run", trace.WithAttributes(
			attribute.Int("trials", cfg.Trials),
			attribute.Int64("seed", seed),
		))
		defer span.End()

		result, err := montyhall.Run(montyhall.Request{Trials: cfg.Trials, Seed: seed})
		if err != nil {
			return err
		}

		fmt.Fprintln(out, report.Render(result.Summary))
		return nil
	})
}
