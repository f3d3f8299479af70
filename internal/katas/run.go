package katas

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/deadlyengineer/functional-streams-with-go/internal/config"
	"github.com/deadlyengineer/functional-streams-with-go/internal/logging"
)

// Main runs the kata with the given name as a program, and exits the process.
func Main(name string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	code := Run(ctx, name, os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// Run loads the configuration, runs the kata with the given name, and returns the process exit code.
// The narration is written to stdout, and logs are written to stderr.
// If the kata fails, the error message is written as the last line of stdout, and the exit code is 1.
func Run(ctx context.Context, name string, stdout io.Writer, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stdout, err.Error())
		return 1
	}

	log := logging.New(cfg.Log, stderr).With().Str(logging.FieldScenario, name).Logger()

	kata, ok := Lookup(name)
	if !ok {
		err = fmt.Errorf("unknown kata: %s", name)
		log.Error().Err(err).Msg("scenario failed")
		fmt.Fprintln(stdout, err.Error())

		return 1
	}

	env := Env{
		Out:    stdout,
		Log:    log,
		Config: cfg,
	}

	return runKata(ctx, kata, &env)
}

func runKata(ctx context.Context, kata Kata, env *Env) int {
	start := time.Now()

	env.Log.Info().Msg("scenario started")

	if err := kata(ctx, env); err != nil {
		env.Log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("scenario failed")
		fmt.Fprintln(env.Out, err.Error())

		return 1
	}

	env.Log.Info().Dur("elapsed", time.Since(start)).Msg("scenario finished")

	return 0
}
