package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/grafana/hello-rand/pkg/clock"
	"github.com/grafana/hello-rand/pkg/random"
	"github.com/grafana/hello-rand/pkg/retry"
)

// Values set by goreleaser during the build process using ldflags.
// https://goreleaser.com/cookbooks/using-main.version/
var (
	// Current Git tag (the v prefix is stripped) or the name of the snapshot, if you're using the --snapshot flag
	version string
	// Current git commit SHA
	commit string
	// Date in the RFC3339 format
	date string
)

const logLevelWarn = "warn"

type mainFlags struct {
	PrintHelp       bool
	LogLevel        string
	Min             int
	Max             int
	SimulateFailure string
	// MetricsFile is where generation metrics are written on exit, in the
	// prometheus text format. Empty disables it.
	MetricsFile string
}

func (mf *mainFlags) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&mf.PrintHelp, "h", false, "Print help")
	fs.StringVar(&mf.LogLevel, "log.level", logLevelWarn, `"debug", "info", "warn" or "error"`)
	fs.IntVar(&mf.Min, "min", random.DefaultBounds.Min, "Smallest number that can be generated")
	fs.IntVar(&mf.Max, "max", random.DefaultBounds.Max, "Largest number that can be generated")
	fs.StringVar(&mf.SimulateFailure, "simulate-failure", random.PolicyClock,
		`When to simulate a generation failure: "clock" (every tenth second), "always" or "never"`)
	fs.StringVar(&mf.MetricsFile, "metrics.file", "", "Write metrics to this file before exiting")
}

func validateLogLevel(lvl string) error {
	switch lvl {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level: %s", lvl)
	}
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr, clock.NewSystemClock()))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer, clk clock.Clock) int {
	mf := &mainFlags{}
	retryOpts := retry.DefaultOpts()

	usageFn, err := parseFlags(args, stderr, mf.RegisterFlags, retryOpts.RegisterFlags)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "cannot parse flags")
		return 1
	}

	if mf.PrintHelp {
		usageFn()
		return 0
	}

	if err := validateLogLevel(mf.LogLevel); err != nil {
		usageFn()
		fmt.Fprintf(stderr, "setting log level: %s\n", err)
		return 1
	}

	logger := setupLogger(stderr, mf.LogLevel)

	level.Debug(logger).Log("msg", "hello info",
		"version", fmt.Sprintf("v%s", version),
		"commit", commit,
		"date", date,
		"os", runtime.GOOS,
		"arch", runtime.GOARCH,
	)

	policy, err := random.ParsePolicy(mf.SimulateFailure, clk)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	bounds := random.Bounds{Min: mf.Min, Max: mf.Max}
	if err := bounds.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	reg := prometheus.NewRegistry()
	gen, err := random.NewGenerator(
		random.WithPolicy(policy),
		random.WithLogger(logger),
		random.WithRegisterer(reg),
	)
	if err != nil {
		level.Error(logger).Log("msg", "cannot create generator", "err", err)
		return 1
	}

	n, err := generate(logger, gen, bounds, retryOpts)
	writeMetrics(logger, mf.MetricsFile, reg)

	if err != nil {
		fmt.Fprintf(stderr, "Error generating random number: %s\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Hello, world! %d\n", n)
	return 0
}

func generate(logger log.Logger, gen *random.Generator, bounds random.Bounds, opts retry.Opts) (int, error) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var n int
	err := retry.Do(ctx, logger, opts, func() error {
		res := gen.Generate(bounds)
		n = res.Value
		return res.Err
	})

	return n, err
}

func writeMetrics(logger log.Logger, path string, g prometheus.Gatherer) {
	if path == "" {
		return
	}

	if err := prometheus.WriteToTextfile(path, g); err != nil {
		level.Warn(logger).Log("msg", "failed to write metrics", "path", path, "err", err)
	}
}

// parseFlags creates a flagset, registers all given flags, and parses. It
// returns the flagset's usage function and the parsing error.
func parseFlags(args []string, output io.Writer, registerers ...func(fs *flag.FlagSet)) (func(), error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `Usage of %s:
`, args[0])
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), `

With no flags, %s prints a greeting with a number between 1 and 100, and fails
once every ten seconds to show how errors are reported.
`, args[0])
	}

	for _, r := range registerers {
		r(fs)
	}

	return fs.Usage, fs.Parse(args[1:])
}

// setupLogger with level filter.
func setupLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(lvl, level.WarnValue())))
	logger = log.With(logger, "caller", log.DefaultCaller)
	logger = log.With(logger, "ts", log.DefaultTimestamp)

	return logger
}
