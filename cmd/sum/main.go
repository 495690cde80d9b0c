package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/grafana/hello-rand/pkg/sum"
)

var defaultNumbers = []int{1, 2, 3, 4, 5}

type mainFlags struct {
	PrintHelp bool
	LogLevel  string
}

func (mf *mainFlags) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&mf.PrintHelp, "h", false, "Print help")
	fs.StringVar(&mf.LogLevel, "log.level", "warn", `"debug", "info", "warn" or "error"`)
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	mf := &mainFlags{}

	fs, err := parseFlags(args, stderr, mf.RegisterFlags)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "cannot parse flags")
		return 1
	}

	if mf.PrintHelp {
		fs.Usage()
		return 0
	}

	logger := setupLogger(stderr, mf.LogLevel)

	numbers, err := parseNumbers(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	level.Debug(logger).Log("msg", "summing numbers", "count", len(numbers))

	total, err := sum.Calculate(numbers)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Sum: %d\n", total)
	return 0
}

// parseFlags creates a flagset, registers all given flags, and parses. Flag
// parsing stops at the first integer so negative numbers are not taken for
// flags.
func parseFlags(args []string, output io.Writer, registerers ...func(fs *flag.FlagSet)) (*flag.FlagSet, error) {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `Usage of %s: [flags] [numbers...]
`, args[0])
		fs.PrintDefaults()
		fmt.Fprintf(fs.Output(), `

Numbers default to 1 2 3 4 5. Negative numbers may be given directly
(%s -3 4) or after "--".
`, args[0])
	}

	for _, r := range registerers {
		r(fs)
	}

	return fs, fs.Parse(separateNumbers(args[1:]))
}

// separateNumbers inserts "--" before the first integer argument.
func separateNumbers(args []string) []string {
	for i, a := range args {
		if a == "--" {
			return args
		}
		if _, err := strconv.Atoi(a); err == nil {
			out := make([]string, 0, len(args)+1)
			out = append(out, args[:i]...)
			out = append(out, "--")
			return append(out, args[i:]...)
		}
	}
	return args
}

// setupLogger with level filter.
func setupLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(lvl, level.WarnValue())))
	logger = log.With(logger, "caller", log.DefaultCaller)
	logger = log.With(logger, "ts", log.DefaultTimestamp)

	return logger
}

func parseNumbers(args []string) ([]int, error) {
	if len(args) == 0 {
		return defaultNumbers, nil
	}

	numbers := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", a)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}
