package random

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
)

// Bounds is an inclusive range of integers.
type Bounds struct {
	Min int
	Max int
}

// DefaultBounds are the bounds used by the hello command.
var DefaultBounds = Bounds{Min: 1, Max: 100}

// Validate returns ErrInvalidRange when Min is greater than Max.
func (b Bounds) Validate() error {
	if b.Min > b.Max {
		return fmt.Errorf("%w: min=%d max=%d", ErrInvalidRange, b.Min, b.Max)
	}
	return nil
}

// Result is the outcome of one generation. Err is nil on success.
type Result struct {
	Value int
	Err   error
}

// OK reports whether the generation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

type options struct {
	source     Source
	policy     FailurePolicy
	logger     log.Logger
	registerer prometheus.Registerer
}

// Option configures a Generator.
type Option func(*options)

// WithSource draws numbers from s instead of math/rand.
func WithSource(s Source) Option {
	return func(o *options) {
		o.source = s
	}
}

// WithPolicy decides which generations fail. The default never fails.
func WithPolicy(p FailurePolicy) Option {
	return func(o *options) {
		o.policy = p
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRegisterer registers the generator metrics on r.
func WithRegisterer(r prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = r
	}
}

// Generator draws uniformly distributed numbers and fails whenever its
// policy says so.
type Generator struct {
	source  Source
	policy  FailurePolicy
	logger  log.Logger
	metrics *promMetrics
}

// NewGenerator returns a Generator. It fails only if metrics cannot be registered.
func NewGenerator(opts ...Option) (*Generator, error) {
	opt := &options{
		source: defaultSource{},
		policy: Never(),
		logger: log.NewNopLogger(),
	}
	for _, o := range opts {
		o(opt)
	}

	m := newPromMetrics()
	if opt.registerer != nil {
		if err := m.register(opt.registerer); err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
	}

	return &Generator{
		source:  opt.source,
		policy:  opt.policy,
		logger:  opt.logger,
		metrics: m,
	}, nil
}

// Generate returns a number in b, or ErrSimulatedFailure when the policy fails the call.
func (g *Generator) Generate(b Bounds) Result {
	if err := b.Validate(); err != nil {
		g.metrics.generations.WithLabelValues("invalid").Inc()
		return Result{Err: err}
	}

	if g.policy() {
		level.Debug(g.logger).Log("msg", "simulating random generation failure")
		g.metrics.generations.WithLabelValues("failure").Inc()
		return Result{Err: ErrSimulatedFailure}
	}

	n := rangeFrom(g.source, b.Min, b.Max)
	level.Debug(g.logger).Log("msg", "generated random number", "value", n, "min", b.Min, "max", b.Max)
	g.metrics.generations.WithLabelValues("success").Inc()
	g.metrics.values.WithLabelValues().Observe(float64(n))

	return Result{Value: n}
}

// Generate draws a number in b unless clockSeconds falls on a multiple of ten.
func Generate(b Bounds, clockSeconds uint64) Result {
	g := &Generator{
		source:  defaultSource{},
		policy:  func() bool { return FailsAt(clockSeconds) },
		logger:  log.NewNopLogger(),
		metrics: newPromMetrics(),
	}
	return g.Generate(b)
}
