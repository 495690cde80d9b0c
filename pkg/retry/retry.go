package retry

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/grafana/dskit/backoff"
)

type Opts struct {
	// Attempts is the total number of calls made, including the first one.
	Attempts       int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func DefaultOpts() Opts {
	return Opts{
		Attempts:       1,
		InitialBackoff: 1 * time.Second,
		MaxBackoff:     5 * time.Second,
	}
}

func (o *Opts) RegisterFlags(fs *flag.FlagSet) {
	def := DefaultOpts()

	fs.IntVar(&o.Attempts, "attempts", def.Attempts, "Number of times to try generating before giving up")
	fs.DurationVar(&o.InitialBackoff, "retry.initial-backoff", def.InitialBackoff, "Minimum wait between attempts")
	fs.DurationVar(&o.MaxBackoff, "retry.max-backoff", def.MaxBackoff, "Maximum wait between attempts")
}

// Do calls f until it succeeds, the attempts are used up or ctx is done,
// waiting a jittered, exponentially increasing amount of time between calls.
// It returns the last error returned by f.
func Do(ctx context.Context, logger log.Logger, opts Opts, f func() error) error {
	if opts.Attempts < 1 {
		opts.Attempts = 1
	}

	b := backoff.New(ctx, backoff.Config{
		MinBackoff: opts.InitialBackoff,
		MaxBackoff: opts.MaxBackoff,
		MaxRetries: opts.Attempts,
	})

	var err error
	for b.Ongoing() {
		err = f()
		if err == nil || errors.Is(err, Permanent{}) {
			return err
		}

		if b.NumRetries()+1 >= opts.Attempts {
			return err
		}

		level.Debug(logger).Log("msg", "attempt failed, retrying", "attempt", b.NumRetries()+1, "err", err)
		b.Wait()
	}

	if err == nil {
		err = b.Err()
	}
	return err
}

// Permanent marks an error that must not be retried.
type Permanent struct{}

func (e Permanent) Error() string {
	return "permanent error"
}
