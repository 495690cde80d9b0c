package random

import (
	"fmt"

	"github.com/grafana/hello-rand/pkg/clock"
)

const (
	PolicyClock  = "clock"
	PolicyAlways = "always"
	PolicyNever  = "never"
)

// FailurePolicy reports whether the next generation should fail.
type FailurePolicy func() bool

// FailsAt reports whether a generation made at the given unix second fails.
func FailsAt(clockSeconds uint64) bool {
	return clockSeconds%10 == 0
}

// ClockPolicy fails once every ten seconds of wall clock time.
func ClockPolicy(c clock.Clock) FailurePolicy {
	return func() bool {
		return FailsAt(uint64(c.Now().Unix()))
	}
}

// Always fails every generation.
func Always() FailurePolicy { return func() bool { return true } }

// Never lets every generation succeed.
func Never() FailurePolicy { return func() bool { return false } }

// ParsePolicy returns the policy named by one of PolicyClock, PolicyAlways or PolicyNever.
func ParsePolicy(name string, c clock.Clock) (FailurePolicy, error) {
	switch name {
	case PolicyClock:
		return ClockPolicy(c), nil
	case PolicyAlways:
		return Always(), nil
	case PolicyNever:
		return Never(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
