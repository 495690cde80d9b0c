package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMockClock(t *testing.T) {
	start := time.Unix(1700000000, 0)
	c := NewMockClock(start)

	assert.Equal(t, start, c.Now())

	c.Advance(3 * time.Second)
	assert.Equal(t, int64(1700000003), c.Now().Unix())
}

func TestSystemClock(t *testing.T) {
	before := time.Now()
	now := NewSystemClock().Now()

	assert.False(t, now.Before(before))
}
