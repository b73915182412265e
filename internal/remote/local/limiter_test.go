package local

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_Allow(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	l := newLimiter(2, time.Second)
	assert.True(t, l.allow("a", t0))
	assert.True(t, l.allow("a", t0))
	assert.False(t, l.allow("a", t0))
	assert.True(t, l.allow("b", t0))
	assert.True(t, l.allow("a", t0.Add(time.Second)))

	assert.True(t, newLimiter(0, time.Second).allow("a", t0))
}

func TestLimiter_Sweep(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	l := newLimiter(1, time.Second)
	l.minSweep, l.sweepAt = 4, 4

	for i := 0; i < 4; i++ {
		assert.True(t, l.allow(fmt.Sprintf("user%d@example.com", i), t0))
	}

	// nothing has refilled yet, so a new key keeps every bucket
	assert.True(t, l.allow("late@example.com", t0.Add(500*time.Millisecond)))
	assert.Len(t, l.buckets, 5)
	assert.Equal(t, 8, l.sweepAt)
	assert.False(t, l.allow("user0@example.com", t0.Add(500*time.Millisecond)))

	for i := 5; i < 8; i++ {
		assert.True(t, l.allow(fmt.Sprintf("user%d@example.com", i), t0.Add(time.Second)))
	}
	assert.Len(t, l.buckets, 8)

	// refilled buckets are dropped once the map reaches the threshold
	assert.True(t, l.allow("new@example.com", t0.Add(10*time.Second)))
	assert.Len(t, l.buckets, 1)
	assert.Equal(t, 4, l.sweepAt)
}
