package function

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVirtualClock(t *testing.T) {
	start := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	c := NewVirtualClock(start)
	assert.Equal(t, start, c.Now())
	assert.Equal(t, start.Add(time.Minute), c.Add(time.Minute))
	assert.Equal(t, start.Add(time.Minute), c.Add(-time.Hour))
	c.Set(start)
	assert.Equal(t, start.Add(time.Minute), c.Now())
	c.Set(start.Add(time.Hour))
	assert.Equal(t, start.Add(time.Hour), c.Now())
}

func TestRealClock(t *testing.T) {
	before := time.Now()
	now := RealClock().Now()
	assert.False(t, now.Before(before))
}
