package interval_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/goto/foundry/internal/lib/interval"
)

func TestInterval(t *testing.T) {
	day := time.Date(2025, 4, 14, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
	}

	t.Run("Overlaps", func(t *testing.T) {
		t.Run("returns true when windows intersect", func(t *testing.T) {
			i1 := interval.NewInterval(at(8, 0), at(12, 0))
			i2 := interval.NewInterval(at(11, 0), at(13, 0))
			assert.True(t, i1.Overlaps(i2))
			assert.True(t, i2.Overlaps(i1))
		})
		t.Run("returns false for touching windows", func(t *testing.T) {
			i1 := interval.NewInterval(at(8, 0), at(12, 0))
			i2 := interval.NewInterval(at(12, 0), at(13, 0))
			assert.False(t, i1.Overlaps(i2))
			assert.False(t, i2.Overlaps(i1))
		})
		t.Run("returns false for disjoint windows", func(t *testing.T) {
			i1 := interval.NewInterval(at(8, 0), at(9, 0))
			i2 := interval.NewInterval(at(10, 0), at(11, 0))
			assert.False(t, i1.Overlaps(i2))
		})
	})
	t.Run("Hours", func(t *testing.T) {
		t.Run("returns window length in hours", func(t *testing.T) {
			i1 := interval.NewInterval(at(8, 0), at(16, 30))
			assert.Equal(t, 8.5, i1.Hours())
		})
	})
	t.Run("OverlapHours", func(t *testing.T) {
		t.Run("returns length of intersection", func(t *testing.T) {
			i1 := interval.NewInterval(at(8, 0), at(12, 0))
			i2 := interval.NewInterval(at(10, 0), at(14, 0))
			assert.Equal(t, 2.0, i1.OverlapHours(i2))
		})
		t.Run("returns zero for disjoint windows", func(t *testing.T) {
			i1 := interval.NewInterval(at(8, 0), at(9, 0))
			i2 := interval.NewInterval(at(9, 0), at(10, 0))
			assert.Equal(t, 0.0, i1.OverlapHours(i2))
		})
		t.Run("returns full length for contained window", func(t *testing.T) {
			i1 := interval.NewInterval(at(8, 0), at(16, 0))
			i2 := interval.NewInterval(at(10, 0), at(11, 0))
			assert.Equal(t, 1.0, i1.OverlapHours(i2))
		})
	})
	t.Run("Equal", func(t *testing.T) {
		t.Run("compares boundaries", func(t *testing.T) {
			i1 := interval.NewInterval(at(8, 0), at(9, 0))
			i2 := interval.NewInterval(at(8, 0), at(9, 0))
			assert.True(t, i1.Equal(i2))
			assert.False(t, i1.Equal(interval.NewInterval(at(8, 0), at(10, 0))))
		})
	})
}
