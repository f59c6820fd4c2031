package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextBusinessDay(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"weekday unchanged", Date(2025, time.April, 15), Date(2025, time.April, 15)},
		{"sunday moves to monday", Date(2025, time.June, 15), Date(2025, time.June, 16)},
		{"saturday moves to monday", Date(2026, time.August, 15), Date(2026, time.August, 17)},
		{"across a month end", Date(2025, time.May, 31), Date(2025, time.June, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextBusinessDay(tt.in)
			assert.True(t, tt.want.Equal(got), "got %s, want %s", got.Format(time.DateOnly), tt.want.Format(time.DateOnly))
			assert.False(t, IsWeekend(got))
		})
	}
}

func TestIsWeekend(t *testing.T) {
	assert.True(t, IsWeekend(Date(2025, time.June, 14)))
	assert.True(t, IsWeekend(Date(2025, time.June, 15)))
	assert.False(t, IsWeekend(Date(2025, time.June, 16)))
}
