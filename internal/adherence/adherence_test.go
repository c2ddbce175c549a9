package adherence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		logCount   int
		windowDays int
		want       int
	}{
		{"full week", 7, 7, 100},
		{"no logs", 0, 7, 0},
		{"duplicates push past 100", 10, 7, 143},
		{"two logs in one day", 2, 1, 200},
		{"partial week", 3, 7, 43},
		{"thirty day window", 15, 30, 50},
		{"zero window", 5, 0, 0},
		{"negative window", 5, -1, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Percentage(tt.logCount, tt.windowDays))
		})
	}
}

func TestAggregatePercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		totalLogs      int
		numMedications int
		windowDays     int
		want           int
	}{
		{"perfect adherence", 60, 2, 30, 100},
		{"half adherence", 30, 2, 30, 50},
		{"no medications", 0, 0, 30, 0},
		{"no logs", 0, 3, 30, 0},
		{"overcounting is not clamped", 90, 2, 30, 150},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, AggregatePercentage(tt.totalLogs, tt.numMedications, tt.windowDays))
		})
	}
}
