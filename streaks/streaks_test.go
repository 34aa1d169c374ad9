package streaks_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"starlab/streaks"
)

func TestCountStreaks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		row    []uint8
		length int
		want   int
	}{
		{"empty row", nil, 7, 0},
		{"length zero", []uint8{0, 0, 0}, 0, 0},
		{"length exceeds row", []uint8{0, 0, 0}, 4, 0},
		{"whole row is the streak", []uint8{1, 1, 1, 1, 1, 1, 1}, 7, 1},
		{"run one longer does not count", []uint8{1, 1, 1, 1, 1, 1, 1, 1}, 7, 0},
		{"streak at start", []uint8{0, 0, 0, 0, 0, 0, 0, 1}, 7, 1},
		{"streak at end", []uint8{1, 0, 0, 0, 0, 0, 0, 0}, 7, 1},
		{"interior streak", []uint8{1, 0, 0, 0, 0, 0, 0, 0, 1}, 7, 1},
		{"two adjacent streaks", []uint8{0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1}, 7, 2},
		{"alternating singles", []uint8{0, 1, 0}, 1, 3},
		{"pair among singles", []uint8{0, 0, 1}, 2, 1},
		{"no qualifying run", []uint8{0, 1, 1, 0, 1}, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, streaks.CountStreaks(tt.row, tt.length))
		})
	}
}

func TestExact(t *testing.T) {
	t.Parallel()

	// 1 - (1-0.5^8)^2 * (1-0.5^9)^92
	assert.InDelta(t, 0.1711292, streaks.Exact(100, 7), 1e-6)

	// Degenerate inputs.
	assert.Zero(t, streaks.Exact(5, 7))
	assert.Zero(t, streaks.Exact(100, 0))

	// flips == length: the whole sequence must be identical.
	assert.InDelta(t, 0.015625, streaks.Exact(7, 7), 1e-15)
}
