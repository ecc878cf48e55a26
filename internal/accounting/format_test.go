package accounting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatTRY(t *testing.T) {
	tests := []struct {
		name   string
		amount int
		want   string
	}{
		{"zero", 0, "₺0"},
		{"small", 950, "₺950"},
		{"thousands", 12500, "₺12.500"},
		{"millions", 1485000, "₺1.485.000"},
		{"negative", -74000, "-₺74.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatTRY(tt.amount))
		})
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "06.08.2025", formatDate("2025-08-06"))
	assert.Equal(t, "not-a-date", formatDate("not-a-date"))
}

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name string
		old  int
		new  int
		want float64
	}{
		{"growth", 1485000, 1740000, 17.17},
		{"decline", 1740000, 1485000, -14.66},
		{"flat", 500, 500, 0},
		{"zero base", 0, 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, percentChange(tt.old, tt.new), 0.001)
		})
	}
}

func TestTrendEmoji(t *testing.T) {
	assert.Equal(t, "📈", trendEmoji(0.01))
	assert.Equal(t, "📉", trendEmoji(0))
	assert.Equal(t, "📉", trendEmoji(-3.5))
}
