package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadinessScore(t *testing.T) {
	tests := []struct {
		name                                 string
		pending, incidents, outside, expired int
		want                                 int
		label                                ReadinessLabel
	}{
		{"all clear", 0, 0, 0, 0, 100, ReadinessOperational},
		{"one pending absence", 1, 0, 0, 0, 85, ReadinessAttention},
		{"mixed", 1, 1, 0, 1, 60, ReadinessCritical},
		{"one outside geofence", 0, 0, 1, 0, 90, ReadinessOperational},
		{"floored", 5, 3, 2, 4, 0, ReadinessCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReadinessScore(tt.pending, tt.incidents, tt.outside, tt.expired)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.label, LabelFor(got))
		})
	}
}
