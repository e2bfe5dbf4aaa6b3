package viewport

import (
	"math"
	"testing"
)

func TestWheelEvent_PixelDeltaY(t *testing.T) {
	testCases := map[string]struct {
		input    WheelEvent
		expected float64
	}{
		"Pixel": {
			input:    WheelEvent{DeltaY: 100},
			expected: 100,
		},
		"PixelNegative": {
			input:    WheelEvent{DeltaY: -4.5},
			expected: -4.5,
		},
		"LineNotch": {
			input:    WheelEvent{DeltaY: 3, DeltaMode: DeltaLine},
			expected: 100,
		},
		"Page": {
			input:    WheelEvent{DeltaY: -1, DeltaMode: DeltaPage},
			expected: -800,
		},
		"UnknownMode": {
			input:    WheelEvent{DeltaY: 7, DeltaMode: DeltaMode(9)},
			expected: 7,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			if o := tt.input.PixelDeltaY(); math.Abs(o-tt.expected) > 1e-9 {
				t.Errorf("Expected: %f, got: %f", tt.expected, o)
			}
		})
	}
}
