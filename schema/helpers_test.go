package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRound1 tests rounding to one decimal place.
func TestRound1(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{name: "already rounded", value: 1.5, expected: 1.5},
		{name: "round down", value: 1.44, expected: 1.4},
		{name: "round up", value: 1.46, expected: 1.5},
		{name: "half rounds up", value: 1.45, expected: 1.5},
		{name: "zero", value: 0, expected: 0},
		{name: "whole number", value: 12, expected: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Round1(tt.value), 0.0001)
		})
	}
}

// TestMean tests the arithmetic mean with the empty-input convention.
func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{name: "empty slice", values: nil, expected: 0},
		{name: "single value", values: []float64{4}, expected: 4},
		{name: "several values", values: []float64{1, 2, 3, 4}, expected: 2.5},
		{name: "all zeros", values: []float64{0, 0, 0}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Mean(tt.values), 0.0001)
		})
	}
}

// TestReviewStateQualifies tests which review states count toward metrics.
func TestReviewStateQualifies(t *testing.T) {
	assert.True(t, ReviewApproved.Qualifies())
	assert.True(t, ReviewChangesRequested.Qualifies())
	assert.False(t, ReviewCommented.Qualifies())
	assert.False(t, ReviewState("DISMISSED").Qualifies())
}
