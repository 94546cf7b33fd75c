package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	tests := map[string]string{
		"Food":        "Food",
		"  food ":     "Food",
		"FOOD":        "Food",
		"fast   FOOD": "Fast Food",
		"éducation":   "Éducation",
		"   ":         "",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeCategory(in), "input %q", in)
	}
}
