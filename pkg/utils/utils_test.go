package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 10.13, RoundCents(10.125))
	assert.Equal(t, 0.1, RoundCents(0.1000001))
	assert.Equal(t, -3.46, RoundCents(-3.455))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.2346, Round(1.23456, 4))
}

func TestToPointer(t *testing.T) {
	p := ToPointer(42)
	assert.Equal(t, 42, *p)
}

func TestLoadLocation(t *testing.T) {
	assert.Equal(t, time.UTC, LoadLocation(""))
	assert.Equal(t, "UTC", LoadLocation("UTC").String())
}
