package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-0.1, 0, 1))
	assert.Equal(t, 1.0, Clamp(1.5, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 94.4, RoundTo(94.4431, 1))
	assert.Equal(t, 0.0557, RoundTo(0.05572, 4))
}

func TestSigmoid(t *testing.T) {
	assert.Equal(t, 0.5, Sigmoid(0))
	assert.Greater(t, Sigmoid(5.0), 0.99)
	assert.Less(t, Sigmoid(-5.0), 0.01)
}
