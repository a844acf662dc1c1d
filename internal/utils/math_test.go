package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomInt_Bounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		v := RandomInt(3, 7)
		assert.GreaterOrEqual(t, v, 3)
		assert.LessOrEqual(t, v, 7)
	}
}

func TestRandomInt_MinGreaterThanMax(t *testing.T) {
	assert.Equal(t, 10, RandomInt(10, 2))
}

func TestPickIndex_SmallSlices(t *testing.T) {
	assert.Equal(t, 0, PickIndex(0))
	assert.Equal(t, 0, PickIndex(1))
	for i := 0; i < 100; i++ {
		v := PickIndex(4)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 4)
	}
}
